package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrForbidden - 403: 当前角色无权执行该操作.
	ErrForbidden
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: 用户已存在.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: 用户密码错误.
	ErrUserPasswordIncorrect
)

// 成员相关错误码 (102xxx).
const (
	// ErrMemberNotFound - 404: 成员不存在.
	ErrMemberNotFound int = iota + 102000
	// ErrMemberAlreadyExist - 400: 该账户已存在成员记录.
	ErrMemberAlreadyExist
	// ErrProfileNotFound - 404: 当前账户尚未创建成员档案.
	ErrProfileNotFound
)

// 账单与支付相关错误码 (103xxx).
const (
	// ErrBillNotFound - 404: 账单不存在.
	ErrBillNotFound int = iota + 103000
	// ErrBillAlreadyPaid - 400: 账单已支付.
	ErrBillAlreadyPaid
	// ErrPaymentNotFound - 404: 支付记录不存在.
	ErrPaymentNotFound
)

// 投诉相关错误码 (104xxx).
const (
	// ErrComplaintNotFound - 404: 投诉不存在.
	ErrComplaintNotFound int = iota + 104000
	// ErrInvalidTransition - 400: 不允许的投诉状态迁移.
	ErrInvalidTransition
)

// 公告相关错误码 (105xxx).
const (
	// ErrNoticeNotFound - 404: 公告不存在.
	ErrNoticeNotFound int = iota + 105000
)

// 数据库相关错误码 (106xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 106000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)

// GetMessage 根据错误码返回对应的提示消息
func GetMessage(errorCode int) string {
	if msg, ok := codeMessageMap[errorCode]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus 根据错误码返回对应的HTTP状态码
func GetStatus(errorCode int) int {
	if status, ok := codeStatusMap[errorCode]; ok {
		return status
	}
	return StatusInternalServerError
}

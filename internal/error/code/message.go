package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:      "成功",
	ErrUnknown:      "未知错误",
	ErrBind:         "请求参数绑定错误",
	ErrValidation:   "请求参数验证错误",
	ErrTokenInvalid: "无效的认证令牌",
	ErrForbidden:    "当前角色无权执行该操作",

	// 用户相关错误码
	ErrUserNotFound:          "用户不存在",
	ErrUserAlreadyExist:      "用户已存在",
	ErrUserPasswordIncorrect: "用户密码错误",

	// 成员相关错误码
	ErrMemberNotFound:     "成员不存在",
	ErrMemberAlreadyExist: "该账户已存在成员记录",
	ErrProfileNotFound:    "当前账户尚未创建成员档案",

	// 账单与支付相关错误码
	ErrBillNotFound:    "账单不存在",
	ErrBillAlreadyPaid: "账单已支付，不能重复支付",
	ErrPaymentNotFound: "支付记录不存在",

	// 投诉相关错误码
	ErrComplaintNotFound: "投诉不存在",
	ErrInvalidTransition: "不允许的投诉状态迁移",

	// 公告相关错误码
	ErrNoticeNotFound: "公告不存在",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:      StatusOK,
	ErrUnknown:      StatusInternalServerError,
	ErrBind:         StatusBadRequest,
	ErrValidation:   StatusBadRequest,
	ErrTokenInvalid: StatusUnauthorized,
	ErrForbidden:    StatusForbidden,

	// 用户相关错误码
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// 成员相关错误码
	ErrMemberNotFound:     StatusNotFound,
	ErrMemberAlreadyExist: StatusBadRequest,
	ErrProfileNotFound:    StatusNotFound,

	// 账单与支付相关错误码
	ErrBillNotFound:    StatusNotFound,
	ErrBillAlreadyPaid: StatusBadRequest,
	ErrPaymentNotFound: StatusNotFound,

	// 投诉相关错误码
	ErrComplaintNotFound: StatusNotFound,
	ErrInvalidTransition: StatusBadRequest,

	// 公告相关错误码
	ErrNoticeNotFound: StatusNotFound,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

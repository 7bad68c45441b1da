package services

import (
	"errors"

	"society-management-service/internal/error/code"
)

// 服务层哨兵错误。控制器通过 ErrorCode 把它们映射为统一的错误码，
// 越权操作在这里是被强制拒绝的一类错误，而不只是隐藏入口。
var (
	ErrForbidden          = errors.New("当前角色无权执行该操作")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrUserAlreadyExist   = errors.New("用户已存在")
	ErrPasswordIncorrect  = errors.New("用户密码错误")
	ErrMemberNotFound     = errors.New("成员不存在")
	ErrMemberAlreadyExist = errors.New("该账户已存在成员记录")
	ErrProfileNotFound    = errors.New("当前账户尚未创建成员档案")
	ErrBillNotFound       = errors.New("账单不存在")
	ErrBillAlreadyPaid    = errors.New("账单已支付，不能重复支付")
	ErrComplaintNotFound  = errors.New("投诉不存在")
	ErrInvalidTransition  = errors.New("不允许的投诉状态迁移")
	ErrNoticeNotFound     = errors.New("公告不存在")
)

// ErrorCode 将服务层错误映射为错误码
func ErrorCode(err error) int {
	switch {
	case err == nil:
		return code.ErrSuccess
	case errors.Is(err, ErrForbidden):
		return code.ErrForbidden
	case errors.Is(err, ErrUserNotFound):
		return code.ErrUserNotFound
	case errors.Is(err, ErrUserAlreadyExist):
		return code.ErrUserAlreadyExist
	case errors.Is(err, ErrPasswordIncorrect):
		return code.ErrUserPasswordIncorrect
	case errors.Is(err, ErrMemberNotFound):
		return code.ErrMemberNotFound
	case errors.Is(err, ErrMemberAlreadyExist):
		return code.ErrMemberAlreadyExist
	case errors.Is(err, ErrProfileNotFound):
		return code.ErrProfileNotFound
	case errors.Is(err, ErrBillNotFound):
		return code.ErrBillNotFound
	case errors.Is(err, ErrBillAlreadyPaid):
		return code.ErrBillAlreadyPaid
	case errors.Is(err, ErrComplaintNotFound):
		return code.ErrComplaintNotFound
	case errors.Is(err, ErrInvalidTransition):
		return code.ErrInvalidTransition
	case errors.Is(err, ErrNoticeNotFound):
		return code.ErrNoticeNotFound
	default:
		return code.ErrDatabase
	}
}

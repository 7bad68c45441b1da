package controllers

import (
	"society-management-service/internal/error/code"
	"society-management-service/internal/error/response"
	"society-management-service/models"
	"society-management-service/services"
	"society-management-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfacePaymentController 定义支付控制器接口
type InterfacePaymentController interface {
	GetPayments()
	GetPaymentSummary()
	MakePayment()
}

// PaymentController 处理支付相关的请求
type PaymentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPaymentController 创建一个新的支付控制器
func NewPaymentController(ctx *gin.Context, container *container.ServiceContainer) *PaymentController {
	return &PaymentController{
		Ctx:       ctx,
		Container: container,
	}
}

// MakePaymentRequest 表示支付请求
type MakePaymentRequest struct {
	BillID        uint   `json:"bill_id" binding:"required" example:"3"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=online bank_transfer cash cheque" example:"online"`
	TransactionID string `json:"transaction_id" example:"UPI20250310123456"` // 可选，缺省时生成TXN回退交易号
}

// HandlePaymentFunc 返回一个处理支付请求的Gin处理函数
func HandlePaymentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPaymentController(ctx, container)

		switch method {
		case "getPayments":
			controller.GetPayments()
		case "getPaymentSummary":
			controller.GetPaymentSummary()
		case "makePayment":
			controller.MakePayment()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// GetPayments 获取支付记录列表
// @Summary      List Payments
// @Description  List payment records joined with bill and member, admin sees all, a member sees only payments on their own bills. Optional method filter.
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        method query string false "支付方式(online/bank_transfer/cash/cheque)"
// @Param        page query int false "页码，默认为1"
// @Param        page_size query int false "每页条数，默认为10"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /payments [get]
func (c *PaymentController) GetPayments() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	method := c.Ctx.Query("method")
	if method != "" && !models.IsValidPaymentMethod(method) {
		response.ParamError(c.Ctx, "支付方式不合法")
		return
	}

	page, pageSize := parsePagination(c.Ctx)

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payments, total, err := paymentService.GetPayments(actor, method, page, pageSize)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"pagination": models.NewPaginationResult(total, page, pageSize),
		"payments":   payments,
	})
}

// GetPaymentSummary 获取支付汇总
// @Summary      Payment Summary
// @Description  Get payment count and total amount within the caller's visibility scope
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=services.PaymentSummary}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /payments/summary [get]
func (c *PaymentController) GetPaymentSummary() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	summary, err := paymentService.GetPaymentSummary(actor)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, summary)
}

// MakePayment 对未支付账单录入支付
// @Summary      Make Payment
// @Description  Record a payment for an unpaid bill and mark the bill paid in one transaction. Paying an already-paid bill is rejected.
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        request body MakePaymentRequest true "Payment request parameters"
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.Payment}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /payments [post]
func (c *PaymentController) MakePayment() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	var req MakePaymentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payment, err := paymentService.MakePayment(actor, req.BillID, req.PaymentMethod, req.TransactionID)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, payment)
}

package controllers

import (
	"society-management-service/internal/error/code"
	"society-management-service/internal/error/response"
	"society-management-service/models"
	"society-management-service/services"
	"society-management-service/services/container"
	"time"

	"github.com/gin-gonic/gin"
)

// InterfaceBillController 定义账单控制器接口
type InterfaceBillController interface {
	GetBills()
	GetUnpaidBills()
	GenerateBills()
}

// BillController 处理物业费账单相关的请求
type BillController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBillController 创建一个新的账单控制器
func NewBillController(ctx *gin.Context, container *container.ServiceContainer) *BillController {
	return &BillController{
		Ctx:       ctx,
		Container: container,
	}
}

// GenerateBillsRequest 表示批量生成账单请求
type GenerateBillsRequest struct {
	Amount  float64 `json:"amount" binding:"required,gt=0" example:"2500"`
	Month   string  `json:"month" binding:"required,oneof=January February March April May June July August September October November December" example:"March"`
	Year    int     `json:"year" binding:"required,gte=2020,lte=2030" example:"2025"`
	DueDate string  `json:"due_date" binding:"required" example:"2025-03-10"`
}

// HandleBillFunc 返回一个处理账单请求的Gin处理函数
func HandleBillFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBillController(ctx, container)

		switch method {
		case "getBills":
			controller.GetBills()
		case "getUnpaidBills":
			controller.GetUnpaidBills()
		case "generateBills":
			controller.GenerateBills()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// GetBills 获取账单列表
// @Summary      List Maintenance Bills
// @Description  List maintenance bills, admin sees all, a member sees only their own. Optional status filter.
// @Tags         Bill
// @Accept       json
// @Produce      json
// @Param        status query string false "账单状态(paid/unpaid)"
// @Param        page query int false "页码，默认为1"
// @Param        page_size query int false "每页条数，默认为10"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /bills [get]
func (c *BillController) GetBills() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	status := c.Ctx.Query("status")
	if status != "" && status != models.BillStatusPaid && status != models.BillStatusUnpaid {
		response.ParamError(c.Ctx, "账单状态不合法")
		return
	}

	page, pageSize := parsePagination(c.Ctx)

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	bills, total, err := billService.GetBills(actor, status, page, pageSize)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"pagination": models.NewPaginationResult(total, page, pageSize),
		"bills":      bills,
	})
}

// GetUnpaidBills 获取未支付账单列表
// @Summary      List Unpaid Bills
// @Description  List unpaid bills ordered by due date, used by the payment page
// @Tags         Bill
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /bills/unpaid [get]
func (c *BillController) GetUnpaidBills() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	bills, err := billService.GetUnpaidBills(actor)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, gin.H{"bills": bills})
}

// GenerateBills 批量生成账单
// @Summary      Generate Bills
// @Description  Create one unpaid bill per existing member in a single transaction, admin only
// @Tags         Bill
// @Accept       json
// @Produce      json
// @Param        request body GenerateBillsRequest true "Bill generation parameters"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /bills/generate [post]
func (c *BillController) GenerateBills() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	var req GenerateBillsRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		response.ParamError(c.Ctx, "到期日格式不合法，应为YYYY-MM-DD")
		return
	}

	billService := c.Container.GetService("bill").(services.InterfaceBillService)
	generated, err := billService.GenerateBills(actor, req.Amount, req.Month, req.Year, dueDate)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"generated": generated,
		"month":     req.Month,
		"year":      req.Year,
	})
}

package controllers

import (
	"society-management-service/internal/error/code"
	"society-management-service/internal/error/response"
	"society-management-service/services"
	"society-management-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceDashboardController 定义仪表盘控制器接口
type InterfaceDashboardController interface {
	GetStats()
}

// DashboardController 处理仪表盘相关的请求
type DashboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDashboardController 创建一个新的仪表盘控制器
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleDashboardFunc 返回一个处理仪表盘请求的Gin处理函数
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "getStats":
			controller.GetStats()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// GetStats 获取仪表盘统计
// @Summary      Dashboard Statistics
// @Description  Get member/complaint/bill/notice counters scoped to the caller, cached for 60s
// @Tags         Dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=services.DashboardStats}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /dashboard/stats [get]
func (c *DashboardController) GetStats() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)
	stats, err := dashboardService.GetStats(actor)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, stats)
}

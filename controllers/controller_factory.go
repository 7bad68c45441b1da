package controllers

import (
	"society-management-service/internal/error/response"
	"society-management-service/internal/policy"
	"society-management-service/models"
	"society-management-service/services"
	"society-management-service/services/container"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 表示错误响应
type ErrorResponse struct {
	Code    int         `json:"code" example:"100001"`
	Message string      `json:"message" example:"未知错误"`
	Data    interface{} `json:"data"`
}

// BaseController 是所有控制器的基础接口
type BaseController interface {
	// 获取服务容器
	GetContainer() *container.ServiceContainer
	// 获取Gin上下文
	GetContext() *gin.Context
}

// BaseControllerImpl 是控制器的基础实现
type BaseControllerImpl struct {
	Container *container.ServiceContainer
	Context   *gin.Context
}

// GetContainer 实现 BaseController 接口
func (c *BaseControllerImpl) GetContainer() *container.ServiceContainer {
	return c.Container
}

// GetContext 实现 BaseController 接口
func (c *BaseControllerImpl) GetContext() *gin.Context {
	return c.Context
}

// currentActor 从认证中间件写入的上下文信息解析出授权主体。
// 成员ID从数据库实时解析，避免令牌签发后档案变化导致的陈旧归属。
func currentActor(ctx *gin.Context, container *container.ServiceContainer) (policy.Actor, bool) {
	userIDValue, exists := ctx.Get("userID")
	if !exists {
		response.Unauthorized(ctx)
		return policy.Actor{}, false
	}

	roleValue, _ := ctx.Get("role")
	role, _ := roleValue.(string)

	// JWT的MapClaims把数字解析为float64
	userIDFloat, ok := userIDValue.(float64)
	if !ok {
		response.Unauthorized(ctx)
		return policy.Actor{}, false
	}

	userService := container.GetService("user").(services.InterfaceUserService)
	actor, err := userService.ResolveActor(uint(userIDFloat), role)
	if err != nil {
		response.ServerError(ctx)
		return policy.Actor{}, false
	}
	return actor, true
}

// parseIDParam 解析路径中的资源ID
func parseIDParam(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parsePagination 解析分页参数，页码从1开始，每页最多100条
func parsePagination(ctx *gin.Context) (int, int) {
	var query models.PaginationQuery
	_ = ctx.ShouldBindQuery(&query)
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 10
	}
	return query.Page, query.PageSize
}

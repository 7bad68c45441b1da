package controllers

import (
	"net/http"
	"society-management-service/services"
	"society-management-service/services/container"

	"github.com/gin-gonic/gin"
)

// HealthCheckController 健康检查控制器
type HealthCheckController struct{}

// NewHealthCheckController 创建健康检查控制器实例
func NewHealthCheckController() *HealthCheckController {
	return &HealthCheckController{}
}

// Ping 健康检查端点
func (h *HealthCheckController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"status":  "healthy",
	})
}

// HandleHealthFunc 返回一个报告依赖健康状态的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		components := gin.H{}

		// 数据库健康检查
		sqlDB, err := container.GetDB().DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			status = "degraded"
			components["database"] = "down"
		} else {
			components["database"] = "up"
		}

		// Redis健康检查
		redisService := container.GetService("redis").(services.InterfaceRedisService)
		if err := redisService.Ping(); err != nil {
			// Redis不可用时服务仍可工作，只是没有缓存
			components["redis"] = "down"
		} else {
			components["redis"] = "up"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     status,
			"components": components,
		})
	}
}

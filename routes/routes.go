package routes

import (
	"society-management-service/config"
	"society-management-service/controllers"
	_ "society-management-service/docs"
	"society-management-service/middleware"
	"society-management-service/services/container"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 健康检查
	healthController := controllers.NewHealthCheckController()
	api.GET("/ping", healthController.Ping)
	api.GET("/health", controllers.HandleHealthFunc(container))

	// 认证路由
	api.POST("/auth/login", controllers.HandleJWTFunc(container, "login"))
	api.POST("/auth/register", controllers.HandleJWTFunc(container, "register"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 所有已登录用户可访问的路由
	auth := api.Group("/")
	auth.Use(middleware.Authentication())

	// 仪表盘路由
	auth.Group("/dashboard").GET("/stats", controllers.HandleDashboardFunc(container, "getStats"))

	// 成员路由（列表按授权范围过滤）
	auth.Group("/members").GET("", controllers.HandleMemberFunc(container, "getMembers"))
	auth.Group("/members").GET("/:id", controllers.HandleMemberFunc(container, "getMember"))

	// 账单路由
	auth.Group("/bills").GET("", controllers.HandleBillFunc(container, "getBills"))
	auth.Group("/bills").GET("/unpaid", controllers.HandleBillFunc(container, "getUnpaidBills"))

	// 支付路由
	auth.Group("/payments").GET("", controllers.HandlePaymentFunc(container, "getPayments"))
	auth.Group("/payments").GET("/summary", controllers.HandlePaymentFunc(container, "getPaymentSummary"))
	auth.Group("/payments").POST("", controllers.HandlePaymentFunc(container, "makePayment"))

	// 公告路由，列表加短时内存缓存
	auth.Group("/notices").GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}),
		controllers.HandleNoticeFunc(container, "getNotices"))
	auth.Group("/notices").GET("/:id", controllers.HandleNoticeFunc(container, "getNotice"))

	// 投诉路由
	auth.Group("/complaints").GET("", controllers.HandleComplaintFunc(container, "getComplaints"))
	auth.Group("/complaints").GET("/:id", controllers.HandleComplaintFunc(container, "getComplaint"))
	auth.Group("/complaints").POST("", controllers.HandleComplaintFunc(container, "createComplaint"))

	// 档案路由
	auth.Group("/profile").GET("", controllers.HandleProfileFunc(container, "getProfile"))
	auth.Group("/profile").PUT("", controllers.HandleProfileFunc(container, "updateProfile"))

	// 偏好设置路由
	auth.Group("/settings").GET("", controllers.HandleSettingFunc(container, "getSettings"))
	auth.Group("/settings").PUT("", controllers.HandleSettingFunc(container, "updateSettings"))

	// 仅管理员可访问的路由
	admin := api.Group("/")
	admin.Use(middleware.AuthenticateAdmin())

	admin.Group("/members").POST("", controllers.HandleMemberFunc(container, "createMember"))
	admin.Group("/bills").POST("/generate", controllers.HandleBillFunc(container, "generateBills"))
	admin.Group("/notices").POST("", controllers.HandleNoticeFunc(container, "createNotice"))
	admin.Group("/complaints").PUT("/:id/status", controllers.HandleComplaintFunc(container, "updateComplaintStatus"))
}

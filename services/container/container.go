package container

import (
	"log"
	"sync"

	"society-management-service/config"
	"society-management-service/services"

	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// 基础服务
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// 业务服务
	userService      services.InterfaceUserService
	memberService    services.InterfaceMemberService
	billService      services.InterfaceBillService
	paymentService   services.InterfacePaymentService
	noticeService    services.InterfaceNoticeService
	complaintService services.InterfaceComplaintService
	dashboardService services.InterfaceDashboardService
	settingService   services.InterfaceSettingService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)
	c.redisService = services.NewRedisService(c.config)

	// 测试Redis连接，失败时仪表盘退化为不带缓存的直查
	dashboardCache := c.redisService
	if err := c.redisService.Ping(); err != nil {
		log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
		dashboardCache = nil
	}

	// 初始化业务服务
	c.userService = services.NewUserService(c.db, c.config)
	c.memberService = services.NewMemberService(c.db, c.config)
	c.billService = services.NewBillService(c.db, c.config)
	c.paymentService = services.NewPaymentService(c.db, c.config)
	c.noticeService = services.NewNoticeService(c.db, c.config)
	c.complaintService = services.NewComplaintService(c.db, c.config)
	c.dashboardService = services.NewDashboardService(c.db, c.config, dashboardCache)
	c.settingService = services.NewSettingService(c.db, c.config)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "user":
		return c.userService
	case "member":
		return c.memberService
	case "bill":
		return c.billService
	case "payment":
		return c.paymentService
	case "notice":
		return c.noticeService
	case "complaint":
		return c.complaintService
	case "dashboard":
		return c.dashboardService
	case "setting":
		return c.settingService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

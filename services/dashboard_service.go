package services

import (
	"fmt"
	"society-management-service/config"
	"society-management-service/internal/policy"
	"society-management-service/models"
	"time"

	"gorm.io/gorm"
)

// 仪表盘统计的缓存key前缀和有效期
const (
	dashboardCacheKeyPrefix = "dashboard:stats:"
	dashboardCacheTTL       = 60 * time.Second
)

// DashboardStats 仪表盘统计数据
type DashboardStats struct {
	TotalMembers      int64 `json:"total_members"`
	PendingComplaints int64 `json:"pending_complaints"`
	UnpaidBills       int64 `json:"unpaid_bills"`
	TotalNotices      int64 `json:"total_notices"`
}

// InterfaceDashboardService defines the dashboard service interface
type InterfaceDashboardService interface {
	GetStats(actor policy.Actor) (*DashboardStats, error)
}

// DashboardService 提供仪表盘统计服务
type DashboardService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  InterfaceRedisService // 可以为nil，此时不使用缓存
}

// NewDashboardService 创建一个新的仪表盘服务
func NewDashboardService(db *gorm.DB, cfg *config.Config, redisService InterfaceRedisService) InterfaceDashboardService {
	return &DashboardService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
	}
}

// GetStats 获取仪表盘统计。统计按授权范围计算：
// 管理员看到全局数字，成员的投诉/账单统计只覆盖自己的行。
// 结果按主体维度缓存60秒。
func (s *DashboardService) GetStats(actor policy.Actor) (*DashboardStats, error) {
	cacheKey := fmt.Sprintf("%s%s:%d", dashboardCacheKeyPrefix, actor.Role, actor.MemberID)

	// 先查缓存
	if s.Redis != nil {
		var cached DashboardStats
		if err := s.Redis.Get(cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	stats := &DashboardStats{}

	if err := s.DB.Model(&models.Member{}).Count(&stats.TotalMembers).Error; err != nil {
		return nil, err
	}

	complaintQuery := s.DB.Model(&models.Complaint{}).Where("status = ?", models.ComplaintStatusPending)
	if policy.VisibleScope(actor, policy.ResourceComplaint) == policy.ScopeOwn {
		complaintQuery = complaintQuery.Where("member_id = ?", actor.MemberID)
	}
	if err := complaintQuery.Count(&stats.PendingComplaints).Error; err != nil {
		return nil, err
	}

	billQuery := s.DB.Model(&models.MaintenanceBill{}).Where("status = ?", models.BillStatusUnpaid)
	if policy.VisibleScope(actor, policy.ResourceBill) == policy.ScopeOwn {
		billQuery = billQuery.Where("member_id = ?", actor.MemberID)
	}
	if err := billQuery.Count(&stats.UnpaidBills).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Notice{}).Count(&stats.TotalNotices).Error; err != nil {
		return nil, err
	}

	// 写入缓存，失败时忽略
	if s.Redis != nil {
		_ = s.Redis.Set(cacheKey, stats, dashboardCacheTTL)
	}

	return stats, nil
}

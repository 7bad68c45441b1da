package services

import (
	"errors"
	"society-management-service/config"
	"society-management-service/internal/policy"
	"society-management-service/models"

	"gorm.io/gorm"
)

// InterfaceNoticeService defines the notice service interface
type InterfaceNoticeService interface {
	GetAllNotices(page int, pageSize int) ([]models.Notice, int64, error)
	GetNoticeByID(id uint) (*models.Notice, error)
	CreateNotice(actor policy.Actor, notice *models.Notice) error
}

// NoticeService 提供社区公告相关的服务
type NoticeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewNoticeService 创建一个新的公告服务
func NewNoticeService(db *gorm.DB, cfg *config.Config) InterfaceNoticeService {
	return &NoticeService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllNotices 获取公告列表，公告对所有已认证用户可见
func (s *NoticeService) GetAllNotices(page int, pageSize int) ([]models.Notice, int64, error) {
	var total int64
	if err := s.DB.Model(&models.Notice{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notices []models.Notice
	if err := s.DB.Preload("Creator").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&notices).Error; err != nil {
		return nil, 0, err
	}
	return notices, total, nil
}

// GetNoticeByID 根据ID获取公告
func (s *NoticeService) GetNoticeByID(id uint) (*models.Notice, error) {
	var notice models.Notice
	if err := s.DB.Preload("Creator").First(&notice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoticeNotFound
		}
		return nil, err
	}
	return &notice, nil
}

// CreateNotice 发布公告，只有管理员可以执行
func (s *NoticeService) CreateNotice(actor policy.Actor, notice *models.Notice) error {
	if !policy.CanCreate(actor, policy.ResourceNotice) {
		return ErrForbidden
	}

	notice.CreatedBy = actor.UserID
	return s.DB.Create(notice).Error
}

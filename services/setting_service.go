package services

import (
	"errors"
	"society-management-service/config"
	"society-management-service/internal/policy"
	"society-management-service/models"

	"gorm.io/gorm"
)

// InterfaceSettingService defines the preference setting service interface
type InterfaceSettingService interface {
	GetSettings(actor policy.Actor) (*models.MemberSetting, error)
	UpdateSettings(actor policy.Actor, updates map[string]interface{}) (*models.MemberSetting, error)
}

// SettingService 提供账户偏好设置服务
type SettingService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewSettingService 创建一个新的偏好设置服务
func NewSettingService(db *gorm.DB, cfg *config.Config) InterfaceSettingService {
	return &SettingService{
		DB:     db,
		Config: cfg,
	}
}

// GetSettings 获取当前账户的偏好设置，首次访问时落库默认值
func (s *SettingService) GetSettings(actor policy.Actor) (*models.MemberSetting, error) {
	var setting models.MemberSetting
	err := s.DB.Where("user_id = ?", actor.UserID).First(&setting).Error
	if err == nil {
		return &setting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 首次访问，物化默认设置
	setting = models.DefaultMemberSetting(actor.UserID)
	if err := s.DB.Create(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// UpdateSettings 更新当前账户的偏好设置，只能修改自己的
func (s *SettingService) UpdateSettings(actor policy.Actor, updates map[string]interface{}) (*models.MemberSetting, error) {
	setting, err := s.GetSettings(actor)
	if err != nil {
		return nil, err
	}

	if !policy.CanUpdate(actor, policy.ResourceSetting, setting.UserID) {
		return nil, ErrForbidden
	}

	// 白名单过滤可更新字段
	allowed := map[string]bool{
		"notify_email":       true,
		"notify_push":        true,
		"notify_maintenance": true,
		"notify_complaint":   true,
		"notify_notice":      true,
		"show_profile":       true,
		"show_contact":       true,
	}
	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return setting, nil
	}

	if err := s.DB.Model(setting).Updates(filtered).Error; err != nil {
		return nil, err
	}
	return setting, nil
}

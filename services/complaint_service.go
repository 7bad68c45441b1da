package services

import (
	"errors"
	"society-management-service/config"
	"society-management-service/internal/policy"
	"society-management-service/models"
	"time"

	"gorm.io/gorm"
)

// InterfaceComplaintService defines the complaint service interface
type InterfaceComplaintService interface {
	GetComplaints(actor policy.Actor, status string, page int, pageSize int) ([]models.Complaint, int64, error)
	GetComplaintByID(actor policy.Actor, id uint) (*models.Complaint, error)
	CreateComplaint(actor policy.Actor, title, description string) (*models.Complaint, error)
	UpdateComplaintStatus(actor policy.Actor, id uint, newStatus string) (*models.Complaint, error)
}

// ComplaintService 提供投诉相关的服务
type ComplaintService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewComplaintService 创建一个新的投诉服务
func NewComplaintService(db *gorm.DB, cfg *config.Config) InterfaceComplaintService {
	return &ComplaintService{
		DB:     db,
		Config: cfg,
	}
}

// GetComplaints 获取投诉列表，可按状态过滤。管理员看全部，成员只看自己的。
func (s *ComplaintService) GetComplaints(actor policy.Actor, status string, page int, pageSize int) ([]models.Complaint, int64, error) {
	query := s.DB.Model(&models.Complaint{})
	if policy.VisibleScope(actor, policy.ResourceComplaint) == policy.ScopeOwn {
		query = query.Where("member_id = ?", actor.MemberID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var complaints []models.Complaint
	if err := query.Preload("Member").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&complaints).Error; err != nil {
		return nil, 0, err
	}
	return complaints, total, nil
}

// GetComplaintByID 根据ID获取投诉，越权访问返回 ErrForbidden
func (s *ComplaintService) GetComplaintByID(actor policy.Actor, id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := s.DB.Preload("Member").First(&complaint, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}

	if !policy.CanView(actor, policy.ResourceComplaint, complaint.MemberID) {
		return nil, ErrForbidden
	}
	return &complaint, nil
}

// CreateComplaint 提交投诉。只有成员可以提交，新投诉始终处于 pending 状态。
func (s *ComplaintService) CreateComplaint(actor policy.Actor, title, description string) (*models.Complaint, error) {
	if !policy.CanCreate(actor, policy.ResourceComplaint) {
		return nil, ErrForbidden
	}
	if actor.MemberID == 0 {
		return nil, ErrProfileNotFound
	}

	complaint := models.Complaint{
		MemberID:    actor.MemberID,
		Title:       title,
		Description: description,
		Status:      models.ComplaintStatusPending,
	}
	if err := s.DB.Create(&complaint).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

// UpdateComplaintStatus 推进投诉状态，只有管理员可以执行。
// 状态只允许前进，resolved_at 在且仅在进入 resolved 时被写入，之后不再清除。
func (s *ComplaintService) UpdateComplaintStatus(actor policy.Actor, id uint, newStatus string) (*models.Complaint, error) {
	if !policy.CanUpdate(actor, policy.ResourceComplaint, 0) {
		return nil, ErrForbidden
	}

	var complaint models.Complaint
	if err := s.DB.First(&complaint, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}

	if !complaint.CanTransitionTo(newStatus) {
		return nil, ErrInvalidTransition
	}

	updates := map[string]interface{}{"status": newStatus}
	if newStatus == models.ComplaintStatusResolved {
		now := time.Now()
		updates["resolved_at"] = &now
	}

	if err := s.DB.Model(&complaint).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

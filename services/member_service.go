package services

import (
	"errors"
	"society-management-service/config"
	"society-management-service/internal/policy"
	"society-management-service/models"

	"gorm.io/gorm"
)

// InterfaceMemberService defines the member service interface
type InterfaceMemberService interface {
	GetAllMembers(actor policy.Actor, page int, pageSize int) ([]models.Member, int64, error)
	GetMemberByID(id uint) (*models.Member, error)
	CreateMember(actor policy.Actor, member *models.Member) error
	GetProfile(actor policy.Actor) (*models.Member, error)
	UpdateProfile(actor policy.Actor, updates map[string]interface{}) (*models.Member, error)
}

// MemberService 提供社区成员相关的服务
type MemberService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewMemberService 创建一个新的成员服务
func NewMemberService(db *gorm.DB, cfg *config.Config) InterfaceMemberService {
	return &MemberService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllMembers 获取成员列表。成员列表只对管理员开放，
// 普通成员能看到的只有自己的那一行。
func (s *MemberService) GetAllMembers(actor policy.Actor, page int, pageSize int) ([]models.Member, int64, error) {
	scope := policy.VisibleScope(actor, policy.ResourceMember)

	query := s.DB.Model(&models.Member{})
	if scope == policy.ScopeOwn {
		if actor.MemberID == 0 {
			return []models.Member{}, 0, nil
		}
		query = query.Where("id = ?", actor.MemberID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []models.Member
	if err := query.Order("flat_number").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&members).Error; err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

// GetMemberByID 根据ID获取成员
func (s *MemberService) GetMemberByID(id uint) (*models.Member, error) {
	var member models.Member
	if err := s.DB.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// CreateMember 创建新成员，只有管理员可以执行
func (s *MemberService) CreateMember(actor policy.Actor, member *models.Member) error {
	if !policy.CanCreate(actor, policy.ResourceMember) {
		return ErrForbidden
	}

	// 验证账户存在
	var user models.User
	if err := s.DB.First(&user, member.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	// 一个账户最多只能有一条成员记录
	var count int64
	if err := s.DB.Model(&models.Member{}).Where("user_id = ?", member.UserID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrMemberAlreadyExist
	}

	return s.DB.Create(member).Error
}

// GetProfile 获取当前账户的成员档案。
// 档案不存在是一个显式状态，返回 ErrProfileNotFound 而不是数据库错误。
func (s *MemberService) GetProfile(actor policy.Actor) (*models.Member, error) {
	var member models.Member
	if err := s.DB.Where("user_id = ?", actor.UserID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &member, nil
}

// UpdateProfile 更新当前账户的成员档案，只允许修改姓名/电话/邮箱
func (s *MemberService) UpdateProfile(actor policy.Actor, updates map[string]interface{}) (*models.Member, error) {
	member, err := s.GetProfile(actor)
	if err != nil {
		return nil, err
	}

	if !policy.CanUpdate(actor, policy.ResourceProfile, member.UserID) {
		return nil, ErrForbidden
	}

	// 白名单过滤可更新字段，flat_number 和 user_id 不允许通过档案修改
	allowed := map[string]bool{"name": true, "phone": true, "email": true}
	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return member, nil
	}

	if err := s.DB.Model(member).Updates(filtered).Error; err != nil {
		return nil, err
	}
	return member, nil
}

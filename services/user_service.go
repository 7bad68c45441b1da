package services

import (
	"errors"
	"society-management-service/config"
	"society-management-service/internal/policy"
	"society-management-service/models"

	"gorm.io/gorm"
)

// InterfaceUserService defines the user account service interface
type InterfaceUserService interface {
	Register(email, password, role string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	ResolveActor(userID uint, role string) (policy.Actor, error)
}

// UserService 提供账户相关的服务
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的账户服务
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// Register 注册新账户，角色在创建后不再提供修改入口
func (s *UserService) Register(email, password, role string) (*models.User, error) {
	if role != models.RoleAdmin && role != models.RoleMember {
		role = models.RoleMember
	}

	// 验证邮箱唯一性
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserAlreadyExist
	}

	user := models.User{
		Email:    email,
		Password: password, // BeforeCreate钩子负责哈希
		Role:     role,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate 校验邮箱和密码，返回对应的账户
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !models.CheckPasswordHash(password, user.Password) {
		return nil, ErrPasswordIncorrect
	}
	return &user, nil
}

// GetUserByID 根据ID获取账户
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ResolveActor 把认证通过的账户解析为授权主体。
// 账户没有成员档案时 MemberID 为 0，这是一个显式建模的状态。
func (s *UserService) ResolveActor(userID uint, role string) (policy.Actor, error) {
	actor := policy.Actor{
		UserID: userID,
		Role:   policy.Role(role),
	}

	var member models.Member
	err := s.DB.Select("id").Where("user_id = ?", userID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return actor, nil
		}
		return actor, err
	}

	actor.MemberID = member.ID
	return actor, nil
}

// EnsureDefaultAdmin 确保系统中至少有一个管理员账户
func EnsureDefaultAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := models.User{
		Email:    cfg.DefaultAdminEmail,
		Password: cfg.DefaultAdminPassword,
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}

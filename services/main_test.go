package services

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"society-management-service/config"
	"society-management-service/internal/policy"
	"society-management-service/models"
)

// setupTestDB 为单个测试创建独立的内存数据库并完成迁移
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// 每个测试用独立的命名内存库，互不干扰
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Member{},
		&models.MaintenanceBill{},
		&models.Payment{},
		&models.Notice{},
		&models.Complaint{},
		&models.MemberSetting{},
	); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}
	return db
}

// testConfig 返回测试用的配置
func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:         "test-secret-key",
		DefaultAdminEmail:    "admin@society.test",
		DefaultAdminPassword: "admin123",
	}
}

// createTestUser 创建一个测试账户
func createTestUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: "password123", Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("创建测试账户失败: %v", err)
	}
	return user
}

// createTestMember 为账户创建一条成员记录
func createTestMember(t *testing.T, db *gorm.DB, userID uint, name, flat string) *models.Member {
	t.Helper()
	member := &models.Member{
		UserID:     userID,
		Name:       name,
		FlatNumber: flat,
		Phone:      "9876543210",
		Email:      name + "@society.test",
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("创建测试成员失败: %v", err)
	}
	return member
}

// adminActor 返回一个管理员主体
func adminActor(userID uint) policy.Actor {
	return policy.Actor{UserID: userID, Role: policy.RoleAdmin}
}

// memberActor 返回一个关联了成员记录的成员主体
func memberActor(userID, memberID uint) policy.Actor {
	return policy.Actor{UserID: userID, MemberID: memberID, Role: policy.RoleMember}
}

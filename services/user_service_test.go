package services

import (
	"errors"
	"testing"

	"society-management-service/models"
)

// 注册后密码已被哈希，认证成功返回账户
func TestRegisterAndAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user, err := svc.Register("a@society.test", "password123", models.RoleMember)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Password == "password123" {
		t.Fatal("密码不应当以明文落库")
	}

	// 邮箱唯一
	if _, err := svc.Register("a@society.test", "other", models.RoleMember); !errors.Is(err, ErrUserAlreadyExist) {
		t.Fatalf("重复注册 error = %v, want ErrUserAlreadyExist", err)
	}

	// 非法角色回落到member
	fallback, err := svc.Register("b@society.test", "password123", "superuser")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if fallback.Role != models.RoleMember {
		t.Fatalf("非法角色 = %s, want member", fallback.Role)
	}

	if _, err := svc.Authenticate("a@society.test", "password123"); err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if _, err := svc.Authenticate("a@society.test", "wrong"); !errors.Is(err, ErrPasswordIncorrect) {
		t.Fatalf("错误密码 error = %v, want ErrPasswordIncorrect", err)
	}
	if _, err := svc.Authenticate("nobody@society.test", "password123"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("账户不存在 error = %v, want ErrUserNotFound", err)
	}
}

// 主体解析：有成员档案的账户带上MemberID，没有的为0
func TestResolveActor(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig())

	user := createTestUser(t, db, "a@society.test", models.RoleMember)
	member := createTestMember(t, db, user.ID, "zhang", "A-101")

	actor, err := svc.ResolveActor(user.ID, user.Role)
	if err != nil {
		t.Fatalf("ResolveActor() error = %v", err)
	}
	if actor.MemberID != member.ID {
		t.Fatalf("actor.MemberID = %d, want %d", actor.MemberID, member.ID)
	}

	orphan := createTestUser(t, db, "orphan@society.test", models.RoleMember)
	actor, err = svc.ResolveActor(orphan.ID, orphan.Role)
	if err != nil {
		t.Fatalf("ResolveActor() error = %v", err)
	}
	if actor.MemberID != 0 {
		t.Fatalf("无档案账户的 actor.MemberID = %d, want 0", actor.MemberID)
	}
}

// 默认管理员只在没有任何管理员时创建
func TestEnsureDefaultAdmin(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()

	if err := EnsureDefaultAdmin(db, cfg); err != nil {
		t.Fatalf("EnsureDefaultAdmin() error = %v", err)
	}

	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count != 1 {
		t.Fatalf("管理员数量 = %d, want 1", count)
	}

	// 再次执行不会重复创建
	if err := EnsureDefaultAdmin(db, cfg); err != nil {
		t.Fatalf("EnsureDefaultAdmin() error = %v", err)
	}
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count != 1 {
		t.Fatalf("重复执行后管理员数量 = %d, want 1", count)
	}
}

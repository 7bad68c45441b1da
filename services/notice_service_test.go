package services

import (
	"errors"
	"testing"

	"society-management-service/models"
)

// 只有管理员可以发布公告，发布者落在 created_by 上
func TestCreateNotice(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNoticeService(db, testConfig())

	admin := createTestUser(t, db, "admin@society.test", models.RoleAdmin)

	notice := &models.Notice{Title: "停水通知", Content: "周六上午9点至12点停水"}
	if err := svc.CreateNotice(adminActor(admin.ID), notice); err != nil {
		t.Fatalf("CreateNotice() error = %v", err)
	}
	if notice.CreatedBy != admin.ID {
		t.Fatalf("notice.CreatedBy = %d, want %d", notice.CreatedBy, admin.ID)
	}

	user := createTestUser(t, db, "a@society.test", models.RoleMember)
	member := createTestMember(t, db, user.ID, "zhang", "A-101")
	rejected := &models.Notice{Title: "t", Content: "c"}
	if err := svc.CreateNotice(memberActor(user.ID, member.ID), rejected); !errors.Is(err, ErrForbidden) {
		t.Fatalf("成员发布公告 error = %v, want ErrForbidden", err)
	}
}

// 公告对所有已认证用户可见
func TestGetAllNotices(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNoticeService(db, testConfig())

	admin := createTestUser(t, db, "admin@society.test", models.RoleAdmin)
	for _, title := range []string{"停水通知", "电梯检修", "业主大会"} {
		if err := svc.CreateNotice(adminActor(admin.ID), &models.Notice{Title: title, Content: "c"}); err != nil {
			t.Fatalf("CreateNotice() error = %v", err)
		}
	}

	notices, total, err := svc.GetAllNotices(1, 10)
	if err != nil {
		t.Fatalf("GetAllNotices() error = %v", err)
	}
	if total != 3 || len(notices) != 3 {
		t.Fatalf("公告数量 = %d (total %d), want 3", len(notices), total)
	}

	// 分页
	page, total, err := svc.GetAllNotices(2, 2)
	if err != nil {
		t.Fatalf("GetAllNotices() error = %v", err)
	}
	if total != 3 || len(page) != 1 {
		t.Fatalf("第二页公告数量 = %d (total %d), want 1 (total 3)", len(page), total)
	}
}

// 不存在的公告返回 ErrNoticeNotFound
func TestGetNoticeNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNoticeService(db, testConfig())

	if _, err := svc.GetNoticeByID(9999); !errors.Is(err, ErrNoticeNotFound) {
		t.Fatalf("GetNoticeByID() error = %v, want ErrNoticeNotFound", err)
	}
}

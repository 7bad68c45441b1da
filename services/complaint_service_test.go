package services

import (
	"errors"
	"testing"

	"society-management-service/models"
)

// 成员提交投诉，新投诉始终处于 pending 状态
func TestCreateComplaint(t *testing.T) {
	db := setupTestDB(t)
	svc := NewComplaintService(db, testConfig())

	user := createTestUser(t, db, "a@society.test", models.RoleMember)
	member := createTestMember(t, db, user.ID, "zhang", "A-101")

	complaint, err := svc.CreateComplaint(memberActor(user.ID, member.ID), "电梯故障", "3号楼电梯已停运两天")
	if err != nil {
		t.Fatalf("CreateComplaint() error = %v", err)
	}
	if complaint.Status != models.ComplaintStatusPending {
		t.Fatalf("新投诉状态 = %s, want pending", complaint.Status)
	}
	if complaint.MemberID != member.ID {
		t.Fatalf("投诉归属 = %d, want %d", complaint.MemberID, member.ID)
	}
	if complaint.ResolvedAt != nil {
		t.Fatal("新投诉的 resolved_at 应当为空")
	}
}

// 管理员不能提交投诉，没有成员档案的账户也不能提交
func TestCreateComplaintRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewComplaintService(db, testConfig())

	if _, err := svc.CreateComplaint(adminActor(1), "t", "d"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("管理员提交投诉 error = %v, want ErrForbidden", err)
	}

	orphan := createTestUser(t, db, "orphan@society.test", models.RoleMember)
	if _, err := svc.CreateComplaint(memberActor(orphan.ID, 0), "t", "d"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("无档案账户提交投诉 error = %v, want ErrProfileNotFound", err)
	}
}

// 投诉状态只允许前进，resolved 是终态
func TestUpdateComplaintStatusTransitions(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		to        string
		wantError bool
	}{
		{"pending到in_progress", models.ComplaintStatusPending, models.ComplaintStatusInProgress, false},
		{"pending直接到resolved", models.ComplaintStatusPending, models.ComplaintStatusResolved, false},
		{"in_progress到resolved", models.ComplaintStatusInProgress, models.ComplaintStatusResolved, false},
		{"in_progress退回pending", models.ComplaintStatusInProgress, models.ComplaintStatusPending, true},
		{"resolved退回in_progress", models.ComplaintStatusResolved, models.ComplaintStatusInProgress, true},
		{"resolved退回pending", models.ComplaintStatusResolved, models.ComplaintStatusPending, true},
		{"resolved重复置为resolved", models.ComplaintStatusResolved, models.ComplaintStatusResolved, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			svc := NewComplaintService(db, testConfig())

			user := createTestUser(t, db, "a@society.test", models.RoleMember)
			member := createTestMember(t, db, user.ID, "zhang", "A-101")
			complaint := models.Complaint{
				MemberID:    member.ID,
				Title:       "电梯故障",
				Description: "3号楼电梯已停运两天",
				Status:      tt.from,
			}
			if err := db.Create(&complaint).Error; err != nil {
				t.Fatalf("创建测试投诉失败: %v", err)
			}

			_, err := svc.UpdateComplaintStatus(adminActor(99), complaint.ID, tt.to)
			if tt.wantError {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("UpdateComplaintStatus(%s -> %s) error = %v, want ErrInvalidTransition", tt.from, tt.to, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateComplaintStatus(%s -> %s) error = %v", tt.from, tt.to, err)
			}

			var updated models.Complaint
			if err := db.First(&updated, complaint.ID).Error; err != nil {
				t.Fatalf("查询投诉失败: %v", err)
			}
			if updated.Status != tt.to {
				t.Fatalf("状态 = %s, want %s", updated.Status, tt.to)
			}
			// resolved_at 在且仅在进入 resolved 时被写入
			if tt.to == models.ComplaintStatusResolved && updated.ResolvedAt == nil {
				t.Fatal("进入 resolved 后 resolved_at 应当被写入")
			}
			if tt.to != models.ComplaintStatusResolved && updated.ResolvedAt != nil {
				t.Fatal("未进入 resolved 时 resolved_at 应当为空")
			}
		})
	}
}

// 成员不能推进投诉状态
func TestUpdateComplaintStatusForbidden(t *testing.T) {
	db := setupTestDB(t)
	svc := NewComplaintService(db, testConfig())

	user := createTestUser(t, db, "a@society.test", models.RoleMember)
	member := createTestMember(t, db, user.ID, "zhang", "A-101")
	actor := memberActor(user.ID, member.ID)

	complaint, err := svc.CreateComplaint(actor, "电梯故障", "3号楼电梯已停运两天")
	if err != nil {
		t.Fatalf("CreateComplaint() error = %v", err)
	}

	_, err = svc.UpdateComplaintStatus(actor, complaint.ID, models.ComplaintStatusResolved)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("成员推进投诉状态 error = %v, want ErrForbidden", err)
	}
}

// 投诉的可见范围：管理员看全部，成员只看自己的
func TestGetComplaintsScope(t *testing.T) {
	db := setupTestDB(t)
	svc := NewComplaintService(db, testConfig())

	userA := createTestUser(t, db, "a@society.test", models.RoleMember)
	memberA := createTestMember(t, db, userA.ID, "zhang", "A-101")
	userB := createTestUser(t, db, "b@society.test", models.RoleMember)
	memberB := createTestMember(t, db, userB.ID, "li", "A-102")

	actorA := memberActor(userA.ID, memberA.ID)
	actorB := memberActor(userB.ID, memberB.ID)
	if _, err := svc.CreateComplaint(actorA, "电梯故障", "d"); err != nil {
		t.Fatalf("CreateComplaint() error = %v", err)
	}
	if _, err := svc.CreateComplaint(actorB, "漏水", "d"); err != nil {
		t.Fatalf("CreateComplaint() error = %v", err)
	}

	all, total, err := svc.GetComplaints(adminActor(99), "", 1, 10)
	if err != nil {
		t.Fatalf("GetComplaints(admin) error = %v", err)
	}
	if total != 2 || len(all) != 2 {
		t.Fatalf("管理员可见投诉 = %d (total %d), want 2", len(all), total)
	}

	own, total, err := svc.GetComplaints(actorA, "", 1, 10)
	if err != nil {
		t.Fatalf("GetComplaints(member) error = %v", err)
	}
	if total != 1 || len(own) != 1 || own[0].MemberID != memberA.ID {
		t.Fatalf("成员应当只能看到自己的投诉, got %d (total %d)", len(own), total)
	}

	// 按单条查询时越权访问返回 ErrForbidden
	other, _, _ := svc.GetComplaints(actorB, "", 1, 10)
	if _, err := svc.GetComplaintByID(actorA, other[0].ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("查看他人投诉 error = %v, want ErrForbidden", err)
	}
}

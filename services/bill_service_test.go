package services

import (
	"errors"
	"testing"
	"time"

	"society-management-service/models"
)

// 批量生成账单：N个成员生成N张未支付账单
func TestGenerateBills(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillService(db, testConfig())

	for i, name := range []string{"zhang", "li", "wang"} {
		user := createTestUser(t, db, name+"@society.test", models.RoleMember)
		createTestMember(t, db, user.ID, name, "A-10"+string(rune('1'+i)))
	}

	dueDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	generated, err := svc.GenerateBills(adminActor(1), 1500, "August", 2026, dueDate)
	if err != nil {
		t.Fatalf("GenerateBills() error = %v", err)
	}
	if generated != 3 {
		t.Fatalf("GenerateBills() generated = %d, want 3", generated)
	}

	var bills []models.MaintenanceBill
	if err := db.Find(&bills).Error; err != nil {
		t.Fatalf("查询账单失败: %v", err)
	}
	if len(bills) != 3 {
		t.Fatalf("账单数量 = %d, want 3", len(bills))
	}

	seen := make(map[uint]bool)
	for _, bill := range bills {
		if bill.Status != models.BillStatusUnpaid {
			t.Errorf("账单 %d 状态 = %s, want unpaid", bill.ID, bill.Status)
		}
		if bill.Amount != 1500 {
			t.Errorf("账单 %d 金额 = %v, want 1500", bill.ID, bill.Amount)
		}
		if bill.Month != "August" || bill.Year != 2026 {
			t.Errorf("账单 %d 周期 = %s %d, want August 2026", bill.ID, bill.Month, bill.Year)
		}
		if seen[bill.MemberID] {
			t.Errorf("成员 %d 在同一批次中生成了多张账单", bill.MemberID)
		}
		seen[bill.MemberID] = true
	}
}

// 没有成员时生成0张账单且不报错
func TestGenerateBillsNoMembers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillService(db, testConfig())

	generated, err := svc.GenerateBills(adminActor(1), 1500, "August", 2026, time.Now())
	if err != nil {
		t.Fatalf("GenerateBills() error = %v", err)
	}
	if generated != 0 {
		t.Fatalf("GenerateBills() generated = %d, want 0", generated)
	}
}

// 成员角色不允许生成账单
func TestGenerateBillsForbidden(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillService(db, testConfig())

	user := createTestUser(t, db, "member@society.test", models.RoleMember)
	member := createTestMember(t, db, user.ID, "zhang", "A-101")

	_, err := svc.GenerateBills(memberActor(user.ID, member.ID), 1500, "August", 2026, time.Now())
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("GenerateBills() error = %v, want ErrForbidden", err)
	}

	var count int64
	db.Model(&models.MaintenanceBill{}).Count(&count)
	if count != 0 {
		t.Fatalf("越权生成后账单数量 = %d, want 0", count)
	}
}

// 账单列表的可见范围：管理员看全部，成员只看自己的
func TestGetBillsScope(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillService(db, testConfig())

	userA := createTestUser(t, db, "a@society.test", models.RoleMember)
	memberA := createTestMember(t, db, userA.ID, "zhang", "A-101")
	userB := createTestUser(t, db, "b@society.test", models.RoleMember)
	createTestMember(t, db, userB.ID, "li", "A-102")

	if _, err := svc.GenerateBills(adminActor(99), 1200, "July", 2026, time.Now()); err != nil {
		t.Fatalf("GenerateBills() error = %v", err)
	}

	all, total, err := svc.GetBills(adminActor(99), "", 1, 10)
	if err != nil {
		t.Fatalf("GetBills(admin) error = %v", err)
	}
	if total != 2 || len(all) != 2 {
		t.Fatalf("管理员可见账单 = %d (total %d), want 2", len(all), total)
	}

	own, total, err := svc.GetBills(memberActor(userA.ID, memberA.ID), "", 1, 10)
	if err != nil {
		t.Fatalf("GetBills(member) error = %v", err)
	}
	if total != 1 || len(own) != 1 {
		t.Fatalf("成员可见账单 = %d (total %d), want 1", len(own), total)
	}
	if own[0].MemberID != memberA.ID {
		t.Fatalf("成员看到了他人的账单: member_id = %d", own[0].MemberID)
	}
}

// 未支付账单列表只包含未支付的，按到期日升序
func TestGetUnpaidBills(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillService(db, testConfig())

	user := createTestUser(t, db, "a@society.test", models.RoleMember)
	member := createTestMember(t, db, user.ID, "zhang", "A-101")

	later := models.MaintenanceBill{
		MemberID: member.ID, Amount: 1000, Month: "August", Year: 2026,
		DueDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), Status: models.BillStatusUnpaid,
	}
	earlier := models.MaintenanceBill{
		MemberID: member.ID, Amount: 1000, Month: "July", Year: 2026,
		DueDate: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), Status: models.BillStatusUnpaid,
	}
	paid := models.MaintenanceBill{
		MemberID: member.ID, Amount: 1000, Month: "June", Year: 2026,
		DueDate: time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC), Status: models.BillStatusPaid,
	}
	for _, b := range []*models.MaintenanceBill{&later, &earlier, &paid} {
		if err := db.Create(b).Error; err != nil {
			t.Fatalf("创建测试账单失败: %v", err)
		}
	}

	bills, err := svc.GetUnpaidBills(memberActor(user.ID, member.ID))
	if err != nil {
		t.Fatalf("GetUnpaidBills() error = %v", err)
	}
	if len(bills) != 2 {
		t.Fatalf("未支付账单数量 = %d, want 2", len(bills))
	}
	if bills[0].Month != "July" || bills[1].Month != "August" {
		t.Fatalf("未支付账单未按到期日升序: %s, %s", bills[0].Month, bills[1].Month)
	}
}

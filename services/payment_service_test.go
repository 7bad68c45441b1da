package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"society-management-service/models"
)

// seedBill 创建一张测试账单
func seedBill(t *testing.T, s *PaymentService, memberID uint, status string) *models.MaintenanceBill {
	t.Helper()
	bill := &models.MaintenanceBill{
		MemberID: memberID,
		Amount:   1500,
		Month:    "August",
		Year:     2026,
		DueDate:  time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Status:   status,
	}
	if err := s.DB.Create(bill).Error; err != nil {
		t.Fatalf("创建测试账单失败: %v", err)
	}
	return bill
}

// 支付成功后账单翻转为已支付，支付金额等于账单金额
func TestMakePayment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig()).(*PaymentService)

	user := createTestUser(t, db, "a@society.test", models.RoleMember)
	member := createTestMember(t, db, user.ID, "zhang", "A-101")
	bill := seedBill(t, svc, member.ID, models.BillStatusUnpaid)

	payment, err := svc.MakePayment(memberActor(user.ID, member.ID), bill.ID, models.PaymentMethodOnline, "UPI-20260829-001")
	if err != nil {
		t.Fatalf("MakePayment() error = %v", err)
	}

	if payment.Amount != bill.Amount {
		t.Errorf("支付金额 = %v, want %v", payment.Amount, bill.Amount)
	}
	if payment.TransactionID != "UPI-20260829-001" {
		t.Errorf("交易号 = %s, want UPI-20260829-001", payment.TransactionID)
	}
	if payment.ReceiptNumber == "" {
		t.Error("收据编号不应为空")
	}

	var updated models.MaintenanceBill
	if err := db.First(&updated, bill.ID).Error; err != nil {
		t.Fatalf("查询账单失败: %v", err)
	}
	if updated.Status != models.BillStatusPaid {
		t.Fatalf("支付后账单状态 = %s, want paid", updated.Status)
	}
}

// 未提供交易号时自动生成TXN前缀的交易号
func TestMakePaymentGeneratedTransactionID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig()).(*PaymentService)

	user := createTestUser(t, db, "a@society.test", models.RoleMember)
	member := createTestMember(t, db, user.ID, "zhang", "A-101")
	bill := seedBill(t, svc, member.ID, models.BillStatusUnpaid)

	payment, err := svc.MakePayment(memberActor(user.ID, member.ID), bill.ID, models.PaymentMethodCash, "")
	if err != nil {
		t.Fatalf("MakePayment() error = %v", err)
	}
	if !strings.HasPrefix(payment.TransactionID, "TXN") {
		t.Fatalf("自动生成的交易号 = %s, want TXN前缀", payment.TransactionID)
	}
}

// 已支付的账单拒绝重复支付，且不会产生第二条支付记录
func TestMakePaymentAlreadyPaid(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig()).(*PaymentService)

	user := createTestUser(t, db, "a@society.test", models.RoleMember)
	member := createTestMember(t, db, user.ID, "zhang", "A-101")
	bill := seedBill(t, svc, member.ID, models.BillStatusUnpaid)
	actor := memberActor(user.ID, member.ID)

	if _, err := svc.MakePayment(actor, bill.ID, models.PaymentMethodOnline, ""); err != nil {
		t.Fatalf("首次支付失败: %v", err)
	}

	_, err := svc.MakePayment(actor, bill.ID, models.PaymentMethodOnline, "")
	if !errors.Is(err, ErrBillAlreadyPaid) {
		t.Fatalf("重复支付 error = %v, want ErrBillAlreadyPaid", err)
	}

	var count int64
	db.Model(&models.Payment{}).Where("bill_id = ?", bill.ID).Count(&count)
	if count != 1 {
		t.Fatalf("账单 %d 的支付记录数 = %d, want 1", bill.ID, count)
	}
}

// 成员不能支付他人的账单
func TestMakePaymentNotOwnBill(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig()).(*PaymentService)

	userA := createTestUser(t, db, "a@society.test", models.RoleMember)
	memberA := createTestMember(t, db, userA.ID, "zhang", "A-101")
	userB := createTestUser(t, db, "b@society.test", models.RoleMember)
	memberB := createTestMember(t, db, userB.ID, "li", "A-102")
	bill := seedBill(t, svc, memberB.ID, models.BillStatusUnpaid)

	_, err := svc.MakePayment(memberActor(userA.ID, memberA.ID), bill.ID, models.PaymentMethodOnline, "")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("支付他人账单 error = %v, want ErrForbidden", err)
	}

	var updated models.MaintenanceBill
	db.First(&updated, bill.ID)
	if updated.Status != models.BillStatusUnpaid {
		t.Fatalf("越权支付后账单状态 = %s, want unpaid", updated.Status)
	}
}

// 管理员可以代任何账单录入支付
func TestMakePaymentByAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig()).(*PaymentService)

	user := createTestUser(t, db, "a@society.test", models.RoleMember)
	member := createTestMember(t, db, user.ID, "zhang", "A-101")
	bill := seedBill(t, svc, member.ID, models.BillStatusUnpaid)

	if _, err := svc.MakePayment(adminActor(99), bill.ID, models.PaymentMethodCheque, ""); err != nil {
		t.Fatalf("管理员代为支付失败: %v", err)
	}
}

// 不存在的账单返回 ErrBillNotFound
func TestMakePaymentBillNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig()).(*PaymentService)

	_, err := svc.MakePayment(adminActor(1), 9999, models.PaymentMethodOnline, "")
	if !errors.Is(err, ErrBillNotFound) {
		t.Fatalf("MakePayment() error = %v, want ErrBillNotFound", err)
	}
}

// 支付汇总：成员只统计自己账单上的支付
func TestGetPaymentSummary(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db, testConfig()).(*PaymentService)

	userA := createTestUser(t, db, "a@society.test", models.RoleMember)
	memberA := createTestMember(t, db, userA.ID, "zhang", "A-101")
	userB := createTestUser(t, db, "b@society.test", models.RoleMember)
	memberB := createTestMember(t, db, userB.ID, "li", "A-102")

	billA := seedBill(t, svc, memberA.ID, models.BillStatusUnpaid)
	billB := seedBill(t, svc, memberB.ID, models.BillStatusUnpaid)

	if _, err := svc.MakePayment(memberActor(userA.ID, memberA.ID), billA.ID, models.PaymentMethodOnline, ""); err != nil {
		t.Fatalf("支付失败: %v", err)
	}
	if _, err := svc.MakePayment(memberActor(userB.ID, memberB.ID), billB.ID, models.PaymentMethodCash, ""); err != nil {
		t.Fatalf("支付失败: %v", err)
	}

	all, err := svc.GetPaymentSummary(adminActor(99))
	if err != nil {
		t.Fatalf("GetPaymentSummary(admin) error = %v", err)
	}
	if all.Count != 2 || all.TotalAmount != 3000 {
		t.Fatalf("管理员汇总 = %d笔 %v元, want 2笔 3000元", all.Count, all.TotalAmount)
	}

	own, err := svc.GetPaymentSummary(memberActor(userA.ID, memberA.ID))
	if err != nil {
		t.Fatalf("GetPaymentSummary(member) error = %v", err)
	}
	if own.Count != 1 || own.TotalAmount != 1500 {
		t.Fatalf("成员汇总 = %d笔 %v元, want 1笔 1500元", own.Count, own.TotalAmount)
	}
}

package services

import (
	"errors"
	"society-management-service/config"
	"society-management-service/internal/policy"
	"society-management-service/models"
	"society-management-service/utils"
	"time"

	"gorm.io/gorm"
)

// PaymentSummary 支付列表的汇总信息
type PaymentSummary struct {
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

// InterfacePaymentService defines the payment service interface
type InterfacePaymentService interface {
	GetPayments(actor policy.Actor, method string, page int, pageSize int) ([]models.Payment, int64, error)
	GetPaymentSummary(actor policy.Actor) (*PaymentSummary, error)
	MakePayment(actor policy.Actor, billID uint, method string, transactionID string) (*models.Payment, error)
}

// PaymentService 提供支付相关的服务
type PaymentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPaymentService 创建一个新的支付服务
func NewPaymentService(db *gorm.DB, cfg *config.Config) InterfacePaymentService {
	return &PaymentService{
		DB:     db,
		Config: cfg,
	}
}

// scopedPaymentQuery 按授权范围过滤支付查询。
// 成员只能看到自己账单上的支付，通过账单表联结过滤。
func (s *PaymentService) scopedPaymentQuery(actor policy.Actor) *gorm.DB {
	query := s.DB.Model(&models.Payment{})
	if policy.VisibleScope(actor, policy.ResourcePayment) == policy.ScopeOwn {
		query = query.
			Joins("JOIN maintenance_bills ON maintenance_bills.id = payments.bill_id").
			Where("maintenance_bills.member_id = ?", actor.MemberID)
	}
	return query
}

// GetPayments 获取支付记录列表，可按支付方式过滤
func (s *PaymentService) GetPayments(actor policy.Actor, method string, page int, pageSize int) ([]models.Payment, int64, error) {
	query := s.scopedPaymentQuery(actor)
	if method != "" {
		query = query.Where("payments.payment_method = ?", method)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []models.Payment
	if err := query.Preload("Bill").Preload("Bill.Member").
		Order("payments.payment_date DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// GetPaymentSummary 获取支付记录的笔数和总金额
func (s *PaymentService) GetPaymentSummary(actor policy.Actor) (*PaymentSummary, error) {
	summary := &PaymentSummary{}

	query := s.scopedPaymentQuery(actor)
	if err := query.Count(&summary.Count).Error; err != nil {
		return nil, err
	}
	if summary.Count == 0 {
		return summary, nil
	}

	if err := s.scopedPaymentQuery(actor).
		Select("COALESCE(SUM(payments.amount), 0)").
		Scan(&summary.TotalAmount).Error; err != nil {
		return nil, err
	}
	return summary, nil
}

// MakePayment 对一张未支付账单录入支付并把账单置为已支付。
// 插入支付记录和翻转账单状态在同一个事务中完成，
// 已支付的账单会被拒绝，不存在"支付成功但账单仍未支付"的中间态。
func (s *PaymentService) MakePayment(actor policy.Actor, billID uint, method string, transactionID string) (*models.Payment, error) {
	var payment *models.Payment

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var bill models.MaintenanceBill
		if err := tx.First(&bill, billID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBillNotFound
			}
			return err
		}

		// 账单归属校验：成员只能支付自己的账单
		if !policy.CanPay(actor, bill.MemberID) {
			return ErrForbidden
		}

		// 重复支付在这里被强制拒绝
		if bill.Status == models.BillStatusPaid {
			return ErrBillAlreadyPaid
		}

		if transactionID == "" {
			transactionID = utils.GenerateTransactionID()
		}

		payment = &models.Payment{
			BillID:        bill.ID,
			Amount:        bill.Amount, // 支付金额始终等于账单金额
			PaymentDate:   time.Now(),
			PaymentMethod: method,
			TransactionID: transactionID,
			ReceiptNumber: utils.GenerateReceiptNumber(),
		}
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		return tx.Model(&bill).Update("status", models.BillStatusPaid).Error
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

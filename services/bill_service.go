package services

import (
	"society-management-service/config"
	"society-management-service/internal/policy"
	"society-management-service/models"
	"time"

	"gorm.io/gorm"
)

// InterfaceBillService defines the maintenance bill service interface
type InterfaceBillService interface {
	GetBills(actor policy.Actor, status string, page int, pageSize int) ([]models.MaintenanceBill, int64, error)
	GetUnpaidBills(actor policy.Actor) ([]models.MaintenanceBill, error)
	GenerateBills(actor policy.Actor, amount float64, month string, year int, dueDate time.Time) (int, error)
}

// BillService 提供物业费账单相关的服务
type BillService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewBillService 创建一个新的账单服务
func NewBillService(db *gorm.DB, cfg *config.Config) InterfaceBillService {
	return &BillService{
		DB:     db,
		Config: cfg,
	}
}

// scopedBillQuery 按授权范围过滤账单查询
func (s *BillService) scopedBillQuery(actor policy.Actor) *gorm.DB {
	query := s.DB.Model(&models.MaintenanceBill{})
	if policy.VisibleScope(actor, policy.ResourceBill) == policy.ScopeOwn {
		// 没有成员档案的账户看不到任何账单
		query = query.Where("member_id = ?", actor.MemberID)
	}
	return query
}

// GetBills 获取账单列表，可按状态过滤。管理员看全部，成员只看自己的。
func (s *BillService) GetBills(actor policy.Actor, status string, page int, pageSize int) ([]models.MaintenanceBill, int64, error) {
	query := s.scopedBillQuery(actor)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bills []models.MaintenanceBill
	if err := query.Preload("Member").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&bills).Error; err != nil {
		return nil, 0, err
	}
	return bills, total, nil
}

// GetUnpaidBills 获取未支付账单，按到期日升序，用于支付页面
func (s *BillService) GetUnpaidBills(actor policy.Actor) ([]models.MaintenanceBill, error) {
	var bills []models.MaintenanceBill
	err := s.scopedBillQuery(actor).
		Where("status = ?", models.BillStatusUnpaid).
		Preload("Member").
		Order("due_date ASC").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}

// GenerateBills 为当前所有成员各生成一张未支付账单。
// 整个批量插入在一个事务中完成，任何失败都会整体回滚。
// 返回实际生成的账单数量，没有成员时生成0张且不报错。
func (s *BillService) GenerateBills(actor policy.Actor, amount float64, month string, year int, dueDate time.Time) (int, error) {
	if !policy.CanCreate(actor, policy.ResourceBill) {
		return 0, ErrForbidden
	}

	generated := 0
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var members []models.Member
		if err := tx.Select("id").Order("flat_number").Find(&members).Error; err != nil {
			return err
		}
		if len(members) == 0 {
			return nil
		}

		bills := make([]models.MaintenanceBill, 0, len(members))
		for _, member := range members {
			bills = append(bills, models.MaintenanceBill{
				MemberID: member.ID,
				Amount:   amount,
				Month:    month,
				Year:     year,
				DueDate:  dueDate,
				Status:   models.BillStatusUnpaid,
			})
		}

		if err := tx.Create(&bills).Error; err != nil {
			return err
		}
		generated = len(bills)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return generated, nil
}

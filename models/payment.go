package models

import "time"

// 支付方式常量
const (
	PaymentMethodOnline       = "online"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCash         = "cash"
	PaymentMethodCheque       = "cheque"
)

// Payment represents a settled payment against a maintenance bill
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BillID        uint      `gorm:"uniqueIndex;not null" json:"bill_id"` // 一张账单最多允许一条支付记录
	Amount        float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod string    `gorm:"type:varchar(20);not null" json:"payment_method"`
	TransactionID string    `gorm:"type:varchar(50);not null" json:"transaction_id"`
	ReceiptNumber string    `gorm:"type:varchar(36)" json:"receipt_number"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	Bill *MaintenanceBill `gorm:"foreignKey:BillID" json:"bill,omitempty"`
}

// IsValidPaymentMethod 检查支付方式是否合法
func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodOnline, PaymentMethodBankTransfer, PaymentMethodCash, PaymentMethodCheque:
		return true
	}
	return false
}

package models

import "time"

// 账单状态常量
const (
	BillStatusUnpaid = "unpaid"
	BillStatusPaid   = "paid"
)

// BillMonths 账单月份的固定取值
var BillMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MaintenanceBill represents a monthly maintenance charge owed by one member
type MaintenanceBill struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MemberID  uint      `gorm:"index;not null" json:"member_id"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Month     string    `gorm:"type:varchar(20);not null" json:"month"`
	Year      int       `gorm:"not null" json:"year"`
	DueDate   time.Time `json:"due_date"`
	Status    string    `gorm:"type:varchar(20);not null;default:unpaid" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Member  *Member  `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Payment *Payment `gorm:"foreignKey:BillID" json:"payment,omitempty"`
}

// IsValidBillMonth 检查月份是否为12个固定名称之一
func IsValidBillMonth(month string) bool {
	for _, m := range BillMonths {
		if m == month {
			return true
		}
	}
	return false
}

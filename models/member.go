package models

import "time"

// Member represents a society member living in a flat
type Member struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex;not null" json:"user_id"` // 每个账户最多对应一条成员记录
	Name       string    `gorm:"type:varchar(50);not null" json:"name"`
	FlatNumber string    `gorm:"type:varchar(20);not null" json:"flat_number"`
	Phone      string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email      string    `gorm:"type:varchar(100)" json:"email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	User       *User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bills      []MaintenanceBill `gorm:"foreignKey:MemberID" json:"bills,omitempty"`
	Complaints []Complaint       `gorm:"foreignKey:MemberID" json:"complaints,omitempty"`
}

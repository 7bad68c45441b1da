package models

import "time"

// 投诉状态常量
const (
	ComplaintStatusPending    = "pending"
	ComplaintStatusInProgress = "in_progress"
	ComplaintStatusResolved   = "resolved"
)

// Complaint represents an issue reported by a member
type Complaint struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	MemberID    uint       `gorm:"index;not null" json:"member_id"`
	Title       string     `gorm:"type:varchar(100);not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Status      string     `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	ResolvedAt  *time.Time `json:"resolved_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

// CanTransitionTo 判断投诉状态是否允许向目标状态迁移
// 状态只允许前进: pending -> in_progress -> resolved，pending 也可以直接到 resolved
func (c *Complaint) CanTransitionTo(newStatus string) bool {
	switch c.Status {
	case ComplaintStatusPending:
		return newStatus == ComplaintStatusInProgress || newStatus == ComplaintStatusResolved
	case ComplaintStatusInProgress:
		return newStatus == ComplaintStatusResolved
	}
	// resolved 是终态
	return false
}

package models

import "time"

// MemberSetting stores per-account notification and privacy preferences
type MemberSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 通知偏好
	NotifyEmail       bool `gorm:"default:true" json:"notify_email"`
	NotifyPush        bool `gorm:"default:false" json:"notify_push"`
	NotifyMaintenance bool `gorm:"default:true" json:"notify_maintenance"`
	NotifyComplaint   bool `gorm:"default:true" json:"notify_complaint"`
	NotifyNotice      bool `gorm:"default:true" json:"notify_notice"`

	// 隐私偏好
	ShowProfile bool `gorm:"default:true" json:"show_profile"`
	ShowContact bool `gorm:"default:false" json:"show_contact"`
}

// DefaultMemberSetting 返回指定账户的默认偏好设置
func DefaultMemberSetting(userID uint) MemberSetting {
	return MemberSetting{
		UserID:            userID,
		NotifyEmail:       true,
		NotifyPush:        false,
		NotifyMaintenance: true,
		NotifyComplaint:   true,
		NotifyNotice:      true,
		ShowProfile:       true,
		ShowContact:       false,
	}
}

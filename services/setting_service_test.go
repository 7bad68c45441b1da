package services

import (
	"testing"

	"society-management-service/models"
)

// 首次访问设置时落库默认值
func TestGetSettingsMaterializesDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingService(db, testConfig())

	user := createTestUser(t, db, "a@society.test", models.RoleMember)
	actor := memberActor(user.ID, 0)

	setting, err := svc.GetSettings(actor)
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if !setting.NotifyEmail || setting.NotifyPush || !setting.NotifyNotice {
		t.Fatalf("默认设置不符: %+v", setting)
	}

	// 再次访问返回同一条记录
	again, err := svc.GetSettings(actor)
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if again.ID != setting.ID {
		t.Fatalf("重复访问生成了新记录: %d != %d", again.ID, setting.ID)
	}

	var count int64
	db.Model(&models.MemberSetting{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Fatalf("设置记录数 = %d, want 1", count)
	}
}

// 设置更新只接受白名单字段
func TestUpdateSettings(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingService(db, testConfig())

	user := createTestUser(t, db, "a@society.test", models.RoleMember)
	actor := memberActor(user.ID, 0)

	_, err := svc.UpdateSettings(actor, map[string]interface{}{
		"notify_push":  true,
		"show_profile": false,
		"user_id":      9999, // 应当被忽略
	})
	if err != nil {
		t.Fatalf("UpdateSettings() error = %v", err)
	}

	var setting models.MemberSetting
	if err := db.Where("user_id = ?", user.ID).First(&setting).Error; err != nil {
		t.Fatalf("查询设置失败: %v", err)
	}
	if !setting.NotifyPush {
		t.Error("notify_push 更新未生效")
	}
	if setting.ShowProfile {
		t.Error("show_profile 更新未生效")
	}
	if setting.UserID != user.ID {
		t.Errorf("账户关联不应当被修改, got %d", setting.UserID)
	}
}

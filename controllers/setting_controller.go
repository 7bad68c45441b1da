package controllers

import (
	"society-management-service/internal/error/code"
	"society-management-service/internal/error/response"
	"society-management-service/services"
	"society-management-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceSettingController 定义偏好设置控制器接口
type InterfaceSettingController interface {
	GetSettings()
	UpdateSettings()
}

// SettingController 处理账户偏好设置相关的请求
type SettingController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSettingController 创建一个新的偏好设置控制器
func NewSettingController(ctx *gin.Context, container *container.ServiceContainer) *SettingController {
	return &SettingController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateSettingsRequest 表示更新偏好设置请求。
// 使用指针区分"未提交"和"显式关闭"。
type UpdateSettingsRequest struct {
	NotifyEmail       *bool `json:"notify_email" example:"true"`
	NotifyPush        *bool `json:"notify_push" example:"false"`
	NotifyMaintenance *bool `json:"notify_maintenance" example:"true"`
	NotifyComplaint   *bool `json:"notify_complaint" example:"true"`
	NotifyNotice      *bool `json:"notify_notice" example:"true"`
	ShowProfile       *bool `json:"show_profile" example:"true"`
	ShowContact       *bool `json:"show_contact" example:"false"`
}

// HandleSettingFunc 返回一个处理偏好设置请求的Gin处理函数
func HandleSettingFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSettingController(ctx, container)

		switch method {
		case "getSettings":
			controller.GetSettings()
		case "updateSettings":
			controller.UpdateSettings()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// GetSettings 获取当前账户的偏好设置
// @Summary      Get Settings
// @Description  Get notification and privacy preferences of the current account, defaults are materialized on first read
// @Tags         Setting
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.MemberSetting}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /settings [get]
func (c *SettingController) GetSettings() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	settingService := c.Container.GetService("setting").(services.InterfaceSettingService)
	setting, err := settingService.GetSettings(actor)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, setting)
}

// UpdateSettings 更新当前账户的偏好设置
// @Summary      Update Settings
// @Description  Update notification and privacy preferences of the current account, owner only
// @Tags         Setting
// @Accept       json
// @Produce      json
// @Param        request body UpdateSettingsRequest true "Settings update parameters"
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.MemberSetting}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /settings [put]
func (c *SettingController) UpdateSettings() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.NotifyEmail != nil {
		updates["notify_email"] = *req.NotifyEmail
	}
	if req.NotifyPush != nil {
		updates["notify_push"] = *req.NotifyPush
	}
	if req.NotifyMaintenance != nil {
		updates["notify_maintenance"] = *req.NotifyMaintenance
	}
	if req.NotifyComplaint != nil {
		updates["notify_complaint"] = *req.NotifyComplaint
	}
	if req.NotifyNotice != nil {
		updates["notify_notice"] = *req.NotifyNotice
	}
	if req.ShowProfile != nil {
		updates["show_profile"] = *req.ShowProfile
	}
	if req.ShowContact != nil {
		updates["show_contact"] = *req.ShowContact
	}

	settingService := c.Container.GetService("setting").(services.InterfaceSettingService)
	setting, err := settingService.UpdateSettings(actor, updates)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, setting)
}

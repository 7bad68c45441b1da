package controllers

import (
	"society-management-service/internal/error/code"
	"society-management-service/internal/error/response"
	"society-management-service/services"
	"society-management-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceProfileController 定义档案控制器接口
type InterfaceProfileController interface {
	GetProfile()
	UpdateProfile()
}

// ProfileController 处理成员档案相关的请求
type ProfileController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewProfileController 创建一个新的档案控制器
func NewProfileController(ctx *gin.Context, container *container.ServiceContainer) *ProfileController {
	return &ProfileController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateProfileRequest 表示更新档案请求，只开放姓名/电话/邮箱
type UpdateProfileRequest struct {
	Name  string `json:"name" example:"Rahul Sharma"`
	Phone string `json:"phone" example:"9876543210"`
	Email string `json:"email" binding:"omitempty,email" example:"rahul@society.local"`
}

// HandleProfileFunc 返回一个处理档案请求的Gin处理函数
func HandleProfileFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewProfileController(ctx, container)

		switch method {
		case "getProfile":
			controller.GetProfile()
		case "updateProfile":
			controller.UpdateProfile()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// GetProfile 获取当前账户的成员档案
// @Summary      Get Profile
// @Description  Get the member profile of the current account. Missing profile is an explicit 404 state, not an error.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.Member}
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /profile [get]
func (c *ProfileController) GetProfile() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	member, err := memberService.GetProfile(actor)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, member)
}

// UpdateProfile 更新当前账户的成员档案
// @Summary      Update Profile
// @Description  Update name/phone/email of the current account's member profile, owner only
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        request body UpdateProfileRequest true "Profile update parameters"
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.Member}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /profile [put]
func (c *ProfileController) UpdateProfile() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}

	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	member, err := memberService.UpdateProfile(actor, updates)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, member)
}

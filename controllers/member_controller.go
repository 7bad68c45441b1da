package controllers

import (
	"society-management-service/internal/error/code"
	"society-management-service/internal/error/response"
	"society-management-service/internal/policy"
	"society-management-service/models"
	"society-management-service/services"
	"society-management-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceMemberController 定义成员控制器接口
type InterfaceMemberController interface {
	GetMembers()
	GetMember()
	CreateMember()
}

// MemberController 处理社区成员相关的请求
type MemberController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewMemberController 创建一个新的成员控制器
func NewMemberController(ctx *gin.Context, container *container.ServiceContainer) *MemberController {
	return &MemberController{
		Ctx:       ctx,
		Container: container,
	}
}

// MemberRequest 表示创建成员请求
type MemberRequest struct {
	UserID     uint   `json:"user_id" binding:"required" example:"2"`
	Name       string `json:"name" binding:"required" example:"Rahul Sharma"`
	FlatNumber string `json:"flat_number" binding:"required" example:"A-101"`
	Phone      string `json:"phone" binding:"required" example:"9876543210"`
	Email      string `json:"email" binding:"omitempty,email" example:"rahul@society.local"`
}

// HandleMemberFunc 返回一个处理成员请求的Gin处理函数
func HandleMemberFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMemberController(ctx, container)

		switch method {
		case "getMembers":
			controller.GetMembers()
		case "getMember":
			controller.GetMember()
		case "createMember":
			controller.CreateMember()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// GetMembers 获取成员列表
// @Summary      List Members
// @Description  List society members, admin sees all rows, a member sees only their own row
// @Tags         Member
// @Accept       json
// @Produce      json
// @Param        page query int false "页码，默认为1"
// @Param        page_size query int false "每页条数，默认为10"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /members [get]
func (c *MemberController) GetMembers() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	page, pageSize := parsePagination(c.Ctx)

	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	members, total, err := memberService.GetAllMembers(actor, page, pageSize)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"pagination": models.NewPaginationResult(total, page, pageSize),
		"members":    members,
	})
}

// GetMember 获取单个成员
// @Summary      Get Member
// @Description  Get a single member by ID, members may only read their own row
// @Tags         Member
// @Accept       json
// @Produce      json
// @Param        id path int true "成员ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.Member}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /members/{id} [get]
func (c *MemberController) GetMember() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "成员ID不合法")
		return
	}

	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	member, err := memberService.GetMemberByID(id)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	// 数据边界的可见性二次校验
	if !policy.CanView(actor, policy.ResourceMember, member.ID) {
		response.Forbidden(c.Ctx)
		return
	}

	response.Success(c.Ctx, member)
}

// CreateMember 创建新成员
// @Summary      Create Member
// @Description  Create a member record for an existing account, admin only
// @Tags         Member
// @Accept       json
// @Produce      json
// @Param        request body MemberRequest true "Member request parameters"
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.Member}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /members [post]
func (c *MemberController) CreateMember() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	var req MemberRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	member := models.Member{
		UserID:     req.UserID,
		Name:       req.Name,
		FlatNumber: req.FlatNumber,
		Phone:      req.Phone,
		Email:      req.Email,
	}

	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	if err := memberService.CreateMember(actor, &member); err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, member)
}

package controllers

import (
	"society-management-service/internal/error/code"
	"society-management-service/internal/error/response"
	"society-management-service/models"
	"society-management-service/services"
	"society-management-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceNoticeController 定义公告控制器接口
type InterfaceNoticeController interface {
	GetNotices()
	GetNotice()
	CreateNotice()
}

// NoticeController 处理社区公告相关的请求
type NoticeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewNoticeController 创建一个新的公告控制器
func NewNoticeController(ctx *gin.Context, container *container.ServiceContainer) *NoticeController {
	return &NoticeController{
		Ctx:       ctx,
		Container: container,
	}
}

// NoticeRequest 表示发布公告请求
type NoticeRequest struct {
	Title   string `json:"title" binding:"required" example:"Water Supply Interruption"`
	Content string `json:"content" binding:"required" example:"Water supply will be interrupted on Sunday 10am-2pm for tank cleaning."`
}

// HandleNoticeFunc 返回一个处理公告请求的Gin处理函数
func HandleNoticeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewNoticeController(ctx, container)

		switch method {
		case "getNotices":
			controller.GetNotices()
		case "getNotice":
			controller.GetNotice()
		case "createNotice":
			controller.CreateNotice()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// GetNotices 获取公告列表
// @Summary      List Notices
// @Description  List notices visible to all authenticated users, newest first
// @Tags         Notice
// @Accept       json
// @Produce      json
// @Param        page query int false "页码，默认为1"
// @Param        page_size query int false "每页条数，默认为10"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /notices [get]
func (c *NoticeController) GetNotices() {
	page, pageSize := parsePagination(c.Ctx)

	noticeService := c.Container.GetService("notice").(services.InterfaceNoticeService)
	notices, total, err := noticeService.GetAllNotices(page, pageSize)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"pagination": models.NewPaginationResult(total, page, pageSize),
		"notices":    notices,
	})
}

// GetNotice 获取单个公告
// @Summary      Get Notice
// @Description  Get a single notice by ID
// @Tags         Notice
// @Accept       json
// @Produce      json
// @Param        id path int true "公告ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.Notice}
// @Failure      404  {object}  ErrorResponse
// @Router       /notices/{id} [get]
func (c *NoticeController) GetNotice() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "公告ID不合法")
		return
	}

	noticeService := c.Container.GetService("notice").(services.InterfaceNoticeService)
	notice, err := noticeService.GetNoticeByID(id)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, notice)
}

// CreateNotice 发布公告
// @Summary      Create Notice
// @Description  Publish a notice to all members, admin only
// @Tags         Notice
// @Accept       json
// @Produce      json
// @Param        request body NoticeRequest true "Notice request parameters"
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.Notice}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /notices [post]
func (c *NoticeController) CreateNotice() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	var req NoticeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	notice := models.Notice{
		Title:   req.Title,
		Content: req.Content,
	}

	noticeService := c.Container.GetService("notice").(services.InterfaceNoticeService)
	if err := noticeService.CreateNotice(actor, &notice); err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, notice)
}

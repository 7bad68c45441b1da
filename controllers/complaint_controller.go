package controllers

import (
	"society-management-service/internal/error/code"
	"society-management-service/internal/error/response"
	"society-management-service/models"
	"society-management-service/services"
	"society-management-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceComplaintController 定义投诉控制器接口
type InterfaceComplaintController interface {
	GetComplaints()
	GetComplaint()
	CreateComplaint()
	UpdateComplaintStatus()
}

// ComplaintController 处理投诉相关的请求
type ComplaintController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewComplaintController 创建一个新的投诉控制器
func NewComplaintController(ctx *gin.Context, container *container.ServiceContainer) *ComplaintController {
	return &ComplaintController{
		Ctx:       ctx,
		Container: container,
	}
}

// ComplaintRequest 表示提交投诉请求
type ComplaintRequest struct {
	Title       string `json:"title" binding:"required" example:"Leaking pipe"`
	Description string `json:"description" binding:"required" example:"The kitchen pipe has been leaking since Monday."`
}

// UpdateComplaintStatusRequest 表示更新投诉状态请求
type UpdateComplaintStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=in_progress resolved" example:"in_progress"`
}

// HandleComplaintFunc 返回一个处理投诉请求的Gin处理函数
func HandleComplaintFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewComplaintController(ctx, container)

		switch method {
		case "getComplaints":
			controller.GetComplaints()
		case "getComplaint":
			controller.GetComplaint()
		case "createComplaint":
			controller.CreateComplaint()
		case "updateComplaintStatus":
			controller.UpdateComplaintStatus()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// GetComplaints 获取投诉列表
// @Summary      List Complaints
// @Description  List complaints, admin sees all, a member sees only their own. Optional status filter.
// @Tags         Complaint
// @Accept       json
// @Produce      json
// @Param        status query string false "投诉状态(pending/in_progress/resolved)"
// @Param        page query int false "页码，默认为1"
// @Param        page_size query int false "每页条数，默认为10"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /complaints [get]
func (c *ComplaintController) GetComplaints() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	status := c.Ctx.Query("status")
	switch status {
	case "", models.ComplaintStatusPending, models.ComplaintStatusInProgress, models.ComplaintStatusResolved:
	default:
		response.ParamError(c.Ctx, "投诉状态不合法")
		return
	}

	page, pageSize := parsePagination(c.Ctx)

	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	complaints, total, err := complaintService.GetComplaints(actor, status, page, pageSize)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"pagination": models.NewPaginationResult(total, page, pageSize),
		"complaints": complaints,
	})
}

// GetComplaint 获取单个投诉
// @Summary      Get Complaint
// @Description  Get a single complaint by ID, members may only read their own complaints
// @Tags         Complaint
// @Accept       json
// @Produce      json
// @Param        id path int true "投诉ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.Complaint}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /complaints/{id} [get]
func (c *ComplaintController) GetComplaint() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "投诉ID不合法")
		return
	}

	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	complaint, err := complaintService.GetComplaintByID(actor, id)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, complaint)
}

// CreateComplaint 提交投诉
// @Summary      Submit Complaint
// @Description  Submit a new complaint, member role only, starts in pending status
// @Tags         Complaint
// @Accept       json
// @Produce      json
// @Param        request body ComplaintRequest true "Complaint request parameters"
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.Complaint}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /complaints [post]
func (c *ComplaintController) CreateComplaint() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	var req ComplaintRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	complaint, err := complaintService.CreateComplaint(actor, req.Title, req.Description)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, complaint)
}

// UpdateComplaintStatus 推进投诉状态
// @Summary      Update Complaint Status
// @Description  Advance complaint status forward only (pending→in_progress→resolved), admin only
// @Tags         Complaint
// @Accept       json
// @Produce      json
// @Param        id path int true "投诉ID"
// @Param        request body UpdateComplaintStatusRequest true "Status update parameters"
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.Complaint}
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /complaints/{id}/status [put]
func (c *ComplaintController) UpdateComplaintStatus() {
	actor, ok := currentActor(c.Ctx, c.Container)
	if !ok {
		return
	}

	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "投诉ID不合法")
		return
	}

	var req UpdateComplaintStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	complaint, err := complaintService.UpdateComplaintStatus(actor, id, req.Status)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	response.Success(c.Ctx, complaint)
}

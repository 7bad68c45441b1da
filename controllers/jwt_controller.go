package controllers

import (
	"society-management-service/internal/error/code"
	"society-management-service/internal/error/response"
	"society-management-service/services"
	"society-management-service/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceJWTController 定义认证控制器接口
type InterfaceJWTController interface {
	Login()
	Register()
}

// JWTController 处理身份验证请求
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController 创建一个新的认证控制器
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@society.local"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// RegisterRequest 表示注册请求
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"resident@society.local"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
	Role     string `json:"role" binding:"omitempty,oneof=admin member" example:"member"`
}

// LoginData 表示登录成功后返回的数据
type LoginData struct {
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	UserID   uint   `json:"user_id" example:"1"`
	Role     string `json:"role" example:"admin"`
	Email    string `json:"email" example:"admin@society.local"`
	MemberID uint   `json:"member_id,omitempty" example:"0"`
}

// HandleJWTFunc 返回一个处理认证请求的Gin处理函数
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "register":
			controller.Register()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// Login 处理用户登录
// @Summary      User Login
// @Description  Process user login and return JWT token with role-based permissions
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request parameters"
// @Success      200  {object}  response.Response{data=LoginData}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	// 校验邮箱和密码
	user, err := userService.Authenticate(req.Email, req.Password)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	// 解析账户关联的成员ID，写入令牌
	actor, err := userService.ResolveActor(user.ID, user.Role)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	token, err := jwtService.GenerateToken(user.ID, user.Role, actor.MemberID)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, LoginData{
		Token:    token,
		UserID:   user.ID,
		Role:     user.Role,
		Email:    user.Email,
		MemberID: actor.MemberID,
	})
}

// Register 处理用户注册
// @Summary      User Registration
// @Description  Create a new account with admin or member role, role is immutable afterwards
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Register request parameters"
// @Success      200  {object}  response.Response{data=LoginData}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func (c *JWTController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	user, err := userService.Register(req.Email, req.Password, req.Role)
	if err != nil {
		response.Fail(c.Ctx, services.ErrorCode(err), nil)
		return
	}

	// 注册后直接签发令牌，新账户此时还没有成员档案
	token, err := jwtService.GenerateToken(user.ID, user.Role, 0)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, LoginData{
		Token:  token,
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
	})
}

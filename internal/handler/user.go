package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lenscraft-server/internal/dto"
	"lenscraft-server/internal/middleware"
	"lenscraft-server/internal/service"
)

type UserHandler struct {
	userService  service.UserService
	tokenService service.TokenService
}

func NewUserHandler(userService service.UserService, tokenService service.TokenService) *UserHandler {
	return &UserHandler{
		userService:  userService,
		tokenService: tokenService,
	}
}

func (h *UserHandler) IssueToken(c echo.Context) error {
	var req dto.TokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, err := h.tokenService.Issue(req.Email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.TokenResponse{
		Token: "Bearer " + token,
	})
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetRole(c echo.Context) error {
	ctx := c.Request().Context()

	email := c.Param("email")
	if err := middleware.RequireSelf(c, email); err != nil {
		return err
	}

	user, err := h.userService.Get(ctx, email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.RoleResponse{
		Role: user.Role,
	})
}

func (h *UserHandler) UpdateRole(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateRoleRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.userService.SetRole(ctx, c.Param("id"), req.Role); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.RoleResponse{
		Role: req.Role,
	})
}

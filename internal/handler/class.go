package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lenscraft-server/internal/dto"
	"lenscraft-server/internal/middleware"
	"lenscraft-server/internal/model"
	"lenscraft-server/internal/service"
)

type ClassHandler struct {
	catalogService service.CatalogService
}

func NewClassHandler(catalogService service.CatalogService) *ClassHandler {
	return &ClassHandler{
		catalogService: catalogService,
	}
}

func (h *ClassHandler) CreateClass(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateClassRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	instructor := model.Instructor{Email: middleware.Email(c)}
	if user := middleware.User(c); user != nil {
		instructor.Name = user.Name
	}

	class, err := h.catalogService.CreateClass(ctx, instructor, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, class)
}

func (h *ClassHandler) ListAll(c echo.Context) error {
	classes, err := h.catalogService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classes)
}

func (h *ClassHandler) ListApproved(c echo.Context) error {
	classes, err := h.catalogService.ListApproved(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classes)
}

func (h *ClassHandler) Popular(c echo.Context) error {
	classes, err := h.catalogService.Popular(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, classes)
}

func (h *ClassHandler) Moderate(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ModerateClassRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	class, err := h.catalogService.Moderate(ctx, c.Param("id"), req.Action)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, class)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lenscraft-server/internal/dto"
	"lenscraft-server/internal/middleware"
	"lenscraft-server/internal/service"
)

type CartHandler struct {
	cartService service.CartService
	viewService service.ViewService
}

func NewCartHandler(cartService service.CartService, viewService service.ViewService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		viewService: viewService,
	}
}

func (h *CartHandler) AddSelected(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddCartItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := middleware.RequireSelf(c, req.Email); err != nil {
		return err
	}

	item, err := h.cartService.Add(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) RemoveSelected(c echo.Context) error {
	result, err := h.cartService.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CartHandler) ListSelected(c echo.Context) error {
	email := c.Param("email")
	if err := middleware.RequireSelf(c, email); err != nil {
		return err
	}

	selected, err := h.viewService.SelectedClasses(c.Request().Context(), email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, selected)
}

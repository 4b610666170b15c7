package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lenscraft-server/internal/dto"
	"lenscraft-server/internal/middleware"
	"lenscraft-server/internal/service"
)

type EnrollmentHandler struct {
	enrollmentService service.EnrollmentService
	viewService       service.ViewService
	paymentService    service.PaymentService
}

func NewEnrollmentHandler(
	enrollmentService service.EnrollmentService,
	viewService service.ViewService,
	paymentService service.PaymentService,
) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService: enrollmentService,
		viewService:       viewService,
		paymentService:    paymentService,
	}
}

func (h *EnrollmentHandler) CreatePaymentIntent(c echo.Context) error {
	var req dto.PaymentIntentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	intent, err := h.paymentService.CreateIntent(c.Request().Context(), req.Price)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     intent.Currency,
	})
}

func (h *EnrollmentHandler) SavePayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SavePaymentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := middleware.RequireSelf(c, req.Email); err != nil {
		return err
	}

	result, err := h.enrollmentService.Enroll(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *EnrollmentHandler) ListEnrolled(c echo.Context) error {
	email := c.Param("email")
	if err := middleware.RequireSelf(c, email); err != nil {
		return err
	}

	enrolled, err := h.viewService.EnrolledClasses(c.Request().Context(), email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, enrolled)
}

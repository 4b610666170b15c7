package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"lenscraft-server/internal/service"
)

// bind decodes and validates a request body.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("%w: invalid req body", service.ErrInvalidInput)
	}
	return c.Validate(req)
}

package server

import (
	"context"

	charmlog "github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"lenscraft-server/internal/handler"
	"lenscraft-server/internal/middleware"
	"lenscraft-server/internal/model"
	"lenscraft-server/internal/service"
)

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Users      service.UserService
	Tokens     service.TokenService
	Catalog    service.CatalogService
	Cart       service.CartService
	Views      service.ViewService
	Enrollment service.EnrollmentService
	Payments   service.PaymentService
}

type Server struct {
	echo              *echo.Echo
	services          Services
	userHandler       *handler.UserHandler
	classHandler      *handler.ClassHandler
	cartHandler       *handler.CartHandler
	enrollmentHandler *handler.EnrollmentHandler
}

func NewServer(logger *charmlog.Logger, services Services) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(requestLogger(logger))
	e.Use(echomw.Recover())

	s := &Server{
		echo:              e,
		services:          services,
		userHandler:       handler.NewUserHandler(services.Users, services.Tokens),
		classHandler:      handler.NewClassHandler(services.Catalog),
		cartHandler:       handler.NewCartHandler(services.Cart, services.Views),
		enrollmentHandler: handler.NewEnrollmentHandler(services.Enrollment, services.Views, services.Payments),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	auth := middleware.AuthMiddleware(s.services.Tokens)
	admin := middleware.RequireRole(s.services.Users, model.RoleAdmin)
	instructor := middleware.RequireRole(s.services.Users, model.RoleInstructor)

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- users --------
	api.POST("/jwt", s.userHandler.IssueToken)
	api.POST("/users", s.userHandler.CreateUser)
	api.GET("/users/:email/role", s.userHandler.GetRole, auth)
	api.PATCH("/users/:id", s.userHandler.UpdateRole, auth, admin)

	// -------- catalog --------
	api.GET("/classes", s.classHandler.ListApproved)
	api.GET("/popular-classes", s.classHandler.Popular)
	api.GET("/all-classes", s.classHandler.ListAll, auth, admin)
	api.POST("/all-classes", s.classHandler.CreateClass, auth, instructor)
	api.PATCH("/classes/:id", s.classHandler.Moderate, auth, admin)

	// -------- cart --------
	api.POST("/selected-classes", s.cartHandler.AddSelected, auth)
	api.DELETE("/selected-classes/:id", s.cartHandler.RemoveSelected, auth)
	api.GET("/selected-classes/:email", s.cartHandler.ListSelected, auth)

	// -------- enrollment --------
	api.GET("/enrolled-classes/:email", s.enrollmentHandler.ListEnrolled, auth)
	api.POST("/create-payment-intent", s.enrollmentHandler.CreatePaymentIntent, auth)
	api.POST("/save-payment-info", s.enrollmentHandler.SavePayment, auth)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() *echo.Echo {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

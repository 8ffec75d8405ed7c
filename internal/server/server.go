package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"manufacturer-api/internal/auth"
	"manufacturer-api/internal/handler"
	"manufacturer-api/internal/middleware"
	"manufacturer-api/internal/service"
)

type Server struct {
	echo   *echo.Echo
	tokens *auth.TokenManager
	policy auth.Policy

	partHandler    *handler.PartHandler
	reviewHandler  *handler.ReviewHandler
	orderHandler   *handler.OrderHandler
	userHandler    *handler.UserHandler
	profileHandler *handler.ProfileHandler
	paymentHandler *handler.PaymentHandler
}

func NewServer(
	tokens *auth.TokenManager,
	policy auth.Policy,
	partService service.PartService,
	reviewService service.ReviewService,
	orderService service.OrderService,
	userService service.UserService,
	profileService service.ProfileService,
	paymentService service.PaymentService,
) *Server {
	e := echo.New()

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:           e,
		tokens:         tokens,
		policy:         policy,
		partHandler:    handler.NewPartHandler(partService),
		reviewHandler:  handler.NewReviewHandler(reviewService),
		orderHandler:   handler.NewOrderHandler(orderService, paymentService),
		userHandler:    handler.NewUserHandler(userService),
		profileHandler: handler.NewProfileHandler(profileService),
		paymentHandler: handler.NewPaymentHandler(paymentService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	requireAuth := middleware.RequireAuth(s.tokens)
	requireAdmin := middleware.RequirePermission(s.policy, "users", "promote")

	s.echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Manufacturer website server")
	})

	// -------- parts --------
	s.echo.GET("/parts", s.partHandler.GetParts)
	s.echo.GET("/parts/:id", s.partHandler.GetPart)
	s.echo.POST("/parts", s.partHandler.CreatePart)
	s.echo.PUT("/parts/:id", s.partHandler.UpdatePartQuantity)
	s.echo.DELETE("/parts/:id", s.partHandler.DeletePart)

	// -------- reviews --------
	s.echo.GET("/reviews", s.reviewHandler.GetReviews)
	s.echo.POST("/reviews", s.reviewHandler.CreateReview)

	// -------- orders --------
	s.echo.GET("/orders/:id", s.orderHandler.GetOrder)
	s.echo.GET("/orders", s.orderHandler.GetOrdersByEmail, requireAuth)
	s.echo.POST("/orders", s.orderHandler.CreateOrder)
	s.echo.PATCH("/orders/:id", s.orderHandler.ConfirmOrderPayment, requireAuth)
	s.echo.DELETE("/orders/:email", s.orderHandler.DeleteOrderByEmail)

	// -------- users --------
	s.echo.GET("/users", s.userHandler.GetUsers, requireAuth)
	s.echo.GET("/admin/:email", s.userHandler.GetAdminStatus)
	s.echo.PUT("/user/admin/:email", s.userHandler.PromoteToAdmin, requireAuth, requireAdmin)
	s.echo.PUT("/user/:email", s.userHandler.UpsertUser)

	// -------- profiles --------
	s.echo.GET("/profile/:email", s.profileHandler.GetProfile)
	s.echo.PUT("/profile", s.profileHandler.UpsertProfile)
	s.echo.POST("/profile", s.profileHandler.CreateProfile)

	// -------- payments --------
	s.echo.POST("/create-payment-intent", s.paymentHandler.CreatePaymentIntent, requireAuth)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

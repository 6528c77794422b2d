package server

import (
	"net/http"

	"oroshop/internal/config"
	"oroshop/internal/handler"
	"oroshop/internal/repository"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth        *handler.AuthHandler
	Product     *handler.ProductHandler
	Cart        *handler.CartHandler
	AdminOrder  *handler.AdminOrderHandler
	AdminReport *handler.AdminReportHandler
	AdminUser   *handler.AdminUserHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository, h Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, handler.SuccessResponse{Message: "ok"})
	})

	h.Auth.RegisterRoutes(e, cfg, userRepo)
	h.Product.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e, cfg, userRepo)
	h.AdminOrder.RegisterRoutes(e, cfg, userRepo)
	h.AdminReport.RegisterRoutes(e, cfg, userRepo)
	h.AdminUser.RegisterRoutes(e, cfg, userRepo)
}

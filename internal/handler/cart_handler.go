package handler

import (
	"net/http"

	"oroshop/internal/config"
	"oroshop/internal/domain/model"
	"oroshop/internal/middleware"
	"oroshop/internal/repository"
	"oroshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP（一般ユーザーのみ）
type CartHandler struct {
	uc       *usecase.CartUsecase
	checkout *usecase.CheckoutUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, checkout *usecase.CheckoutUsecase) *CartHandler {
	return &CartHandler{uc: uc, checkout: checkout}
}

type AddCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method"`
}

type ClearCartResponse struct {
	Deleted int64 `json:"deleted"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/cart")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.TokenVersionGuard(userRepo))
	g.Use(middleware.RoleGuard(model.RoleNormal))

	g.GET("", h.getCart)
	g.POST("", h.addLine)
	g.DELETE("", h.clear)
	g.POST("/checkout", h.doCheckout)
}

func (h *CartHandler) getCart(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListLines(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addLine(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	line, err := h.uc.AddLine(c.Request().Context(), userID, usecase.AddCartInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, line)
}

func (h *CartHandler) clear(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	n, err := h.uc.Clear(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ClearCartResponse{Deleted: n})
}

func (h *CartHandler) doCheckout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.checkout.Checkout(c.Request().Context(), userID, req.PaymentMethod)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

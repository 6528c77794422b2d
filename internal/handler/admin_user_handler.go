package handler

import (
	"net/http"
	"strconv"

	"oroshop/internal/config"
	"oroshop/internal/domain/model"
	"oroshop/internal/middleware"
	"oroshop/internal/repository"
	"oroshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin/users
type AdminUserHandler struct {
	auth  *usecase.AuthUsecase
	users *usecase.UserUsecase
}

func NewAdminUserHandler(auth *usecase.AuthUsecase, users *usecase.UserUsecase) *AdminUserHandler {
	return &AdminUserHandler{auth: auth, users: users}
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AdminUserHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	// /admin/users 配下は「JWT必須 + token_version一致 + admin限定」
	g := e.Group("/admin/users")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.TokenVersionGuard(userRepo))
	g.Use(middleware.AdminRoleGuard())

	g.GET("", h.list)
	g.POST("", h.create)
	g.POST("/:id/force-logout", h.forceLogout)
}

func (h *AdminUserHandler) list(c echo.Context) error {
	out, err := h.users.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminUserHandler) create(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.users.Create(c.Request().Context(), adminID, usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.Role(req.Role),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AdminUserHandler) forceLogout(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}

	out, err := h.auth.ForceLogout(c.Request().Context(), adminID, userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

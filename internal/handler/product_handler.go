package handler

import (
	"net/http"
	"strconv"

	"oroshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /products の公開API
type ProductHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewProductHandler(uc *usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 商品・カテゴリのルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/:id", h.detail)
	e.GET("/categories", h.categories)
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) categories(c echo.Context) error {
	out, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

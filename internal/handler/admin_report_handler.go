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

// /admin/charts /admin/dashboard /admin/activity
type AdminReportHandler struct {
	reports  *usecase.ReportUsecase
	activity *usecase.ActivityUsecase
}

func NewAdminReportHandler(reports *usecase.ReportUsecase, activity *usecase.ActivityUsecase) *AdminReportHandler {
	return &AdminReportHandler{reports: reports, activity: activity}
}

func (h *AdminReportHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/admin")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.TokenVersionGuard(userRepo))
	g.Use(middleware.AdminRoleGuard())

	g.GET("/charts", h.charts)
	g.GET("/dashboard", h.dashboard)
	g.GET("/activity", h.listActivity)
}

func (h *AdminReportHandler) charts(c echo.Context) error {
	out, err := h.reports.Charts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminReportHandler) dashboard(c echo.Context) error {
	out, err := h.reports.Summary(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// ?user_id=&action=&limit=
func (h *AdminReportHandler) listActivity(c echo.Context) error {
	var f repository.ActivityLogFilter

	if v := c.QueryParam("user_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
		}
		f.UserID = &id
	}
	if v := c.QueryParam("action"); v != "" {
		a := model.ActivityAction(v)
		f.Action = &a
	}
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		f.Limit = l
	}

	out, err := h.activity.List(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

package handler

import (
	"errors"
	"net/http"

	"oroshop/internal/middleware"
	"oroshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// usecaseのエラーをステータスコードに変換する
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrEmptyCart):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cart empty"})
	case errors.Is(err, usecase.ErrValidation):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, usecase.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	case errors.Is(err, usecase.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, usecase.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}

	//500（中身はログだけに出す）
	zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("internal error")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func getUserIDFromContext(c echo.Context) (int64, bool) {
	id, ok := c.Get(middleware.CtxUserIDKey).(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

package middleware

import (
	"net/http"

	"oroshop/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// contextに入っているroleが指定のものか確認します。
func RoleGuard(role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got, ok := c.Get(CtxUserRoleKey).(string)
			if !ok || got == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			if model.Role(got) != role {
				return c.JSON(http.StatusForbidden, errorJSON(string(role)+" only"))
			}

			return next(c)
		}
	}
}

func AdminRoleGuard() echo.MiddlewareFunc {
	return RoleGuard(model.RoleAdmin)
}

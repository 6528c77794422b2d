package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const HeaderRequestID = "X-Request-ID"

// リクエストごとに1行ログを出す。
// request_id付きのロガーをcontextに入れるので、usecaseは zerolog.Ctx(ctx) で使える。
func RequestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			requestID := req.Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(HeaderRequestID, requestID)

			l := logger.With().Str("request_id", requestID).Logger()
			c.SetRequest(req.WithContext(l.WithContext(req.Context())))

			err := next(c)
			if err != nil {
				//echoのエラーハンドラにレスポンスを書かせる
				c.Error(err)
			}

			ev := l.Info()
			status := c.Response().Status
			if status >= 500 {
				ev = l.Error().Err(err)
			}
			if uid, ok := c.Get(CtxUserIDKey).(int64); ok {
				ev = ev.Int64("user_id", uid)
			}
			ev.Str("method", req.Method).
				Str("path", c.Path()).
				Int("status", status).
				Dur("duration", time.Since(start)).
				Msg("request completed")

			return nil
		}
	}
}

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"oroshop/internal/config"
	"oroshop/internal/handler"
	infraauth "oroshop/internal/infra/auth"
	infraRepo "oroshop/internal/infra/repository"
	"oroshop/internal/middleware"
	"oroshop/internal/usecase"
	"oroshop/internal/validator"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// New はRepository→Usecase→Handlerを組み立てて、ルート登録済みのechoを返す。
// eventsがnilならイベントは送らない。
func New(cfg config.Config, logger zerolog.Logger, gormDB *gorm.DB, events usecase.EventPublisher) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	// panicもRecoverが500にしてからRequestLoggerが記録する
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	cartLineRepo := infraRepo.NewCartLineGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	paymentRepo := infraRepo.NewPaymentGormRepository(gormDB)
	activityRepo := infraRepo.NewActivityLogGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	clock := usecase.SystemClock{}
	idGen := usecase.UUIDGenerator{}
	if events == nil {
		events = usecase.NoopPublisher{}
	}

	//Usecase生成
	authUC := usecase.NewAuthUsecase(
		userRepo,
		activityRepo,
		validator.NewAuthValidator(),
		infraauth.NewBcryptPasswordVerifier(),
		infraauth.NewJWTIssuer(cfg.JWTSecret, cfg.AccessTokenTTL),
		clock,
	)
	catalogUC := usecase.NewCatalogUsecase(productRepo, categoryRepo)
	cartUC := usecase.NewCartUsecase(txm, productRepo, cartLineRepo, clock)
	checkoutUC := usecase.NewCheckoutUsecase(txm, events, idGen, clock)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo, paymentRepo)
	reportUC := usecase.NewReportUsecase(productRepo, cartLineRepo, orderRepo, paymentRepo, userRepo)
	activityUC := usecase.NewActivityUsecase(activityRepo)
	userUC := usecase.NewUserUsecase(
		userRepo,
		activityRepo,
		validator.NewUserValidator(),
		infraauth.NewBcryptPasswordHasher(cfg.BcryptCost),
		clock,
	)

	//Handler生成
	RegisterRoutes(e, cfg, userRepo, Handlers{
		Auth:        handler.NewAuthHandler(authUC),
		Product:     handler.NewProductHandler(catalogUC),
		Cart:        handler.NewCartHandler(cartUC, checkoutUC),
		AdminOrder:  handler.NewAdminOrderHandler(adminOrderUC),
		AdminReport: handler.NewAdminReportHandler(reportUC, activityUC),
		AdminUser:   handler.NewAdminUserHandler(authUC, userUC),
	})

	return e
}

// Start はctxがキャンセルされるまでサーバーを動かし、終わったらgracefulに止める。
func Start(ctx context.Context, e *echo.Echo, addr string, logger zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

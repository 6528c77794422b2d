package db

import (
	"context"
	"fmt"
	"time"

	"oroshop/internal/config"
	"oroshop/internal/domain/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
// DB_DRIVERがpostgresならpostgres、それ以外はsqliteファイルを開く。
func Connect(ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.PostgresDSN())
	default:
		dialector = sqlite.Open(SQLiteDSN(cfg.SQLitePath))
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if cfg.DBDriver == config.DriverPostgres {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return gormDB, nil
}

// SQLiteDSN はsqliteのパスに、ロック待ちと外部キーのpragmaを付ける。
func SQLiteDSN(path string) string {
	return path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}

// Migrate は全テーブルを作成・更新する。
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.User{},
		&model.Order{},
		&model.Payment{},
		&model.CartLine{},
		&model.ActivityLog{},
	)
}

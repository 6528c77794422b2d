package seed

import (
	"context"
	"fmt"

	"oroshop/internal/domain/model"
	repo "oroshop/internal/repository"
	"oroshop/internal/usecase"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type productSeed struct {
	Name        string
	Description string
	Price       string
	Stock       int64
}

type userSeed struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

var defaultCategory = model.Category{
	Name:        "Electrónica",
	Description: "Dispositivos electrónicos",
}

var defaultProducts = []productSeed{
	{Name: "Laptop Oro", Description: "Laptop de alta gama", Price: "1200.50", Stock: 15},
	{Name: "Tablet Plata", Description: "Tablet de 10 pulgadas", Price: "450.75", Stock: 32},
	{Name: "Teléfono Diamante", Description: "Smartphone premium", Price: "899.99", Stock: 8},
}

var defaultUsers = []userSeed{
	{Name: "Administrador", Email: "admin@oroshop.local", Password: "admin123", Role: model.RoleAdmin},
	{Name: "Juan Pérez", Email: "juan@oroshop.local", Password: "juan123", Role: model.RoleNormal},
	{Name: "María García", Email: "maria@oroshop.local", Password: "maria123", Role: model.RoleNormal},
	{Name: "Carlos López", Email: "carlos@oroshop.local", Password: "carlos123", Role: model.RoleNormal},
}

type Seeder struct {
	categories repo.CategoryRepository
	products   repo.ProductRepository
	users      repo.UserRepository
	hasher     usecase.PasswordHasher
	logger     zerolog.Logger
}

func NewSeeder(
	categories repo.CategoryRepository,
	products repo.ProductRepository,
	users repo.UserRepository,
	hasher usecase.PasswordHasher,
	logger zerolog.Logger,
) *Seeder {
	return &Seeder{
		categories: categories,
		products:   products,
		users:      users,
		hasher:     hasher,
		logger:     logger,
	}
}

// Run は初期データを入れる。何度実行しても同じ状態になる。
// 商品は1件でもあれば追加しない。
func (s *Seeder) Run(ctx context.Context) error {
	cat, err := s.categories.FindOrCreate(ctx, defaultCategory)
	if err != nil {
		return fmt.Errorf("seed category: %w", err)
	}

	n, err := s.products.Count(ctx)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if n == 0 {
		for _, ps := range defaultProducts {
			price, err := decimal.NewFromString(ps.Price)
			if err != nil {
				return fmt.Errorf("parse price %q: %w", ps.Price, err)
			}
			p, err := s.products.Create(ctx, model.Product{
				Name:        ps.Name,
				Description: ps.Description,
				Price:       price,
				Stock:       ps.Stock,
				CategoryID:  cat.ID,
			})
			if err != nil {
				return fmt.Errorf("seed product %s: %w", ps.Name, err)
			}
			s.logger.Info().Int64("product_id", p.ID).Str("name", p.Name).Msg("product seeded")
		}
	}

	for _, us := range defaultUsers {
		hash, err := s.hasher.Hash(us.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		u, err := s.users.FindOrCreate(ctx, model.User{
			Name:         us.Name,
			Email:        us.Email,
			PasswordHash: hash,
			Role:         us.Role,
		})
		if err != nil {
			return fmt.Errorf("seed user %s: %w", us.Email, err)
		}
		s.logger.Debug().Int64("user_id", u.ID).Str("email", u.Email).Msg("user ready")
	}
	return nil
}

type TableCount struct {
	Table string
	Count int64
}

// Status はテーブルごとの件数を返す
func Status(ctx context.Context, gormDB *gorm.DB) ([]TableCount, error) {
	tables := []struct {
		name  string
		model interface{}
	}{
		{"categories", &model.Category{}},
		{"products", &model.Product{}},
		{"users", &model.User{}},
		{"cart_lines", &model.CartLine{}},
		{"orders", &model.Order{}},
		{"payments", &model.Payment{}},
		{"activity_logs", &model.ActivityLog{}},
	}

	out := make([]TableCount, 0, len(tables))
	for _, t := range tables {
		var n int64
		if err := gormDB.WithContext(ctx).Model(t.model).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", t.name, err)
		}
		out = append(out, TableCount{Table: t.name, Count: n})
	}
	return out, nil
}

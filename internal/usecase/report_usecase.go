package usecase

import (
	"context"
	"sort"

	"oroshop/internal/domain/model"
	repo "oroshop/internal/repository"

	"github.com/shopspring/decimal"
)

// 集計は毎回計算し直す（キャッシュしない）
type ReportUsecase struct {
	products  repo.ProductRepository
	cartLines repo.CartLineRepository
	orders    repo.OrderRepository
	payments  repo.PaymentRepository
	users     repo.UserRepository
}

func NewReportUsecase(
	products repo.ProductRepository,
	cartLines repo.CartLineRepository,
	orders repo.OrderRepository,
	payments repo.PaymentRepository,
	users repo.UserRepository,
) *ReportUsecase {
	return &ReportUsecase{
		products:  products,
		cartLines: cartLines,
		orders:    orders,
		payments:  payments,
		users:     users,
	}
}

type ProductSales struct {
	ProductID     int64  `json:"product_id"`
	ProductName   string `json:"product_name"`
	TotalQuantity int64  `json:"total_quantity"`
}

type MonthlySales struct {
	Month   string          `json:"month"` // YYYY-MM
	Revenue decimal.Decimal `json:"revenue"`
}

type ChartsOutput struct {
	ByProduct []ProductSales `json:"by_product"`
	ByMonth   []MonthlySales `json:"by_month"`
}

type DashboardSummary struct {
	TotalUsers     int64           `json:"total_users"`
	TotalProducts  int64           `json:"total_products"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	TotalOrders    int64           `json:"total_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
}

// 商品ごとの販売数量（商品ID順）。
// カタログに無い商品の明細は落とす。
func (u *ReportUsecase) SalesByProduct(ctx context.Context) ([]ProductSales, error) {
	lines, err := u.cartLines.ListCheckedOut(ctx)
	if err != nil {
		return []ProductSales{}, persistence("list checked out lines", err)
	}
	products, err := u.products.List(ctx)
	if err != nil {
		return []ProductSales{}, persistence("list products", err)
	}

	return salesByProduct(lines, products), nil
}

// 月ごとの売上（YYYY-MM順）。
// 注文が見つからない明細は落とす。
func (u *ReportUsecase) SalesByMonth(ctx context.Context) ([]MonthlySales, error) {
	lines, err := u.cartLines.ListCheckedOut(ctx)
	if err != nil {
		return []MonthlySales{}, persistence("list checked out lines", err)
	}
	orders, err := u.orders.List(ctx)
	if err != nil {
		return []MonthlySales{}, persistence("list orders", err)
	}

	return salesByMonth(lines, orders), nil
}

func (u *ReportUsecase) Charts(ctx context.Context) (ChartsOutput, error) {
	byProduct, err := u.SalesByProduct(ctx)
	if err != nil {
		return ChartsOutput{}, err
	}
	byMonth, err := u.SalesByMonth(ctx)
	if err != nil {
		return ChartsOutput{}, err
	}
	return ChartsOutput{ByProduct: byProduct, ByMonth: byMonth}, nil
}

// ダッシュボードの数字
func (u *ReportUsecase) Summary(ctx context.Context) (DashboardSummary, error) {
	users, err := u.users.Count(ctx)
	if err != nil {
		return DashboardSummary{}, persistence("count users", err)
	}
	products, err := u.products.List(ctx)
	if err != nil {
		return DashboardSummary{}, persistence("list products", err)
	}
	orders, err := u.orders.Count(ctx)
	if err != nil {
		return DashboardSummary{}, persistence("count orders", err)
	}
	payments, err := u.payments.List(ctx)
	if err != nil {
		return DashboardSummary{}, persistence("list payments", err)
	}

	out := DashboardSummary{
		TotalUsers:     users,
		TotalProducts:  int64(len(products)),
		InventoryValue: decimal.Zero,
		TotalOrders:    orders,
		TotalRevenue:   decimal.Zero,
	}
	for _, p := range products {
		out.InventoryValue = out.InventoryValue.Add(p.Price.Mul(decimal.NewFromInt(p.Stock)))
	}
	for _, p := range payments {
		out.TotalRevenue = out.TotalRevenue.Add(p.Amount)
	}
	return out, nil
}

func salesByProduct(lines []model.CartLine, products []model.Product) []ProductSales {
	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	qty := map[int64]int64{}
	for _, l := range lines {
		if _, ok := names[l.ProductID]; !ok {
			continue
		}
		qty[l.ProductID] += l.Quantity
	}

	out := make([]ProductSales, 0, len(qty))
	for id, q := range qty {
		out = append(out, ProductSales{ProductID: id, ProductName: names[id], TotalQuantity: q})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}

func salesByMonth(lines []model.CartLine, orders []model.Order) []MonthlySales {
	months := make(map[int64]string, len(orders))
	for _, o := range orders {
		months[o.ID] = o.Month()
	}

	revenue := map[string]decimal.Decimal{}
	for _, l := range lines {
		if l.OrderID == nil {
			continue
		}
		m, ok := months[*l.OrderID]
		if !ok {
			continue
		}
		revenue[m] = revenue[m].Add(l.Subtotal)
	}

	out := make([]MonthlySales, 0, len(revenue))
	for m, r := range revenue {
		out = append(out, MonthlySales{Month: m, Revenue: r})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

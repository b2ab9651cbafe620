package usecase

import (
	"context"
	"log/slog"
	"net/http"

	"boutique/internal/domain/model"
	repo "boutique/internal/repository"
)

type DashboardStats struct {
	TotalProducts     int64              `json:"totalProducts"`
	TotalOrders       int64              `json:"totalOrders"`
	TotalSubscribers  int64              `json:"totalSubscribers"`
	PageViews         int64              `json:"pageViews"`
	RecentOrders      []model.Order      `json:"recentOrders"`
	RecentSubscribers []model.Subscriber `json:"recentSubscribers"`
}

type StatsUsecase struct {
	products    repo.ProductRepository
	orders      repo.OrderRepository
	subscribers repo.SubscriberRepository
	views       repo.ViewCounterRepository
}

// DI
func NewStatsUsecase(
	products repo.ProductRepository,
	orders repo.OrderRepository,
	subscribers repo.SubscriberRepository,
	views repo.ViewCounterRepository,
) *StatsUsecase {
	return &StatsUsecase{
		products:    products,
		orders:      orders,
		subscribers: subscribers,
		views:       views,
	}
}

// 管理画面トップのサマリ
func (u *StatsUsecase) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	productCount, err := u.products.Count(ctx)
	if err != nil {
		return DashboardStats{}, u.statsError("count products", err)
	}
	orderCount, err := u.orders.Count(ctx)
	if err != nil {
		return DashboardStats{}, u.statsError("count orders", err)
	}
	subscriberCount, err := u.subscribers.Count(ctx)
	if err != nil {
		return DashboardStats{}, u.statsError("count subscribers", err)
	}
	views, err := u.views.Get(ctx)
	if err != nil {
		return DashboardStats{}, u.statsError("get view count", err)
	}
	recentOrders, err := u.orders.ListRecent(ctx, 3)
	if err != nil {
		return DashboardStats{}, u.statsError("list recent orders", err)
	}
	recentSubscribers, err := u.subscribers.ListRecent(ctx, 5)
	if err != nil {
		return DashboardStats{}, u.statsError("list recent subscribers", err)
	}

	return DashboardStats{
		TotalProducts:     productCount,
		TotalOrders:       orderCount,
		TotalSubscribers:  subscriberCount,
		PageViews:         views,
		RecentOrders:      recentOrders,
		RecentSubscribers: recentSubscribers,
	}, nil
}

func (u *StatsUsecase) IncrementViews(ctx context.Context) (int64, error) {
	count, err := u.views.Increment(ctx)
	if err != nil {
		slog.Error("increment views failed", "error", err)
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return count, nil
}

func (u *StatsUsecase) GetViews(ctx context.Context) (int64, error) {
	count, err := u.views.Get(ctx)
	if err != nil {
		slog.Error("get views failed", "error", err)
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return count, nil
}

func (u *StatsUsecase) statsError(op string, err error) error {
	slog.Error("dashboard stats failed", "op", op, "error", err)
	return NewHTTPError(http.StatusInternalServerError, "db error")
}

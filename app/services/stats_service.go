package services

import (
	"fmt"
	"time"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/models"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/cache"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/logger"
)

const statsCacheKey = "stats:dashboard"
const statsCacheTTL = 10 * time.Minute

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	Users          int64          `json:"users"`
	Products       int64          `json:"products"`
	Orders         int64          `json:"orders"`
	PublishedBlogs int64          `json:"published_blogs"`
	Revenue        float64        `json:"revenue"`
	RecentOrders   []models.Order `json:"recent_orders"`
	GeneratedAt    time.Time      `json:"generated_at"`
}

type StatsService struct {
	users    *repositories.UserRepository
	products *repositories.ProductRepository
	orders   *repositories.OrderRepository
	blogs    *repositories.BlogRepository
	sales    *repositories.SaleRepository
}

func NewStatsService(
	users *repositories.UserRepository,
	products *repositories.ProductRepository,
	orders *repositories.OrderRepository,
	blogs *repositories.BlogRepository,
	sales *repositories.SaleRepository,
) *StatsService {
	return &StatsService{users: users, products: products, orders: orders, blogs: blogs, sales: sales}
}

// Dashboard returns the summary, cache-aside with a 10 minute TTL.
func (s *StatsService) Dashboard() (*DashboardStats, error) {
	var stats DashboardStats
	if cache.Get(statsCacheKey, &stats) {
		return &stats, nil
	}
	return s.refresh()
}

// Refresh recomputes the snapshot and rewrites the cache. The scheduler
// calls this daily so a quiet dashboard still has fresh numbers.
func (s *StatsService) Refresh() error {
	_, err := s.refresh()
	return err
}

func (s *StatsService) refresh() (*DashboardStats, error) {
	stats := DashboardStats{GeneratedAt: time.Now().UTC()}

	var err error
	if stats.Users, err = s.users.Count(); err != nil {
		return nil, fmt.Errorf("stats: users: %w", err)
	}
	if stats.Products, err = s.products.Count(); err != nil {
		return nil, fmt.Errorf("stats: products: %w", err)
	}
	if stats.Orders, err = s.orders.Count(); err != nil {
		return nil, fmt.Errorf("stats: orders: %w", err)
	}
	if stats.PublishedBlogs, err = s.blogs.CountPublished(); err != nil {
		return nil, fmt.Errorf("stats: blogs: %w", err)
	}
	if stats.Revenue, err = s.sales.Revenue(); err != nil {
		return nil, fmt.Errorf("stats: revenue: %w", err)
	}
	if stats.RecentOrders, err = s.orders.Recent(10); err != nil {
		return nil, fmt.Errorf("stats: recent orders: %w", err)
	}

	cache.Set(statsCacheKey, stats, statsCacheTTL) //nolint:errcheck
	logger.Debug("stats: snapshot refreshed", "orders", stats.Orders, "revenue", stats.Revenue)
	return &stats, nil
}

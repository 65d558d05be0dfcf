package service

import (
	"context"
	"fmt"

	"varmepumpe/internal/model"
	"varmepumpe/internal/repository"
)

// SubscriptionPrice is the monthly price in NOK of one active subscription.
const SubscriptionPrice = 29

// StatsService computes the admin dashboard figures.
type StatsService interface {
	AdminStats(ctx context.Context) (*model.AdminStats, error)
}

type statsService struct {
	store repository.Store
}

// NewStatsService creates a new stats service.
func NewStatsService(store repository.Store) StatsService {
	return &statsService{store: store}
}

// AdminStats counts customers, installers and open requests.
func (s *statsService) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	var (
		stats model.AdminStats
		err   error
	)
	if stats.TotalCustomers, err = s.store.Customers().Count(ctx); err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}
	if stats.ActiveInstallers, err = s.store.Installers().CountApproved(ctx); err != nil {
		return nil, fmt.Errorf("count installers: %w", err)
	}
	if stats.PendingApprovals, err = s.store.Installers().CountPending(ctx); err != nil {
		return nil, fmt.Errorf("count pending installers: %w", err)
	}
	if stats.OpenServiceRequests, err = s.store.ServiceRequests().CountByStatus(ctx, model.RequestStatusOpen); err != nil {
		return nil, fmt.Errorf("count open requests: %w", err)
	}
	subscriptions, err := s.store.Customers().CountActiveSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("count subscriptions: %w", err)
	}
	stats.MonthlyRevenue = subscriptions * SubscriptionPrice
	return &stats, nil
}

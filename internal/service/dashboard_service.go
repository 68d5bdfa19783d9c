package service

import (
	"context"

	"go-inventory-catalog/internal/model"
	"go-inventory-catalog/internal/repository"
)

type DashboardService interface {
	GetStats(ctx context.Context, filter model.ProductFilter) (*model.InventoryStats, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
}

func NewDashboardService(pRepo repository.ProductRepository) DashboardService {
	return &dashboardService{productRepo: pRepo}
}

func (s *dashboardService) GetStats(ctx context.Context, filter model.ProductFilter) (*model.InventoryStats, error) {
	return s.productRepo.Stats(ctx, filter)
}

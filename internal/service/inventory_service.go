package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-inventory-catalog/internal/metrics"
	"go-inventory-catalog/internal/model"
	"go-inventory-catalog/internal/repository"
)

// EventPublisher receives catalog changes after they are committed.
type EventPublisher interface {
	Publish(event model.CatalogEvent)
}

type InventoryService interface {
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	GetCategories(ctx context.Context) ([]string, error)
	CreateProduct(ctx context.Context, in *model.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uint, in *model.ProductInput) (*model.Product, error)
	UpdateQuantity(ctx context.Context, id uint, in *model.QuantityInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type inventoryService struct {
	productRepo repository.ProductRepository
	events      EventPublisher
}

// NewInventoryService wires the store and an optional event publisher (nil disables events).
func NewInventoryService(pRepo repository.ProductRepository, events EventPublisher) InventoryService {
	return &inventoryService{
		productRepo: pRepo,
		events:      events,
	}
}

func (s *inventoryService) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	return s.productRepo.FindAll(ctx, filter)
}

func (s *inventoryService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *inventoryService) GetCategories(ctx context.Context) ([]string, error) {
	return s.productRepo.Categories(ctx)
}

func (s *inventoryService) CreateProduct(ctx context.Context, in *model.ProductInput) (*model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	product := toProduct(in)

	// Cheap pre-check; the unique index still guards concurrent inserts.
	if _, err := s.productRepo.FindBySKU(ctx, product.SKU); err == nil {
		return nil, repository.ErrDuplicateSKU
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.publish(model.ActionProductCreated, product, nil, fmt.Sprintf("Product '%s' created", product.Name))
	return product, nil
}

func (s *inventoryService) UpdateProduct(ctx context.Context, id uint, in *model.ProductInput) (*model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	updated, err := s.productRepo.Update(ctx, id, toProduct(in))
	if err != nil {
		return nil, err
	}

	s.publish(model.ActionProductUpdated, updated, nil, fmt.Sprintf("Product '%s' updated", updated.Name))
	return updated, nil
}

func (s *inventoryService) UpdateQuantity(ctx context.Context, id uint, in *model.QuantityInput) (*model.Product, error) {
	if err := validateQuantityInput(in); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldQty := existing.Quantity

	updated, err := s.productRepo.UpdateQuantity(ctx, id, *in.Quantity)
	if err != nil {
		return nil, err
	}

	s.publish(model.ActionQuantityChanged, updated, &oldQty,
		fmt.Sprintf("Stock of '%s' changed from %d to %d", updated.Name, oldQty, updated.Quantity))
	return updated, nil
}

func (s *inventoryService) DeleteProduct(ctx context.Context, id uint) error {
	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(model.ActionProductDeleted, existing, nil, fmt.Sprintf("Product '%s' deleted", existing.Name))
	return nil
}

func (s *inventoryService) publish(action model.CatalogAction, p *model.Product, oldQty *int, message string) {
	metrics.CatalogMutations.WithLabelValues(string(action)).Inc()
	if s.events == nil {
		return
	}
	snapshot := *p
	event := model.NewCatalogEvent(action, &snapshot, message)
	event.OldQty = oldQty
	s.events.Publish(event)
}

// toProduct trims the text fields and fills in the category image when none was given.
func toProduct(in *model.ProductInput) *model.Product {
	p := &model.Product{
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Price:       in.Price.Round(2),
		Quantity:    *in.Quantity,
		SKU:         strings.TrimSpace(in.SKU),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    strings.TrimSpace(in.ImageURL),
	}
	if p.ImageURL == "" {
		p.ImageURL = model.CategoryDefaultImage(p.Category)
	}
	return p
}

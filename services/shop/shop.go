package shop

import (
	"context"
	"fmt"
	"time"

	shopRepo "inkwell/database/repository/shop"
	"inkwell/models"
	"inkwell/services/payment"
	"inkwell/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductInput carries the fields for creating or updating a product.
type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Currency    string  `json:"currency"`
	ImageURL    string  `json:"imageUrl"`
	Stock       int     `json:"stock"`
}

// PlaceOrderInput carries the fields for a shop purchase.
type PlaceOrderInput struct {
	ProductID       string `json:"productId" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required"`
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
	Email           string `json:"email"`
}

// ShopService manages the studio merch catalogue and orders.
type ShopService interface {
	CreateProduct(input ProductInput) (*models.Product, error)
	UpdateProduct(id string, input ProductInput) (*models.Product, error)
	DeleteProduct(id string) error
	GetProduct(id string) (*models.Product, error)
	ListProducts(limit int64, afterID string) ([]models.Product, error)

	// PlaceOrder reserves stock, charges the buyer, and records the order.
	// Stock is released if the charge does not go through.
	PlaceOrder(ctx context.Context, userID string, input PlaceOrderInput) (*models.Order, error)
	ListUserOrders(userID string, limit int64, afterID string) ([]models.Order, error)
}

// DefaultShopService implements ShopService.
type DefaultShopService struct {
	Repo     shopRepo.ShopRepository
	Payments payment.PaymentService
}

// CreateProduct adds a product to the catalogue.
func (s *DefaultShopService) CreateProduct(input ProductInput) (*models.Product, error) {
	if input.Price <= 0 {
		return nil, fmt.Errorf("price must be positive")
	}
	if input.Stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}
	currency := input.Currency
	if currency == "" {
		currency = "usd"
	}

	p := &models.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Currency:    currency,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
	}
	if err := s.Repo.CreateProduct(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProduct replaces a product's editable fields.
func (s *DefaultShopService) UpdateProduct(id string, input ProductInput) (*models.Product, error) {
	p, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	p.Name = input.Name
	p.Description = input.Description
	p.Price = input.Price
	if input.Currency != "" {
		p.Currency = input.Currency
	}
	p.ImageURL = input.ImageURL
	p.Stock = input.Stock

	if err := s.Repo.UpdateProduct(p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct removes a product from the catalogue.
func (s *DefaultShopService) DeleteProduct(id string) error {
	return s.Repo.DeleteProduct(id)
}

// GetProduct fetches one product.
func (s *DefaultShopService) GetProduct(id string) (*models.Product, error) {
	p, err := s.Repo.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("product %s not found", id)
	}
	return p, nil
}

// ListProducts returns the catalogue, paginated.
func (s *DefaultShopService) ListProducts(limit int64, afterID string) ([]models.Product, error) {
	return s.Repo.ListProducts(limit, afterID)
}

// PlaceOrder reserves stock, charges the buyer, and records the order.
func (s *DefaultShopService) PlaceOrder(ctx context.Context, userID string, input PlaceOrderInput) (*models.Order, error) {
	logger := utils.GetLogger()

	if input.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	p, err := s.GetProduct(input.ProductID)
	if err != nil {
		return nil, err
	}

	// Reserve stock before charging so two buyers cannot both pay for the
	// last unit.
	if err := s.Repo.DecrementStock(p.ID, input.Quantity); err != nil {
		return nil, err
	}

	total := p.Price * float64(input.Quantity)
	result, err := s.Payments.Charge(ctx, models.PaymentRequest{
		UserID:   userID,
		Email:    input.Email,
		Amount:   total,
		Currency: p.Currency,
	}, input.PaymentMethodID)
	if err != nil || !result.Success {
		if restockErr := s.Repo.IncrementStock(p.ID, input.Quantity); restockErr != nil {
			logger.Error("failed to release reserved stock",
				zap.String("productID", p.ID), zap.Error(restockErr))
		}
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("payment failed: %s", result.Error)
	}

	order := &models.Order{
		ID:            uuid.New().String(),
		UserID:        userID,
		ProductID:     p.ID,
		Quantity:      input.Quantity,
		Total:         total,
		Currency:      p.Currency,
		TransactionID: result.TransactionID,
		Status:        "paid",
		CreatedAt:     time.Now(),
	}
	if err := s.Repo.CreateOrder(order); err != nil {
		logger.Error("charge succeeded but order record failed",
			zap.String("transactionID", result.TransactionID), zap.Error(err))
		return nil, fmt.Errorf("charge %s succeeded but order record failed: %w", result.TransactionID, err)
	}
	return order, nil
}

// ListUserOrders returns a user's orders, paginated.
func (s *DefaultShopService) ListUserOrders(userID string, limit int64, afterID string) ([]models.Order, error) {
	return s.Repo.ListOrdersByUser(userID, limit, afterID)
}

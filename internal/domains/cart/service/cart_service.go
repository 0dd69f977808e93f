package service

import (
	"context"

	"foodee-backend/internal/domains/cart/model"
	"foodee-backend/internal/domains/cart/repository"
	"foodee-backend/internal/shared"
	"foodee-backend/pkg/database"
	"foodee-backend/pkg/logger"
)

type cartService struct {
	repo      repository.Repository
	products  ProductReader
	txManager database.TxManager
}

func NewCartService(repo repository.Repository, products ProductReader, txManager database.TxManager) ServiceInterface {
	return &cartService{repo: repo, products: products, txManager: txManager}
}

func (s *cartService) GetCart(ctx context.Context, p shared.Principal) (*model.CartDTO, error) {
	return s.load(ctx, p.UserID)
}

func (s *cartService) AddToCart(ctx context.Context, p shared.Principal, productID int64, quantity int) (*model.CartDTO, error) {
	if quantity <= 0 {
		return nil, model.ErrInvalidQuantity
	}

	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			return err
		}
		if !product.IsAvailable() {
			return model.ErrProductNotAvailable
		}

		cart, err := s.repo.GetOrCreate(ctx, p.UserID)
		if err != nil {
			return err
		}

		item, err := s.repo.FindItem(ctx, cart.ID, productID)
		if err != nil {
			return err
		}
		if item == nil {
			item = &model.CartItem{CartID: cart.ID, ProductID: productID}
		}
		item.Quantity += quantity
		item.Subtotal = model.LineSubtotal(product.EffectivePrice(), item.Quantity)

		return s.repo.UpsertItem(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Cart item added", map[string]interface{}{
		"user_id":    p.UserID,
		"product_id": productID,
		"quantity":   quantity,
	})
	return s.load(ctx, p.UserID)
}

func (s *cartService) UpdateQuantity(ctx context.Context, p shared.Principal, productID int64, quantity int) (*model.CartDTO, error) {
	if quantity < 0 {
		return nil, model.ErrNegativeQuantity
	}

	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		item, err := s.findItem(ctx, p.UserID, productID)
		if err != nil {
			return err
		}

		if quantity == 0 {
			_, err := s.repo.DeleteItem(ctx, item.CartID, productID)
			return err
		}

		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			return err
		}
		item.Quantity = quantity
		item.Subtotal = model.LineSubtotal(product.EffectivePrice(), quantity)
		return s.repo.UpsertItem(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return s.load(ctx, p.UserID)
}

func (s *cartService) RemoveFromCart(ctx context.Context, p shared.Principal, productID int64) (*model.CartDTO, error) {
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		item, err := s.findItem(ctx, p.UserID, productID)
		if err != nil {
			return err
		}
		_, err = s.repo.DeleteItem(ctx, item.CartID, productID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.load(ctx, p.UserID)
}

func (s *cartService) ClearCart(ctx context.Context, p shared.Principal) error {
	cart, err := s.repo.FindByUserID(ctx, p.UserID)
	if err != nil {
		return err
	}
	if cart.ID == 0 {
		return nil
	}
	_, err = s.repo.ClearItems(ctx, cart.ID)
	return err
}

// findItem: giỏ phải tồn tại và có sản phẩm
func (s *cartService) findItem(ctx context.Context, userID, productID int64) (*model.CartItem, error) {
	cart, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart.ID == 0 {
		return nil, model.ErrCartNotFound
	}

	item, err := s.repo.FindItem(ctx, cart.ID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, model.ErrItemNotInCart
	}
	return item, nil
}

func (s *cartService) load(ctx context.Context, userID int64) (*model.CartDTO, error) {
	cart, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := cart.ToDTO()
	return &dto, nil
}

package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/shopping/internal/catalog/domain"
)

// fakeProductRepo 内存版商品仓储
type fakeProductRepo struct {
	mu       sync.Mutex
	nextID   uint
	products map[uint]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uint]*domain.Product)}
}

func (r *fakeProductRepo) Save(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == 0 {
		r.nextID++
		product.ID = r.nextID
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uint) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(_ context.Context, category string, offset, limit int) ([]*domain.Product, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*domain.Product
	for _, p := range r.products {
		if category == "" || p.Category == category {
			cp := *p
			all = append(all, &cp)
		}
	}
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *fakeProductRepo) DecrementStock(_ context.Context, id uint, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	if p.Stock < quantity {
		return domain.ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, string, any) error { return nil }

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newFakeProductRepo(), nopPublisher{})

	t.Run("creates with decimal price", func(t *testing.T) {
		id, err := svc.CreateProduct(ctx, CreateProductCommand{
			Name:  "keyboard",
			Price: "129.99",
			Stock: 20,
		})
		if err != nil {
			t.Fatal(err)
		}

		product, err := svc.GetProduct(ctx, id)
		if err != nil {
			t.Fatal(err)
		}
		if !product.Price.Equal(decimal.RequireFromString("129.99")) {
			t.Fatalf("price = %s, want 129.99", product.Price)
		}
	})

	t.Run("rejects malformed price", func(t *testing.T) {
		_, err := svc.CreateProduct(ctx, CreateProductCommand{Name: "x", Price: "not-a-number"})
		if err == nil {
			t.Fatal("expected error for malformed price")
		}
	})
}

func TestDecrementStock(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo, nopPublisher{})

	id, err := svc.CreateProduct(ctx, CreateProductCommand{Name: "mouse", Price: "25", Stock: 5})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("decrements within stock", func(t *testing.T) {
		if err := svc.DecrementStock(ctx, id, 3); err != nil {
			t.Fatal(err)
		}
		product, err := svc.GetProduct(ctx, id)
		if err != nil {
			t.Fatal(err)
		}
		if product.Stock != 2 {
			t.Fatalf("stock = %d, want 2", product.Stock)
		}
	})

	t.Run("refuses to go negative", func(t *testing.T) {
		err := svc.DecrementStock(ctx, id, 3)
		if !errors.Is(err, domain.ErrInsufficientStock) {
			t.Fatalf("err = %v, want ErrInsufficientStock", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		err := svc.DecrementStock(ctx, 999, 1)
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Fatalf("err = %v, want ErrProductNotFound", err)
		}
	})
}

func TestGetProductNotFound(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo(), nopPublisher{})

	_, err := svc.GetProduct(context.Background(), 404)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}

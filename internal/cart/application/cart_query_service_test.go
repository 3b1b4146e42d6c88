package application

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/shopping/internal/cart/domain"
)

func TestGetCart(t *testing.T) {
	ctx := context.Background()

	t.Run("no draft", func(t *testing.T) {
		f := newFixture(newFakeCatalog(), &fakeOffers{})

		_, err := f.svc.GetCart(ctx, "nobody")
		if !errors.Is(err, domain.ErrCartNotFound) {
			t.Fatalf("err = %v, want ErrCartNotFound", err)
		}
	})

	t.Run("returns draft with items", func(t *testing.T) {
		f := newFixture(newFakeCatalog(
			&domain.Product{ID: 1, Price: decimal.NewFromInt(10), Available: 100},
			&domain.Product{ID: 2, Price: decimal.NewFromInt(5), Available: 100},
		), &fakeOffers{})

		if err := f.svc.AddItem(ctx, AddItemCommand{UserID: "u1", ProductID: 1, Quantity: 2}); err != nil {
			t.Fatal(err)
		}
		if err := f.svc.AddItem(ctx, AddItemCommand{UserID: "u1", ProductID: 2, Quantity: 1}); err != nil {
			t.Fatal(err)
		}

		details, err := f.svc.GetCart(ctx, "u1")
		if err != nil {
			t.Fatal(err)
		}
		if details.Cart.Status != domain.CartStatusDraft {
			t.Fatalf("status = %s, want DRAFT", details.Cart.Status)
		}
		if len(details.Items) != 2 {
			t.Fatalf("got %d items, want 2", len(details.Items))
		}
		if details.Cart.HasBill() {
			t.Fatal("bill must stay empty until calculated")
		}
	})

	t.Run("completed cart is not a draft", func(t *testing.T) {
		f := newFixture(newFakeCatalog(&domain.Product{ID: 1, Price: decimal.NewFromInt(10), Available: 100}), &fakeOffers{})

		if err := f.svc.AddItem(ctx, AddItemCommand{UserID: "u1", ProductID: 1, Quantity: 1}); err != nil {
			t.Fatal(err)
		}
		details, err := f.svc.GetCart(ctx, "u1")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.svc.CalculateBill(ctx, details.Cart.ID); err != nil {
			t.Fatal(err)
		}
		if _, err := f.svc.Checkout(ctx, details.Cart.ID); err != nil {
			t.Fatal(err)
		}

		_, err = f.svc.GetCart(ctx, "u1")
		if !errors.Is(err, domain.ErrCartNotFound) {
			t.Fatalf("err = %v, want ErrCartNotFound after checkout", err)
		}
	})
}

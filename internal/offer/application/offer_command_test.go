package application

import (
	"context"
	"errors"
	"testing"

	"github.com/wyfcoding/shopping/internal/offer/domain"
)

// fakeOfferRepo 内存版优惠仓储
type fakeOfferRepo struct {
	nextID uint
	offers []*domain.Offer
}

func (r *fakeOfferRepo) Create(_ context.Context, offer *domain.Offer) error {
	for _, o := range r.offers {
		if o.Key == offer.Key && o.ProductID == offer.ProductID {
			return domain.ErrOfferExists
		}
	}
	r.nextID++
	offer.ID = r.nextID
	cp := *offer
	r.offers = append(r.offers, &cp)
	return nil
}

func (r *fakeOfferRepo) GetByID(_ context.Context, id uint) (*domain.Offer, error) {
	for _, o := range r.offers {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOfferRepo) FindByKeyAndProduct(_ context.Context, key string, productID uint) (*domain.Offer, error) {
	for _, o := range r.offers {
		if o.Key == key && o.ProductID == productID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOfferRepo) ListByProduct(_ context.Context, productID uint) ([]*domain.Offer, error) {
	var out []*domain.Offer
	for _, o := range r.offers {
		if o.ProductID == productID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeProductChecker 固定存在集合的商品校验器
type fakeProductChecker map[uint]bool

func (f fakeProductChecker) Exists(_ context.Context, productID uint) (bool, error) {
	return f[productID], nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, string, any) error { return nil }

func TestCreateOffer(t *testing.T) {
	ctx := context.Background()

	newSvc := func() *OfferService {
		return NewOfferService(&fakeOfferRepo{}, fakeProductChecker{1: true}, nopPublisher{})
	}

	t.Run("creates known key", func(t *testing.T) {
		svc := newSvc()

		id, err := svc.CreateOffer(ctx, CreateOfferCommand{Key: domain.KeyBuy2Get1Free, ProductID: 1})
		if err != nil {
			t.Fatal(err)
		}

		offer, err := svc.GetOffer(ctx, id)
		if err != nil {
			t.Fatal(err)
		}
		if offer.Key != domain.KeyBuy2Get1Free || offer.ProductID != 1 {
			t.Fatalf("offer = %+v", offer)
		}
	})

	t.Run("rejects unknown key", func(t *testing.T) {
		svc := newSvc()

		_, err := svc.CreateOffer(ctx, CreateOfferCommand{Key: "BUY_0_PAY_DOUBLE", ProductID: 1})
		if !errors.Is(err, domain.ErrUnknownOfferKey) {
			t.Fatalf("err = %v, want ErrUnknownOfferKey", err)
		}
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		svc := newSvc()

		_, err := svc.CreateOffer(ctx, CreateOfferCommand{Key: domain.KeyBuy2Get1Free, ProductID: 42})
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Fatalf("err = %v, want ErrProductNotFound", err)
		}
	})

	t.Run("rejects duplicate per product", func(t *testing.T) {
		svc := newSvc()

		if _, err := svc.CreateOffer(ctx, CreateOfferCommand{Key: domain.KeyBuy2Get1Free, ProductID: 1}); err != nil {
			t.Fatal(err)
		}
		_, err := svc.CreateOffer(ctx, CreateOfferCommand{Key: domain.KeyBuy2Get1Free, ProductID: 1})
		if !errors.Is(err, domain.ErrOfferExists) {
			t.Fatalf("err = %v, want ErrOfferExists", err)
		}
	})
}

func TestOfferQueries(t *testing.T) {
	ctx := context.Background()
	svc := NewOfferService(&fakeOfferRepo{}, fakeProductChecker{1: true}, nopPublisher{})

	if _, err := svc.CreateOffer(ctx, CreateOfferCommand{Key: domain.KeyBuy2Get1Free, ProductID: 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateOffer(ctx, CreateOfferCommand{Key: domain.KeyBuy1GetHalfOff, ProductID: 1}); err != nil {
		t.Fatal(err)
	}

	t.Run("find by key and product", func(t *testing.T) {
		offer, err := svc.FindByKeyAndProduct(ctx, domain.KeyBuy1GetHalfOff, 1)
		if err != nil {
			t.Fatal(err)
		}
		if offer == nil {
			t.Fatal("expected offer")
		}

		missing, err := svc.FindByKeyAndProduct(ctx, domain.KeyBuy1GetHalfOff, 2)
		if err != nil {
			t.Fatal(err)
		}
		if missing != nil {
			t.Fatalf("expected no offer, got %+v", missing)
		}
	})

	t.Run("list by product", func(t *testing.T) {
		offers, err := svc.ListByProduct(ctx, 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(offers) != 2 {
			t.Fatalf("got %d offers, want 2", len(offers))
		}
	})

	t.Run("get missing offer", func(t *testing.T) {
		_, err := svc.GetOffer(ctx, 404)
		if !errors.Is(err, domain.ErrOfferNotFound) {
			t.Fatalf("err = %v, want ErrOfferNotFound", err)
		}
	})
}

package checkout

import (
	"context"

	"github.com/izamghali/fastrac-take-home-test/internal/fastrac"
)

// Gateway is the slice of the logistics provider the checkout flow depends
// on. *fastrac.Client satisfies it; tests substitute a fake.
type Gateway interface {
	LocationsByPostalCode(ctx context.Context, postalCode string) ([]fastrac.Location, error)
	SearchRegions(ctx context.Context, search string) ([]fastrac.Region, error)
	AllCouriers(ctx context.Context) ([]fastrac.Courier, error)
	CourierServices(ctx context.Context, courierCode string) (fastrac.CourierServiceSet, error)
	QuoteTariff(ctx context.Context, req fastrac.TariffRequest) (*fastrac.TariffQuote, error)
	CreateOrder(ctx context.Context, req fastrac.OrderRequest) (*fastrac.OrderConfirmation, error)
}

var _ Gateway = (*fastrac.Client)(nil)

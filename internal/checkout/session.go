package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/domain"
	"github.com/izamghali/fastrac-take-home-test/internal/fastrac"
	"github.com/izamghali/fastrac-take-home-test/pkg/errors"
)

// Contact placeholders used when warehouse or user profile fields are empty.
const (
	fallbackPhone   = "6282211556273"
	fallbackEmail   = "asepsoo@gmail.com"
	fallbackAddress = "Jl benda barat 10"
)

// Session owns the mutable selection state of one checkout. All mutation goes
// through its methods; remote calls run outside the lock and their results
// are applied under a per-concern generation number, so a response that was
// superseded by newer user input is discarded instead of overwriting state.
type Session struct {
	ID uuid.UUID

	gateway     Gateway
	notifier    Notifier
	logger      *zap.Logger
	submitDelay time.Duration

	mu         sync.Mutex
	cart       *domain.Cart
	stock      []domain.StockRecord
	user       domain.User
	warehouse  *domain.Warehouse
	userAddr   domain.Address
	whAddr     domain.Address
	couriers   []fastrac.Courier
	services   fastrac.CourierServiceSet
	courier    string
	service    string
	insurance  bool
	cost       int64
	submitting bool
	booked     *fastrac.OrderConfirmation
	lastActive time.Time

	// generation counters; a fetch applies its result only if its concern's
	// counter has not advanced while the request was in flight
	userRegionGen uint64
	whRegionGen   uint64
	servicesGen   uint64
	tariffGen     uint64
}

// NewSession creates a checkout session for a cart and its stock snapshot.
// Insurance defaults to on.
func NewSession(gateway Gateway, notifier Notifier, logger *zap.Logger, cart *domain.Cart, stock []domain.StockRecord, user domain.User, submitDelay time.Duration) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		ID:          uuid.New(),
		gateway:     gateway,
		notifier:    notifier,
		logger:      logger,
		submitDelay: submitDelay,
		cart:        cart,
		stock:       stock,
		user:        user,
		insurance:   true,
		lastActive:  time.Now(),
	}
}

// LoadCouriers fetches the courier catalog. On upstream failure the user is
// notified and the catalog stays empty; the flow degrades, it does not stop.
func (s *Session) LoadCouriers(ctx context.Context) []fastrac.Courier {
	s.touch()
	couriers, err := s.gateway.AllCouriers(ctx)
	if err != nil {
		s.logger.Warn("Failed to fetch couriers", zap.Error(err))
		s.notifier.Notify("Failed to fetch couriers")
		couriers = nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.couriers = couriers
	return couriers
}

// SetUserAddress records the buyer's address and resolves its region
func (s *Session) SetUserAddress(ctx context.Context, addr domain.Address) {
	s.touch()
	s.mu.Lock()
	s.userAddr = addr
	s.userRegionGen++
	gen := s.userRegionGen
	s.mu.Unlock()

	loc, regionID, ok := s.resolveRegion(ctx, addr.PostalCode)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.userRegionGen {
		// address changed again while the lookup was in flight
		return
	}
	s.userAddr.Subdistrict = loc.Subdistrict
	s.userAddr.District = loc.District
	s.userAddr.RegionID = regionID
}

// SetWarehouse records the shipping origin and resolves its region
func (s *Session) SetWarehouse(ctx context.Context, warehouse domain.Warehouse) {
	s.touch()
	s.mu.Lock()
	s.warehouse = &warehouse
	s.whAddr = warehouse.Address
	s.whRegionGen++
	gen := s.whRegionGen
	s.mu.Unlock()

	loc, regionID, ok := s.resolveRegion(ctx, warehouse.Address.PostalCode)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.whRegionGen {
		return
	}
	s.whAddr.Subdistrict = loc.Subdistrict
	s.whAddr.District = loc.District
	s.whAddr.RegionID = regionID
}

// resolveRegion maps a postal code to its subdistrict/district and then to
// the provider's numeric region id. An empty postal code performs no lookup.
// Failures are reported to the user and leave prior state untouched.
func (s *Session) resolveRegion(ctx context.Context, postalCode string) (fastrac.Location, int64, bool) {
	if postalCode == "" {
		return fastrac.Location{}, 0, false
	}

	locations, err := s.gateway.LocationsByPostalCode(ctx, postalCode)
	if err != nil {
		s.logger.Warn("Failed to fetch location by postal code",
			zap.String("postal_code", postalCode), zap.Error(err))
		s.notifier.Notify("Failed to fetch location by postal code")
		return fastrac.Location{}, 0, false
	}
	loc := locations[0]

	search := loc.Subdistrict
	if search == "" {
		search = loc.District
	}
	if search == "" {
		return loc, 0, true
	}

	regions, err := s.gateway.SearchRegions(ctx, search)
	if err != nil {
		s.logger.Warn("Failed to fetch region", zap.String("search", search), zap.Error(err))
		s.notifier.Notify("Failed to fetch region")
		return loc, 0, true
	}
	return loc, fastrac.FirstRegionMatch(regions, postalCode), true
}

// SelectCourier picks a courier and fetches its service offerings. The
// previously selected service is invalidated before anything else happens.
func (s *Session) SelectCourier(ctx context.Context, courierCode string) error {
	s.touch()
	s.mu.Lock()
	if len(s.couriers) > 0 && !s.courierInCatalog(courierCode) {
		s.mu.Unlock()
		return &errors.ErrValidation{Message: fmt.Sprintf("unknown courier: %s", courierCode)}
	}
	s.courier = courierCode
	s.service = ""
	s.cost = 0
	s.services = fastrac.CourierServiceSet{}
	s.servicesGen++
	gen := s.servicesGen
	s.mu.Unlock()

	services, err := s.gateway.CourierServices(ctx, courierCode)
	if err != nil {
		s.logger.Warn("Failed to fetch courier service",
			zap.String("courier_code", courierCode), zap.Error(err))
		s.notifier.Notify("Failed to fetch courier service")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.servicesGen {
		return nil
	}
	s.services = services
	return nil
}

// SelectService picks one of the fetched offerings and triggers a tariff
// quote. The quote is skipped while either region is unresolved; on upstream
// failure the previously computed cost is left untouched.
func (s *Session) SelectService(ctx context.Context, serviceCode string) error {
	s.touch()
	s.mu.Lock()
	if s.courier == "" {
		s.mu.Unlock()
		return &errors.ErrValidation{Message: "select a courier first"}
	}
	if s.services.Empty() {
		s.mu.Unlock()
		return &errors.ErrValidation{Message: "no service available"}
	}
	if !s.services.Contains(serviceCode) {
		s.mu.Unlock()
		return &errors.ErrValidation{Message: fmt.Sprintf("unknown service: %s", serviceCode)}
	}
	s.service = serviceCode

	origin := s.whAddr.RegionID
	destination := s.userAddr.RegionID
	if origin == 0 || destination == 0 {
		// tariff has a hard prerequisite on both regions; not an error,
		// the quote simply does not happen yet
		s.mu.Unlock()
		return nil
	}
	s.tariffGen++
	gen := s.tariffGen
	s.mu.Unlock()

	quote, err := s.gateway.QuoteTariff(ctx, fastrac.TariffRequest{
		Origin:         origin,
		Destination:    destination,
		PackageProfile: fastrac.DefaultPackageProfile,
	})
	if err != nil {
		s.logger.Warn("Failed to fetch shipping cost", zap.Error(err))
		s.notifier.Notify("Failed to fetch shipping cost")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.tariffGen {
		return nil
	}
	s.cost = quote.Tariff
	return nil
}

// SetInsurance toggles delivery insurance
func (s *Session) SetInsurance(enabled bool) {
	s.touch()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insurance = enabled
}

// Submit places the order. It is gated on a selected service, sufficient
// stock and no submission already in flight; the configured delay then runs
// before the provider call fires, with rapid re-clicks rejected for the full
// duration. A session submits at most once.
func (s *Session) Submit(ctx context.Context) (*fastrac.OrderConfirmation, error) {
	s.touch()
	s.mu.Lock()
	if s.booked != nil {
		s.mu.Unlock()
		return nil, &errors.ErrConflict{Message: "order already submitted"}
	}
	if s.submitting {
		s.mu.Unlock()
		return nil, &errors.ErrConflict{Message: "submission already in flight"}
	}
	if s.service == "" {
		s.mu.Unlock()
		return nil, &errors.ErrValidation{Message: "no shipping service selected"}
	}
	if s.warehouse == nil {
		s.mu.Unlock()
		return nil, &errors.ErrValidation{Message: "no warehouse selected"}
	}
	if !domain.IsStockSufficient(s.stock) {
		s.mu.Unlock()
		return nil, &errors.ErrStockInsufficient{Items: domain.InsufficientItems(s.stock)}
	}
	s.submitting = true
	req := s.buildOrderRequestLocked()
	delay := s.submitDelay
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			s.submitting = false
			s.mu.Unlock()
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	confirmation, err := s.gateway.CreateOrder(ctx, req)

	s.mu.Lock()
	s.submitting = false
	if err != nil {
		s.mu.Unlock()
		s.logger.Error("Failed to create order", zap.Error(err))
		s.notifier.Notify("Failed to create order")
		return nil, err
	}
	s.booked = confirmation
	s.mu.Unlock()

	s.notifier.Notify(fmt.Sprintf("Order successfully created: %s", confirmation.BookingID))
	return confirmation, nil
}

// buildOrderRequestLocked assembles the provider payload from the current
// selection. Caller must hold s.mu.
func (s *Session) buildOrderRequestLocked() fastrac.OrderRequest {
	shipper := fastrac.OrderParty{
		RegionID:  s.whAddr.RegionID,
		Name:      s.warehouse.Name,
		Phone:     orFallback(s.warehouse.Phone, fallbackPhone),
		Email:     orFallback(s.warehouse.Email, fallbackEmail),
		Address:   orFallback(s.warehouse.Address.Street, fallbackAddress),
		Latitude:  "0",
		Longitude: "0",
	}
	receiver := fastrac.OrderParty{
		RegionID:  s.userAddr.RegionID,
		Name:      s.user.Name,
		Phone:     orFallback(s.user.Phone, fallbackPhone),
		Email:     orFallback(s.user.Email, fallbackEmail),
		Address:   orFallback(s.userAddr.Street, fallbackAddress),
		Latitude:  "0",
		Longitude: "0",
	}

	// placeholder manifest; name and declared value come from the first cart
	// item when a cart is attached
	item := fastrac.OrderItem{
		Name:     "Buku",
		Desc:     "Baju",
		Category: "Pakaian",
		Qty:      1,
		Value:    100000,
		Weight:   1000,
		Width:    10,
		Height:   10,
		Length:   10,
	}
	if s.cart != nil && len(s.cart.Items) > 0 {
		first := s.cart.Items[0]
		item.Name = first.ProductName
		item.Value = first.Price.IntPart()
	}

	insurance := "0"
	if s.insurance {
		insurance = "1"
	}
	return fastrac.OrderRequest{
		CourierCode: s.courier,
		ServiceCode: s.service,
		Insurance:   insurance,
		Pickup:      "0",
		COD:         "0",
		Shipper:     shipper,
		Receiver:    receiver,
		Item:        item,
	}
}

func (s *Session) courierInCatalog(code string) bool {
	for _, c := range s.couriers {
		if c.CourierCode == code {
			return true
		}
	}
	return false
}

func (s *Session) touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
}

// IdleSince reports how long ago the session was last used
func (s *Session) IdleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastActive)
}

// Selection is a consistent snapshot of the session for the API layer
type Selection struct {
	SessionID        uuid.UUID                 `json:"session_id"`
	Phase            domain.CheckoutPhase      `json:"phase"`
	WarehouseID      *uuid.UUID                `json:"warehouse_id,omitempty"`
	UserAddress      domain.Address            `json:"user_address"`
	WarehouseAddress domain.Address            `json:"warehouse_address"`
	Couriers         []fastrac.Courier         `json:"couriers"`
	CourierCode      string                    `json:"courier_code"`
	Services         fastrac.CourierServiceSet `json:"services"`
	ServiceCode      string                    `json:"code_service"`
	Insurance        bool                      `json:"insurance"`
	ShippingCost     int64                     `json:"shipping_cost"`
	Subtotal         decimal.Decimal           `json:"subtotal"`
	Total            decimal.Decimal           `json:"total"`
	StockSufficient  bool                      `json:"is_stock_sufficient"`
	CanSubmit        bool                      `json:"can_submit"`
	BookingID        string                    `json:"booking_id,omitempty"`
}

// Snapshot returns the current selection state
func (s *Session) Snapshot() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := decimal.Zero
	if s.cart != nil {
		subtotal = s.cart.Subtotal()
	}
	sel := Selection{
		SessionID:        s.ID,
		Phase:            s.phaseLocked(),
		UserAddress:      s.userAddr,
		WarehouseAddress: s.whAddr,
		Couriers:         s.couriers,
		CourierCode:      s.courier,
		Services:         s.services,
		ServiceCode:      s.service,
		Insurance:        s.insurance,
		ShippingCost:     s.cost,
		Subtotal:         subtotal,
		Total:            subtotal.Add(decimal.NewFromInt(s.cost)),
		StockSufficient:  domain.IsStockSufficient(s.stock),
		CanSubmit:        s.service != "" && !s.submitting && s.booked == nil,
	}
	if s.warehouse != nil {
		id := s.warehouse.ID
		sel.WarehouseID = &id
	}
	if s.booked != nil {
		sel.BookingID = s.booked.BookingID
	}
	return sel
}

// Cart returns the cart this session checks out (nil for detached sessions)
func (s *Session) Cart() *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// DrainNotices returns and clears pending user notifications when the
// session's notifier buffers them
func (s *Session) DrainNotices() []string {
	if buffered, ok := s.notifier.(*BufferedNotifier); ok {
		return buffered.Drain()
	}
	return nil
}

// Confirmation returns the provider metadata of the created order, or nil
func (s *Session) Confirmation() *fastrac.OrderConfirmation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.booked
}

func (s *Session) phaseLocked() domain.CheckoutPhase {
	switch {
	case s.booked != nil:
		return domain.PhaseSubmitted
	case s.submitting:
		return domain.PhaseSubmitting
	case s.service != "":
		return domain.PhaseServiceReady
	case s.courier != "":
		return domain.PhaseCourierSet
	case s.warehouse != nil && s.userAddr.PostalCode != "":
		return domain.PhaseAddressSet
	default:
		return domain.PhaseAddressUnset
	}
}

func orFallback(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

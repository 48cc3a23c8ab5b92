package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/izamghali/fastrac-take-home-test/internal/api"
	"github.com/izamghali/fastrac-take-home-test/internal/checkout"
	"github.com/izamghali/fastrac-take-home-test/internal/config"
	"github.com/izamghali/fastrac-take-home-test/internal/domain"
	"github.com/izamghali/fastrac-take-home-test/internal/fastrac"
	"github.com/izamghali/fastrac-take-home-test/internal/repository"
	"github.com/izamghali/fastrac-take-home-test/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubGateway serves fixtures unless err is set
type stubGateway struct {
	err error

	locations    []fastrac.Location
	regions      []fastrac.Region
	couriers     []fastrac.Courier
	services     fastrac.CourierServiceSet
	quote        *fastrac.TariffQuote
	confirmation *fastrac.OrderConfirmation

	lastTariffReq fastrac.TariffRequest
	lastOrderReq  fastrac.OrderRequest
	orderCalls    int
}

func (g *stubGateway) LocationsByPostalCode(_ context.Context, _ string) ([]fastrac.Location, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.locations, nil
}

func (g *stubGateway) SearchRegions(_ context.Context, _ string) ([]fastrac.Region, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.regions, nil
}

func (g *stubGateway) AllCouriers(_ context.Context) ([]fastrac.Courier, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.couriers, nil
}

func (g *stubGateway) CourierServices(_ context.Context, _ string) (fastrac.CourierServiceSet, error) {
	if g.err != nil {
		return fastrac.CourierServiceSet{}, g.err
	}
	return g.services, nil
}

func (g *stubGateway) QuoteTariff(_ context.Context, req fastrac.TariffRequest) (*fastrac.TariffQuote, error) {
	g.lastTariffReq = req
	if g.err != nil {
		return nil, g.err
	}
	return g.quote, nil
}

func (g *stubGateway) CreateOrder(_ context.Context, req fastrac.OrderRequest) (*fastrac.OrderConfirmation, error) {
	g.orderCalls++
	g.lastOrderReq = req
	if g.err != nil {
		return nil, g.err
	}
	return g.confirmation, nil
}

type stubCartRepo struct {
	cart    *domain.Cart
	cleared []uuid.UUID
}

func (r *stubCartRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Cart, error) {
	if r.cart == nil || r.cart.ID != id {
		return nil, &errors.ErrNotFound{Resource: "cart", ID: id.String()}
	}
	return r.cart, nil
}

func (r *stubCartRepo) Clear(_ context.Context, id uuid.UUID) error {
	r.cleared = append(r.cleared, id)
	return nil
}

type stubStockRepo struct {
	stock []domain.StockRecord
}

func (r *stubStockRepo) ListForCart(_ context.Context, _ uuid.UUID) ([]domain.StockRecord, error) {
	return r.stock, nil
}

type stubWarehouseRepo struct {
	warehouse *domain.Warehouse
}

func (r *stubWarehouseRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Warehouse, error) {
	if r.warehouse == nil || r.warehouse.ID != id {
		return nil, &errors.ErrNotFound{Resource: "warehouse", ID: id.String()}
	}
	return r.warehouse, nil
}

func (r *stubWarehouseRepo) List(_ context.Context) ([]*domain.Warehouse, error) {
	if r.warehouse == nil {
		return nil, nil
	}
	return []*domain.Warehouse{r.warehouse}, nil
}

type stubUserRepo struct {
	user *domain.User
}

func (r *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, &errors.ErrNotFound{Resource: "user", ID: id.String()}
	}
	return r.user, nil
}

type stubOrderRepo struct {
	created []*domain.OrderRecord
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.OrderRecord) error {
	r.created = append(r.created, order)
	return nil
}

func (r *stubOrderRepo) GetByBookingID(_ context.Context, bookingID string) (*domain.OrderRecord, error) {
	for _, o := range r.created {
		if o.BookingID == bookingID {
			return o, nil
		}
	}
	return nil, &errors.ErrNotFound{Resource: "order", ID: bookingID}
}

type fixture struct {
	router    *gin.Engine
	gateway   *stubGateway
	cartRepo  *stubCartRepo
	orderRepo *stubOrderRepo
	cart      *domain.Cart
	warehouse *domain.Warehouse
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cartID := uuid.New()
	userID := uuid.New()
	cart := &domain.Cart{
		ID:     cartID,
		UserID: userID,
		Items: []domain.CartItem{
			{ID: uuid.New(), CartID: cartID, ProductName: "Kaos Polos", Size: "M", Quantity: 1, Price: decimal.NewFromInt(100000)},
		},
	}
	warehouse := &domain.Warehouse{
		ID:      uuid.New(),
		Name:    "Gudang Semarang",
		Address: domain.Address{PostalCode: "50135", Street: "Jl. Pemuda 1"},
	}

	gw := &stubGateway{
		locations: []fastrac.Location{{Subdistrict: "Gambir", District: "Gambir"}},
		regions: []fastrac.Region{
			{ID: 3374, Name: "Semarang Tengah, Semarang 50135"},
			{ID: 3171, Name: "Gambir, Jakarta Pusat 10110"},
		},
		couriers: []fastrac.Courier{{CourierCode: "jne", CourierName: "JNE", ExpressDelivery: true}},
		services: fastrac.CourierServiceSet{ExpressDelivery: []fastrac.ServiceOffering{
			{ServiceName: "JNE EXPRESS", ServiceCode: "EXP1", ETDStart: 1, ETDEnd: 2, ETDUnit: "day"},
		}},
		quote: &fastrac.TariffQuote{Success: true, Tariff: 15000},
		confirmation: &fastrac.OrderConfirmation{
			BookingID:         "FSTR.CO-20241226DNZH0",
			AWB:               "FSTRA1321700196758740992",
			ExpectPickupStart: "2024-12-27 09:00:00",
			ExpectPickupEnd:   "2024-12-27 12:00:00",
			Tariff:            15000,
		},
	}

	cartRepo := &stubCartRepo{cart: cart}
	orderRepo := &stubOrderRepo{}
	repos := &repository.Repositories{
		Cart:      cartRepo,
		Stock:     &stubStockRepo{},
		Warehouse: &stubWarehouseRepo{warehouse: warehouse},
		User:      &stubUserRepo{user: &domain.User{ID: userID, Name: "Dena caknan"}},
		Order:     orderRepo,
	}

	cfg := &config.Config{
		Environment: "test",
		Checkout:    config.CheckoutConfig{SubmitDelay: 0, SessionTTL: time.Minute},
	}
	sessions := checkout.NewStore(cfg.Checkout.SessionTTL, zap.NewNop())
	router := api.NewRouter(cfg, gw, repos, sessions, zap.NewNop())

	return &fixture{
		router:    router,
		gateway:   gw,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		cart:      cart,
		warehouse: warehouse,
	}
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestLocationByPostalCode(t *testing.T) {
	f := newFixture(t)

	w, body := f.do(t, http.MethodGet, "/address/postal_code/10110", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Gambir", data[0].(map[string]interface{})["subdistrict"])
}

func TestLocationByPostalCode_MissingCredentials(t *testing.T) {
	f := newFixture(t)
	f.gateway.err = &errors.ErrConfiguration{Message: "missing API credentials"}

	w, body := f.do(t, http.MethodGet, "/address/postal_code/10110", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Missing API credentials", body["error"])
}

func TestSearchRegion_MissingSearch(t *testing.T) {
	f := newFixture(t)

	w, body := f.do(t, http.MethodPost, "/address/region", map[string]string{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing search in request body", body["error"])
}

func TestSearchRegion(t *testing.T) {
	f := newFixture(t)

	w, body := f.do(t, http.MethodPost, "/address/region", map[string]string{"search": "Gambir"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"].([]interface{}), 2)
}

func TestAllCouriers_UpstreamFailure(t *testing.T) {
	f := newFixture(t)
	f.gateway.err = &errors.ErrUpstream{Operation: "courier list", StatusCode: 502}

	w, body := f.do(t, http.MethodGet, "/all-courier", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch couriers", body["error"])
}

func TestQuoteTariff_MissingRegionIDs(t *testing.T) {
	f := newFixture(t)

	w, body := f.do(t, http.MethodPost, "/tariff", map[string]int64{"userRegionId": 3171})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing userRegionId or warehouseRegionId request body", body["error"])
}

func TestQuoteTariff(t *testing.T) {
	f := newFixture(t)

	w, body := f.do(t, http.MethodPost, "/tariff", map[string]int64{
		"userRegionId":      3171,
		"warehouseRegionId": 3374,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(15000), data["tariff"])

	// warehouse is the origin, user the destination
	assert.Equal(t, int64(3374), f.gateway.lastTariffReq.Origin)
	assert.Equal(t, int64(3171), f.gateway.lastTariffReq.Destination)
	assert.Equal(t, fastrac.DefaultPackageProfile, f.gateway.lastTariffReq.PackageProfile)
}

func TestCreateOrder_MissingBody(t *testing.T) {
	f := newFixture(t)

	w, body := f.do(t, http.MethodPost, "/order", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing request body", body["error"])
}

func TestCreateOrder(t *testing.T) {
	f := newFixture(t)

	w, body := f.do(t, http.MethodPost, "/order", fastrac.OrderRequest{
		CourierCode: "jne",
		ServiceCode: "EXP1",
		Insurance:   "1",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Order successfully created", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "FSTR.CO-20241226DNZH0", data["booking_id"])
}

func TestGetOrder_NotFound(t *testing.T) {
	f := newFixture(t)

	w, _ := f.do(t, http.MethodGet, "/order/UNKNOWN", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutFlow(t *testing.T) {
	f := newFixture(t)

	w, body := f.do(t, http.MethodPost, "/checkout/sessions", map[string]string{"cart_id": f.cart.ID.String()})
	require.Equal(t, http.StatusCreated, w.Code)
	sessionID := body["data"].(map[string]interface{})["session_id"].(string)
	base := "/checkout/sessions/" + sessionID

	w, _ = f.do(t, http.MethodPut, base+"/warehouse", map[string]string{"warehouse_id": f.warehouse.ID.String()})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = f.do(t, http.MethodPut, base+"/address", map[string]string{"postal_code": "10110", "street": "Jl benda barat 10"})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = f.do(t, http.MethodPut, base+"/courier", map[string]string{"courier_code": "jne"})
	require.Equal(t, http.StatusOK, w.Code)

	w, body = f.do(t, http.MethodPut, base+"/service", map[string]string{"code_service": "EXP1"})
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(15000), data["shipping_cost"])
	assert.Equal(t, true, data["can_submit"])

	w, body = f.do(t, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "FSTR.CO-20241226DNZH0", body["data"].(map[string]interface{})["booking_id"])

	require.Len(t, f.orderRepo.created, 1)
	record := f.orderRepo.created[0]
	assert.Equal(t, f.cart.ID, record.CartID)
	assert.Equal(t, "jne", record.CourierCode)
	assert.Equal(t, "EXP1", record.ServiceCode)
	assert.Equal(t, int64(15000), record.ShippingCost)
	require.NotNil(t, record.ExpectPickupStart)
	assert.Equal(t, []uuid.UUID{f.cart.ID}, f.cartRepo.cleared)

	// the session is terminal now
	w, _ = f.do(t, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 1, f.gateway.orderCalls)
}

func TestCheckoutSubmit_InsufficientStock(t *testing.T) {
	f := newFixture(t)

	// rebuild the router with a stock snapshot that cannot cover the cart
	cfg := &config.Config{
		Environment: "test",
		Checkout:    config.CheckoutConfig{SubmitDelay: 0, SessionTTL: time.Minute},
	}
	repos := &repository.Repositories{
		Cart: f.cartRepo,
		Stock: &stubStockRepo{stock: []domain.StockRecord{
			{ProductName: "Kaos Polos", TotalStock: 5, OrderedQuantity: 6},
		}},
		Warehouse: &stubWarehouseRepo{warehouse: f.warehouse},
		User:      &stubUserRepo{user: &domain.User{ID: f.cart.UserID, Name: "Dena caknan"}},
		Order:     f.orderRepo,
	}
	sessions := checkout.NewStore(time.Minute, zap.NewNop())
	f.router = api.NewRouter(cfg, f.gateway, repos, sessions, zap.NewNop())

	w, body := f.do(t, http.MethodPost, "/checkout/sessions", map[string]string{"cart_id": f.cart.ID.String()})
	require.Equal(t, http.StatusCreated, w.Code)
	sessionID := body["data"].(map[string]interface{})["session_id"].(string)
	base := "/checkout/sessions/" + sessionID

	f.do(t, http.MethodPut, base+"/warehouse", map[string]string{"warehouse_id": f.warehouse.ID.String()})
	f.do(t, http.MethodPut, base+"/address", map[string]string{"postal_code": "10110"})
	f.do(t, http.MethodPut, base+"/courier", map[string]string{"courier_code": "jne"})
	f.do(t, http.MethodPut, base+"/service", map[string]string{"code_service": "EXP1"})

	w, body = f.do(t, http.MethodPost, base+"/submit", nil)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Some items are out of stock", body["message"])
	assert.Zero(t, f.gateway.orderCalls)
}

func TestCheckoutSession_NotFound(t *testing.T) {
	f := newFixture(t)

	w, _ := f.do(t, http.MethodGet, "/checkout/sessions/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}

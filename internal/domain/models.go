package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the ordered collection of items a user intends to buy.
// It is created on add-to-cart, read at checkout and cleared on
// successful order submission.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem references a single product variant in a cart
type CartItem struct {
	ID               uuid.UUID
	CartID           uuid.UUID
	ProductVariantID uuid.UUID
	ProductName      string
	Size             string
	Quantity         int
	Price            decimal.Decimal // unit price in IDR
}

// Subtotal sums price * quantity over all items
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// StockRecord is the available stock for a (productVariant, size, warehouse)
// triple together with the quantity the cart orders against it. Read-only
// from the checkout flow's perspective.
type StockRecord struct {
	ProductVariantID uuid.UUID
	ProductName      string
	Size             string
	WarehouseID      uuid.UUID
	TotalStock       int
	OrderedQuantity  int
}

// IsStockSufficient reports whether no record orders more units than are in stock
func IsStockSufficient(records []StockRecord) bool {
	for _, r := range records {
		if r.OrderedQuantity > r.TotalStock {
			return false
		}
	}
	return true
}

// InsufficientItems returns the product names whose ordered quantity exceeds stock
func InsufficientItems(records []StockRecord) []string {
	var names []string
	for _, r := range records {
		if r.OrderedQuantity > r.TotalStock {
			names = append(names, r.ProductName)
		}
	}
	return names
}

// Address is a postal address belonging to a user or a warehouse. Subdistrict,
// district and the numeric region id are derived from the postal code via the
// logistics provider and are never persisted.
type Address struct {
	PostalCode  string
	Street      string
	Subdistrict string
	District    string
	RegionID    int64
}

// Resolved reports whether the region id has been derived for this address
func (a Address) Resolved() bool {
	return a.RegionID != 0
}

// Warehouse is an origin location orders ship from
type Warehouse struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Email     string
	Address   Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

// User is the buyer; only the fields the checkout flow needs
type User struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Email     string
	Address   Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderRecord is the persisted result of a successful submission. It is a
// terminal artifact: once written it is never mutated by the checkout flow.
type OrderRecord struct {
	ID                uuid.UUID
	CartID            uuid.UUID
	UserID            uuid.UUID
	WarehouseID       uuid.UUID
	BookingID         string
	Waybill           string
	CourierCode       string
	ServiceCode       string
	Insurance         bool
	ShippingCost      int64
	Subtotal          decimal.Decimal
	ExpectPickupStart *time.Time
	ExpectPickupEnd   *time.Time
	CreatedAt         time.Time
}

package fastrac

// Location is one subdistrict/district pair returned for a postal code
type Location struct {
	Subdistrict string `json:"subdistrict"`
	District    string `json:"district"`
}

// Region is one entry of the provider's region directory
type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Courier is one logistics carrier with its capability flags
type Courier struct {
	CourierCode      string  `json:"courier_code"`
	CourierName      string  `json:"courier_name"`
	COD              bool    `json:"cod"`
	CODFee           float64 `json:"cod_fee"`
	CODFeeMin        float64 `json:"cod_fee_min"`
	Dropoff          bool    `json:"dropoff"`
	Pickup           bool    `json:"pickup"`
	ExpressDelivery  bool    `json:"express_delivery"`
	InstantDelivery  bool    `json:"instant_delivery"`
	Insurance        float64 `json:"insurance"`
	InsuranceMinimum *int64  `json:"insurance_minimum"`
	Logo             string  `json:"logo"`
}

// ServiceOffering is one shipping service a courier offers
type ServiceOffering struct {
	ServiceName string `json:"nama_service"`
	ServiceCode string `json:"code_service"`
	ETDStart    int    `json:"etd_start"`
	ETDEnd      int    `json:"etd_end"`
	ETDUnit     string `json:"etd_unit"`
}

// CourierServiceSet groups a courier's offerings by delivery tier
type CourierServiceSet struct {
	ExpressDelivery []ServiceOffering `json:"express_delivery"`
	InstantDelivery []ServiceOffering `json:"instant_delivery"`
}

// Contains reports whether code names one of the offerings in either tier
func (s CourierServiceSet) Contains(code string) bool {
	for _, o := range s.ExpressDelivery {
		if o.ServiceCode == code {
			return true
		}
	}
	for _, o := range s.InstantDelivery {
		if o.ServiceCode == code {
			return true
		}
	}
	return false
}

// Empty reports whether the courier offers no service at all
func (s CourierServiceSet) Empty() bool {
	return len(s.ExpressDelivery) == 0 && len(s.InstantDelivery) == 0
}

// PackageProfile is the weight/dimension payload sent with a tariff request.
// The checkout flow uses a fixed placeholder profile rather than deriving it
// from cart contents.
type PackageProfile struct {
	Weight int `json:"weight"`
	Width  int `json:"width"`
	Height int `json:"height"`
	Length int `json:"length"`
}

// DefaultPackageProfile is the placeholder profile used for tariff quotes
var DefaultPackageProfile = PackageProfile{Weight: 3, Width: 3, Height: 3, Length: 3}

// TariffRequest is the origin/destination pair plus package profile
type TariffRequest struct {
	Origin      int64 `json:"origin"`
	Destination int64 `json:"destination"`
	PackageProfile
}

// TariffQuote is the provider's price quote for one courier service
type TariffQuote struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Tariff  int64  `json:"tariff"`
}

// OrderParty is the shipper or receiver side of an order
type OrderParty struct {
	RegionID  int64  `json:"region_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// OrderItem is the declared item manifest of an order
type OrderItem struct {
	Name     string `json:"name"`
	Desc     string `json:"desc"`
	Category string `json:"category"`
	Qty      int    `json:"qty"`
	Value    int64  `json:"value"`
	Weight   int    `json:"weight"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Length   int    `json:"length"`
}

// OrderRequest is the order-creation payload. Insurance, pickup and cod are
// the provider's "1"/"0" string flags.
type OrderRequest struct {
	CourierCode string     `json:"courier_code"`
	ServiceCode string     `json:"code_service"`
	Insurance   string     `json:"insurance"`
	Pickup      string     `json:"pickup"`
	COD         string     `json:"cod"`
	Shipper     OrderParty `json:"shipper"`
	Receiver    OrderParty `json:"receiver"`
	Item        OrderItem  `json:"item"`
}

// InsuranceDetail is the insurance fee breakdown of a created order
type InsuranceDetail struct {
	InsurancePercent float64 `json:"insurance_percent"`
	InsuranceMinimum int64   `json:"insurance_minimum"`
	Insurance        int64   `json:"insurance"`
}

// CODDetail is the cash-on-delivery fee breakdown of a created order
type CODDetail struct {
	ItemValue       int64   `json:"item_value"`
	CODFeePercent   float64 `json:"cod_fee_percent"`
	CODFee          int64   `json:"cod_fee"`
	CODCustom       int64   `json:"cod_custom"`
	CODBilled       int64   `json:"cod_billed"`
	CODDisbursement int64   `json:"cod_disbursement"`
}

// OrderConfirmation is the logistics metadata of a created order
type OrderConfirmation struct {
	BookingID         string           `json:"booking_id"`
	AWB               string           `json:"awb"`
	ExpectPickupStart string           `json:"expect_pickup_start"`
	ExpectPickupEnd   string           `json:"expect_pickup_end"`
	Tariff            int64            `json:"tariff"`
	Insurance         bool             `json:"insurance"`
	InsuranceDetail   *InsuranceDetail `json:"insurance_detail,omitempty"`
	COD               bool             `json:"cod"`
	CODDetail         *CODDetail       `json:"cod_detail,omitempty"`
}

package fastrac

import (
	"context"

	"github.com/izamghali/fastrac-take-home-test/pkg/errors"
)

type orderResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    OrderConfirmation `json:"data"`
}

// CreateOrder books an order with the provider and returns its logistics
// metadata (booking id, waybill, pickup window, fee breakdowns)
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*OrderConfirmation, error) {
	if req.CourierCode == "" || req.ServiceCode == "" {
		return nil, &errors.ErrValidation{Message: "courier_code and code_service are required"}
	}

	var resp orderResponse
	if err := c.post(ctx, "order creation", "/apiOrder/createOrder", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &errors.ErrUpstream{Operation: "order creation", Body: resp.Message}
	}
	return &resp.Data, nil
}

package fastrac

import (
	"context"
	"net/url"
)

type courierResponse struct {
	Data []Courier `json:"data"`
}

type courierServiceResponse struct {
	Data CourierServiceSet `json:"data"`
}

// AllCouriers lists the couriers available on the account
func (c *Client) AllCouriers(ctx context.Context) ([]Courier, error) {
	var resp courierResponse
	if err := c.get(ctx, "courier list", "/apiCourier/all-courier", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CourierServices lists a courier's offerings grouped by delivery tier
func (c *Client) CourierServices(ctx context.Context, courierCode string) (CourierServiceSet, error) {
	query := url.Values{}
	query.Set("courier_code", courierCode)

	var resp courierServiceResponse
	if err := c.get(ctx, "courier service list", "/apiCourier/courier-service", query, &resp); err != nil {
		return CourierServiceSet{}, err
	}
	return resp.Data, nil
}

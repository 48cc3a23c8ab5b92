package fastrac

import (
	"context"
)

type tariffResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Tariff int64 `json:"tariff"`
	} `json:"data"`
}

// QuoteTariff fetches the delivery price for the given origin/destination
// regions and package profile
func (c *Client) QuoteTariff(ctx context.Context, req TariffRequest) (*TariffQuote, error) {
	var resp tariffResponse
	if err := c.post(ctx, "tariff quote", "/apiTariff/tariffExpress", req, &resp); err != nil {
		return nil, err
	}
	return &TariffQuote{
		Success: resp.Success,
		Message: resp.Message,
		Tariff:  resp.Data.Tariff,
	}, nil
}

package fastrac

import (
	"context"
	"net/url"
	"strings"

	"github.com/izamghali/fastrac-take-home-test/pkg/errors"
)

type locationResponse struct {
	Data []Location `json:"data"`
}

type regionResponse struct {
	Data []Region `json:"data"`
}

// LocationsByPostalCode looks up the subdistrict/district pairs for a postal
// code. Returns ErrNotFound when the provider knows no such postal code.
func (c *Client) LocationsByPostalCode(ctx context.Context, postalCode string) ([]Location, error) {
	query := url.Values{}
	query.Set("post_code", postalCode)

	var resp locationResponse
	if err := c.get(ctx, "postal code lookup", "/apiRegion/postCode", query, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, &errors.ErrNotFound{Resource: "postal code", ID: postalCode}
	}
	return resp.Data, nil
}

// SearchRegions runs a free-text search against the provider's region directory
func (c *Client) SearchRegions(ctx context.Context, search string) ([]Region, error) {
	if search == "" {
		return nil, &errors.ErrValidation{Message: "missing search term"}
	}

	var resp regionResponse
	body := map[string]string{"search": search}
	if err := c.post(ctx, "region search", "/apiRegion/search-region", body, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// FirstRegionMatch returns the id of the first region whose name contains the
// postal code substring, or 0 when none matches. First match wins even when
// several candidates share the substring.
func FirstRegionMatch(regions []Region, postalCode string) int64 {
	if postalCode == "" {
		return 0
	}
	for _, region := range regions {
		if strings.Contains(region.Name, postalCode) {
			return region.ID
		}
	}
	return 0
}

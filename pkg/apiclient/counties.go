package apiclient

import (
	"context"
	"net/http"
)

func (c *Client) CreateCounty(ctx context.Context, in CountyInput) (*County, error) {
	county := &County{}
	if _, err := c.doJSON(ctx, call{op: "create_county", method: http.MethodPost, path: "/counties", in: in}, county); err != nil {
		return nil, err
	}
	return county, nil
}

func (c *Client) Counties(ctx context.Context) ([]County, error) {
	var counties []County
	if _, err := c.doJSON(ctx, call{op: "list_counties", method: http.MethodGet, path: "/counties"}, &counties); err != nil {
		return nil, err
	}
	return counties, nil
}

func (c *Client) TopCounties(ctx context.Context) ([]CountyStat, error) {
	var stats []CountyStat
	if _, err := c.doJSON(ctx, call{op: "top_counties", method: http.MethodGet, path: "/counties/top-counties"}, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

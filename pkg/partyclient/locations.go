package partyclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pribylovaa/party-one/pkg/api"
)

func (c *Client) Countries(ctx context.Context) ([]api.Country, error) {
	var out []api.Country
	if err := c.do(ctx, request{method: http.MethodGet, path: "/locations/countries"}, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) States(ctx context.Context, countryID string) ([]api.State, error) {
	var out []api.State
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/locations/states",
		query:  url.Values{"country": {countryID}},
	}, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) Cities(ctx context.Context, countryID, stateID string) ([]api.City, error) {
	var out []api.City
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/locations/cities",
		query:  url.Values{"country": {countryID}, "state": {stateID}},
	}, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

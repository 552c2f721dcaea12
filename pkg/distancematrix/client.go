// Package distancematrix queries the Google Distance Matrix API for one origin
// and a small batch of destinations.
package distancematrix

import (
	"context"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"googlemaps.github.io/maps"
)

// MaxDestinations is the largest batch sent in a single request.
const MaxDestinations = 10

// ErrTooManyDestinations is returned when a batch exceeds MaxDestinations.
var ErrTooManyDestinations = eris.New("distancematrix: too many destinations")

// Client performs Distance Matrix lookups.
type Client interface {
	// Row returns one element per destination, in destination order. An
	// element without a distance is returned with Available unset; that is
	// not an error.
	Row(ctx context.Context, origin string, destinations []string) ([]*Element, error)
}

// Element is the provider's answer for a single destination.
type Element struct {
	Destination string `json:"destination"`
	Status      string `json:"status"`
	Text        string `json:"text"`   // e.g. "1,234 km"
	Meters      int    `json:"meters"` // provider's numeric value, informational
	Available   bool   `json:"available"`
}

// Option configures the client.
type Option func(*mapsClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *mapsClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *mapsClient) {
		c.http = hc
	}
}

// WithRateLimit caps requests per second issued by the client.
func WithRateLimit(perSecond int) Option {
	return func(c *mapsClient) {
		c.rateLimit = perSecond
	}
}

type mapsClient struct {
	baseURL   string
	http      *http.Client
	rateLimit int
	maps      *maps.Client
}

// NewClient creates a Distance Matrix client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) (Client, error) {
	if apiKey == "" {
		return nil, eris.New("distancematrix: api key is empty")
	}

	c := &mapsClient{
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}

	mopts := []maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(c.http),
	}
	if c.baseURL != "" {
		mopts = append(mopts, maps.WithBaseURL(c.baseURL))
	}
	if c.rateLimit > 0 {
		mopts = append(mopts, maps.WithRateLimit(c.rateLimit))
	}

	mc, err := maps.NewClient(mopts...)
	if err != nil {
		return nil, eris.Wrap(err, "distancematrix: create maps client")
	}
	c.maps = mc

	return c, nil
}

func (c *mapsClient) Row(ctx context.Context, origin string, destinations []string) ([]*Element, error) {
	if origin == "" {
		return nil, eris.New("distancematrix: origin is empty")
	}
	if len(destinations) == 0 {
		return []*Element{}, nil
	}
	if len(destinations) > MaxDestinations {
		return nil, eris.Wrapf(ErrTooManyDestinations, "got %d, max %d", len(destinations), MaxDestinations)
	}

	// The maps client joins destinations with "|" and fails on any top-level
	// status other than OK.
	resp, err := c.maps.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: destinations,
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsMetric,
	})
	if err != nil {
		return nil, eris.Wrapf(err, "distancematrix: query origin %q", origin)
	}

	if len(resp.Rows) != 1 {
		return nil, eris.Errorf("distancematrix: expected 1 row, got %d", len(resp.Rows))
	}

	row := resp.Rows[0].Elements
	if len(row) != len(destinations) {
		return nil, eris.Errorf("distancematrix: expected %d elements, got %d", len(destinations), len(row))
	}

	out := make([]*Element, len(destinations))
	for i, dest := range destinations {
		el := &Element{Destination: dest}
		if e := row[i]; e != nil {
			el.Status = e.Status
			el.Text = e.Distance.HumanReadable
			el.Meters = e.Distance.Meters
			el.Available = e.Status == "OK" && e.Distance.HumanReadable != ""
		}
		out[i] = el
	}

	return out, nil
}

package main

import (
	"net/http"
	"time"

	"github.com/rotisserie/eris"

	"github.com/taimone/closest-facilities-lookup/pkg/distancematrix"
)

// newProvider builds the Distance Matrix client from cfg.
func newProvider() (distancematrix.Client, error) {
	opts := []distancematrix.Option{
		distancematrix.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Distance.TimeoutSecs) * time.Second,
		}),
		distancematrix.WithRateLimit(cfg.Distance.RateLimit),
	}
	if cfg.Distance.BaseURL != "" {
		opts = append(opts, distancematrix.WithBaseURL(cfg.Distance.BaseURL))
	}

	client, err := distancematrix.NewClient(cfg.Distance.APIKey, opts...)
	if err != nil {
		return nil, eris.Wrap(err, "init distance provider")
	}
	return client, nil
}

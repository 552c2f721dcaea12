// Package precheck verifies network and provider reachability before any
// employee is processed.
package precheck

import (
	"context"
	"io"
	"net/http"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/taimone/closest-facilities-lookup/pkg/distancematrix"
)

// Sentinel errors returned by Run.
var (
	ErrNetworkUnreachable  = eris.New("precheck: network connectivity test failed")
	ErrProviderUnavailable = eris.New("precheck: distance provider connection test failed")
)

// Checks holds what Run needs.
type Checks struct {
	HTTP              *http.Client
	NetworkURL        string
	Provider          distancematrix.Client
	SampleOrigin      string
	SampleDestination string
}

// CheckNetwork issues a GET to url and reports whether it answered 200.
// Errors are logged, never returned.
func CheckNetwork(ctx context.Context, hc *http.Client, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		zap.L().Warn("precheck: build network request", zap.String("url", url), zap.Error(err))
		return false
	}

	resp, err := hc.Do(req)
	if err != nil {
		zap.L().Warn("precheck: network request failed", zap.String("url", url), zap.Error(err))
		return false
	}
	defer resp.Body.Close() //nolint:errcheck
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		zap.L().Warn("precheck: unexpected network status", zap.String("url", url), zap.Int("status", resp.StatusCode))
		return false
	}
	return true
}

// CheckProvider sends one sample query. The provider client only succeeds
// when the response's own status is OK, so any error means the credential or
// service is unusable.
func CheckProvider(ctx context.Context, client distancematrix.Client, origin, destination string) bool {
	if client == nil {
		return false
	}
	if _, err := client.Row(ctx, origin, []string{destination}); err != nil {
		zap.L().Warn("precheck: provider sample query failed",
			zap.String("origin", origin),
			zap.String("destination", destination),
			zap.Error(err),
		)
		return false
	}
	return true
}

// Run performs the network check and then the provider check, stopping at the
// first failure.
func Run(ctx context.Context, c Checks) error {
	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}

	zap.L().Info("testing network connectivity", zap.String("url", c.NetworkURL))
	if !CheckNetwork(ctx, hc, c.NetworkURL) {
		return ErrNetworkUnreachable
	}
	zap.L().Info("network connectivity test successful")

	zap.L().Info("testing distance provider connection")
	if !CheckProvider(ctx, c.Provider, c.SampleOrigin, c.SampleDestination) {
		return ErrProviderUnavailable
	}
	zap.L().Info("distance provider connection test successful")

	return nil
}

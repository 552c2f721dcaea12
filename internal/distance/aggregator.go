// Package distance collects provider distances from one employee location to
// every facility, one batch at a time.
package distance

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/taimone/closest-facilities-lookup/internal/model"
	"github.com/taimone/closest-facilities-lookup/pkg/distancematrix"
)

// Aggregator splits the facility list into batches and queries the provider
// for each batch in turn. Batches are never issued concurrently so provider
// call order is deterministic.
type Aggregator struct {
	client    distancematrix.Client
	batchSize int
}

// NewAggregator creates an Aggregator. batchSize is clamped to
// [1, distancematrix.MaxDestinations].
func NewAggregator(client distancematrix.Client, batchSize int) *Aggregator {
	if batchSize < 1 || batchSize > distancematrix.MaxDestinations {
		batchSize = distancematrix.MaxDestinations
	}
	return &Aggregator{client: client, batchSize: batchSize}
}

// Aggregate returns the available distances from origin to each facility zip,
// in facility order. Facilities without a distance are logged and dropped.
func (a *Aggregator) Aggregate(ctx context.Context, origin string, facilityZips []string) ([]model.DistanceResult, error) {
	log := zap.L().With(zap.String("origin", origin))

	out := make([]model.DistanceResult, 0, len(facilityZips))
	for i, batch := range Batches(facilityZips, a.batchSize) {
		row, err := a.client.Row(ctx, origin, batch)
		if err != nil {
			return nil, eris.Wrapf(err, "distance: batch %d for origin %q", i+1, origin)
		}
		if len(row) != len(batch) {
			return nil, eris.Errorf("distance: batch %d returned %d elements for %d facilities", i+1, len(row), len(batch))
		}

		for j, zip := range batch {
			el := row[j]
			if el == nil || !el.Available {
				log.Warn("distance data not available for facility",
					zap.String("facility_zip", zip),
					zap.String("status", elementStatus(el)),
				)
				continue
			}
			out = append(out, model.DistanceResult{FacilityZip: zip, Text: el.Text})
		}

		log.Debug("batch complete",
			zap.Int("batch", i+1),
			zap.Int("size", len(batch)),
		)
	}

	return out, nil
}

// Batches splits zips into consecutive groups of size; the last group may be
// smaller. The input slice is not modified.
func Batches(zips []string, size int) [][]string {
	if size < 1 {
		size = 1
	}
	batches := make([][]string, 0, (len(zips)+size-1)/size)
	for start := 0; start < len(zips); start += size {
		end := min(start+size, len(zips))
		batch := make([]string, end-start)
		copy(batch, zips[start:end])
		batches = append(batches, batch)
	}
	return batches
}

func elementStatus(el *distancematrix.Element) string {
	if el == nil {
		return "MISSING"
	}
	return el.Status
}

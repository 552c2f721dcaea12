// Package ranking turns provider distance text into whole miles and picks the
// closest facilities.
package ranking

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/taimone/closest-facilities-lookup/internal/model"
)

// MilesPerKilometer is the conversion factor applied to provider kilometres.
const MilesPerKilometer = 0.621371

// TopN is the number of facilities reported per employee.
const TopN = 3

// ParseKilometers reads the leading number of a provider distance such as
// "1,234 km" and returns it in kilometres. Thousands separators are ignored.
// A trailing "m" unit is read as metres; no unit is read as kilometres.
func ParseKilometers(text string) (float64, error) {
	fields := strings.Fields(strings.ReplaceAll(text, ",", ""))
	if len(fields) == 0 {
		return 0, eris.Errorf("ranking: empty distance text %q", text)
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, eris.Wrapf(err, "ranking: parse distance text %q", text)
	}
	if value < 0 {
		return 0, eris.Errorf("ranking: negative distance text %q", text)
	}

	if len(fields) > 1 && strings.EqualFold(fields[1], "m") {
		return value / 1000, nil
	}
	return value, nil
}

// KilometersToMiles converts and truncates toward zero.
func KilometersToMiles(km float64) int {
	return int(km * MilesPerKilometer)
}

// SelectNearest returns up to n facilities ordered by ascending distance.
// Equal distances keep their input order.
func SelectNearest(distances []model.DistanceResult, n int) ([]model.RankedFacility, error) {
	ranked := make([]model.RankedFacility, 0, len(distances))
	for _, d := range distances {
		km, err := ParseKilometers(d.Text)
		if err != nil {
			return nil, eris.Wrapf(err, "ranking: facility %q", d.FacilityZip)
		}
		ranked = append(ranked, model.RankedFacility{
			FacilityZip: d.FacilityZip,
			Kilometers:  km,
			Miles:       KilometersToMiles(km),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Kilometers < ranked[j].Kilometers
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// SelectTop3 returns the three closest facilities.
func SelectTop3(distances []model.DistanceResult) ([]model.RankedFacility, error) {
	return SelectNearest(distances, TopN)
}

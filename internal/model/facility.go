package model

import "go.uber.org/zap"

// Facility is one row of the facility source.
type Facility struct {
	Zip         string `json:"zip"`
	AirportCode string `json:"airport_code"`
}

// FacilityIndex is the read-only lookup from facility zip to airport code.
// Zips() keeps first-seen source order, which is the destination order used
// for every provider query.
type FacilityIndex struct {
	zips    []string
	airport map[string]string
}

// NewFacilityIndex builds the index once per run. A repeated zip keeps its
// first position and takes the later airport code.
func NewFacilityIndex(facilities []Facility) *FacilityIndex {
	idx := &FacilityIndex{
		zips:    make([]string, 0, len(facilities)),
		airport: make(map[string]string, len(facilities)),
	}
	for _, f := range facilities {
		if prev, ok := idx.airport[f.Zip]; ok {
			zap.L().Warn("duplicate facility zip",
				zap.String("zip", f.Zip),
				zap.String("previous_airport", prev),
				zap.String("airport", f.AirportCode),
			)
		} else {
			idx.zips = append(idx.zips, f.Zip)
		}
		idx.airport[f.Zip] = f.AirportCode
	}
	return idx
}

// Zips returns a copy of the facility zips in source order.
func (x *FacilityIndex) Zips() []string {
	out := make([]string, len(x.zips))
	copy(out, x.zips)
	return out
}

// AirportCode returns the airport code for a facility zip.
func (x *FacilityIndex) AirportCode(zip string) (string, bool) {
	code, ok := x.airport[zip]
	return code, ok
}

// Len returns the number of distinct facilities.
func (x *FacilityIndex) Len() int {
	return len(x.zips)
}

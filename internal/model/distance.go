package model

// DistanceResult is a provider distance for one facility, still in the
// provider's text form (for example "1,234 km").
type DistanceResult struct {
	FacilityZip string `json:"facility_zip"`
	Text        string `json:"text"`
}

// RankedFacility is a facility after unit conversion. Miles is truncated,
// never rounded.
type RankedFacility struct {
	FacilityZip string  `json:"facility_zip"`
	Kilometers  float64 `json:"kilometers"`
	Miles       int     `json:"miles"`
}

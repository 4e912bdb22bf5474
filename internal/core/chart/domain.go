package chart

// Domain holds the data extents a chart is scaled against
// MinValue is pinned to 0 so every bar starts on the baseline
type Domain struct {
	MinValue float64 `json:"min_value"`
	MaxValue float64 `json:"max_value"`
	MinYear  int     `json:"min_year"`
	MaxYear  int     `json:"max_year"`

	// fractional year span used by the time layout
	MinPeriod float64 `json:"min_period"`
	MaxPeriod float64 `json:"max_period"`
}

// ComputeDomain parses obs and returns their extents
func ComputeDomain(obs []Observation) (Domain, error) {
	if len(obs) == 0 {
		return Domain{}, ErrEmptyDataset
	}
	parsed, err := ParseObservations(obs)
	if err != nil {
		return Domain{}, err
	}
	return computeDomain(parsed)
}

func computeDomain(obs []ParsedObservation) (Domain, error) {
	if len(obs) == 0 {
		return Domain{}, ErrEmptyDataset
	}
	first := obs[0]
	d := Domain{
		MinValue:  0,
		MaxValue:  first.Value,
		MinYear:   first.Year,
		MaxYear:   first.Year,
		MinPeriod: first.Period(),
		MaxPeriod: first.Period(),
	}
	for _, o := range obs[1:] {
		d.MaxValue = max(d.MaxValue, o.Value)
		d.MinYear = min(d.MinYear, o.Year)
		d.MaxYear = max(d.MaxYear, o.Year)
		d.MinPeriod = min(d.MinPeriod, o.Period())
		d.MaxPeriod = max(d.MaxPeriod, o.Period())
	}
	return d, nil
}

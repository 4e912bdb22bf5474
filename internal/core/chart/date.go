package chart

import (
	"math"
	"regexp"
	"strconv"
)

// dateRe matches plain calendar digits, no timezone or locale interpretation
var dateRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// Date is a calendar date split into its digit groups
// values are not range checked, "1947-13-40" parses fine
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// ParseDate splits an ISO "YYYY-MM-DD" string into year, month and day
func ParseDate(s string) (Date, error) {
	m := dateRe.FindStringSubmatch(s)
	if m == nil {
		return Date{}, &ParseError{Index: -1, Input: s}
	}
	// the regexp guarantees ascii digits so Atoi cannot fail
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	return Date{Year: y, Month: mo, Day: d}, nil
}

// QuarterOf maps a quarter start month to its quarter
// source data only carries 01, 04, 07 and 10; anything else falls into Q4
func QuarterOf(month int) int {
	switch month {
	case 1:
		return 1
	case 4:
		return 2
	case 7:
		return 3
	default:
		return 4
	}
}

// Observation is one (date, value) point of the series
type Observation struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ParsedObservation carries the derived year and quarter of an observation
type ParsedObservation struct {
	Observation
	Year    int `json:"year"`
	Quarter int `json:"quarter"`
}

// Period returns the observation position in fractional years, Q1 at .0 and Q4 at .75
func (p ParsedObservation) Period() float64 {
	return float64(p.Year) + float64(p.Quarter-1)/4
}

// ParseObservation derives year and quarter from o.Date and checks o.Value
func ParseObservation(o Observation) (ParsedObservation, error) {
	d, err := ParseDate(o.Date)
	if err != nil {
		return ParsedObservation{}, err
	}
	if math.IsNaN(o.Value) || math.IsInf(o.Value, 0) || o.Value < 0 {
		return ParsedObservation{}, &ValueError{Index: -1, Date: o.Date, Value: o.Value}
	}
	return ParsedObservation{Observation: o, Year: d.Year, Quarter: QuarterOf(d.Month)}, nil
}

// ParseObservations parses every observation in order
// the first bad record aborts the whole batch, a malformed dataset is not partially renderable
func ParseObservations(obs []Observation) ([]ParsedObservation, error) {
	out := make([]ParsedObservation, 0, len(obs))
	for i, o := range obs {
		p, err := ParseObservation(o)
		if err != nil {
			return nil, atIndex(err, i)
		}
		out = append(out, p)
	}
	return out, nil
}

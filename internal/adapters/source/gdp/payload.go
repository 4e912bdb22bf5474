// Package gdp fetches the quarterly GDP document and decodes it into chart observations
package gdp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gdpchart/internal/core/chart"
)

// Dataset is one decoded GDP document
// Observations keep the document order, which is chronological by quarter
type Dataset struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	SourceName   string              `json:"source_name"`
	FromDate     string              `json:"from_date"`
	ToDate       string              `json:"to_date"`
	Observations []chart.Observation `json:"observations"`
}

// payload is the wire shape, data holds [date, value] pairs
type payload struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	SourceName  string            `json:"source_name"`
	FromDate    string            `json:"from_date"`
	ToDate      string            `json:"to_date"`
	Data        []json.RawMessage `json:"data"`
}

// Decode reads a GDP document from r
// a pair with the wrong arity or types fails the whole document
func Decode(r io.Reader) (Dataset, error) {
	var p payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Dataset{}, fmt.Errorf("decode document: %w", err)
	}
	if p.Data == nil {
		return Dataset{}, fmt.Errorf("decode document: missing data field")
	}

	obs, err := DecodePairs(p.Data)
	if err != nil {
		return Dataset{}, err
	}
	return Dataset{
		Name:         p.Name,
		Description:  p.Description,
		SourceName:   p.SourceName,
		FromDate:     p.FromDate,
		ToDate:       p.ToDate,
		Observations: obs,
	}, nil
}

// DecodePairs turns raw [date, value] pairs into observations, in order
func DecodePairs(data []json.RawMessage) ([]chart.Observation, error) {
	obs := make([]chart.Observation, 0, len(data))
	for i, raw := range data {
		o, err := decodePair(raw)
		if err != nil {
			return nil, fmt.Errorf("decode data[%d]: %w", i, err)
		}
		obs = append(obs, o)
	}
	return obs, nil
}

var null = []byte("null")

func decodePair(raw json.RawMessage) (chart.Observation, error) {
	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil {
		return chart.Observation{}, fmt.Errorf("want a [date, value] pair: %w", err)
	}
	if len(pair) != 2 {
		return chart.Observation{}, fmt.Errorf("want a [date, value] pair, got %d elements", len(pair))
	}
	var o chart.Observation
	if bytes.Equal(bytes.TrimSpace(pair[0]), null) || json.Unmarshal(pair[0], &o.Date) != nil {
		return chart.Observation{}, fmt.Errorf("date is not a string: %s", pair[0])
	}
	if bytes.Equal(bytes.TrimSpace(pair[1]), null) || json.Unmarshal(pair[1], &o.Value) != nil {
		return chart.Observation{}, fmt.Errorf("value is not a number: %s", pair[1])
	}
	return o, nil
}

package chart

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MoneyFormat selects how many decimals a tooltip amount carries
type MoneyFormat uint8

const (
	// MoneyAdaptive prints one decimal below 1000 and none from 1000 up
	MoneyAdaptive MoneyFormat = iota
	// MoneyCents always prints two decimals
	MoneyCents
	// MoneyWhole never prints decimals
	MoneyWhole
)

var moneyNames = [...]string{
	MoneyAdaptive: "adaptive",
	MoneyCents:    "cents",
	MoneyWhole:    "whole",
}

func (m MoneyFormat) String() string {
	if int(m) < len(moneyNames) {
		return moneyNames[m]
	}
	return fmt.Sprintf("MoneyFormat(%d)", uint8(m))
}

// ParseMoneyFormat resolves a policy name, empty means adaptive
func ParseMoneyFormat(s string) (MoneyFormat, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return MoneyAdaptive, nil
	}
	for i, n := range moneyNames {
		if n == s {
			return MoneyFormat(i), nil
		}
	}
	return 0, fmt.Errorf("chart: unknown money format %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (m MoneyFormat) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (m *MoneyFormat) UnmarshalText(b []byte) error {
	v, err := ParseMoneyFormat(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Decimals returns the decimal places used for v
func (m MoneyFormat) Decimals(v float64) int {
	switch m {
	case MoneyCents:
		return 2
	case MoneyWhole:
		return 0
	default:
		if v < 1000 {
			return 1
		}
		return 0
	}
}

// FormatMoney renders v with "," thousands separators and the given decimals
func FormatMoney(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	// printers hold scratch state, one per call keeps FormatMoney safe to share
	p := message.NewPrinter(language.English)
	return p.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

// Tooltip describes one bar, e.g. "$243.1 Billion 1947 Q1"
func Tooltip(o ParsedObservation, m MoneyFormat) string {
	return fmt.Sprintf("$%s Billion %d Q%d", FormatMoney(o.Value, m.Decimals(o.Value)), o.Year, o.Quarter)
}

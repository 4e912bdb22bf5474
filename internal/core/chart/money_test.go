package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		v    float64
		dec  int
		want string
	}{
		{243.1, 1, "243.1"},
		{999.94, 1, "999.9"},
		{18325.2, 0, "18,325"},
		{1234.5, 2, "1,234.50"},
		{1234567.25, 0, "1,234,567"},
		{0, 1, "0.0"},
		{12, -3, "12"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatMoney(c.v, c.dec), "FormatMoney(%v, %d)", c.v, c.dec)
	}
}

func TestMoneyFormat_Decimals(t *testing.T) {
	assert.Equal(t, 1, MoneyAdaptive.Decimals(243.1))
	assert.Equal(t, 1, MoneyAdaptive.Decimals(999.99))
	assert.Equal(t, 0, MoneyAdaptive.Decimals(1000))
	assert.Equal(t, 0, MoneyAdaptive.Decimals(18325.2))
	assert.Equal(t, 2, MoneyCents.Decimals(18325.2))
	assert.Equal(t, 0, MoneyWhole.Decimals(243.1))
}

func TestTooltip(t *testing.T) {
	o := ParsedObservation{Observation: Observation{Date: "1947-01-01", Value: 243.1}, Year: 1947, Quarter: 1}
	assert.Equal(t, "$243.1 Billion 1947 Q1", Tooltip(o, MoneyAdaptive))
	assert.Equal(t, "$243.10 Billion 1947 Q1", Tooltip(o, MoneyCents))
	assert.Equal(t, "$243 Billion 1947 Q1", Tooltip(o, MoneyWhole))

	big := ParsedObservation{Observation: Observation{Date: "2015-07-01", Value: 18064.7}, Year: 2015, Quarter: 3}
	assert.Equal(t, "$18,065 Billion 2015 Q3", Tooltip(big, MoneyAdaptive))
}

func TestParseMoneyFormat(t *testing.T) {
	for in, want := range map[string]MoneyFormat{
		"":         MoneyAdaptive,
		"adaptive": MoneyAdaptive,
		" Cents ":  MoneyCents,
		"WHOLE":    MoneyWhole,
	} {
		got, err := ParseMoneyFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMoneyFormat("euros")
	require.Error(t, err)

	var m MoneyFormat
	require.NoError(t, m.UnmarshalText([]byte("cents")))
	assert.Equal(t, MoneyCents, m)
	b, _ := MoneyWhole.MarshalText()
	assert.Equal(t, "whole", string(b))
}

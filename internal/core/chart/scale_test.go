package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearScale_Endpoints(t *testing.T) {
	cases := []struct {
		name           string
		d0, d1, r0, r1 float64
	}{
		{"value axis", 0, 246.3, 60, 540},
		{"index axis", 0, 2730, 60, 780},
		{"inverted range", 0, 100, 540, 60},
		{"negative domain", -50, 50, 0, 1},
		{"reversed domain", 10, 0, 0, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := BuildLinearScale(c.d0, c.d1, c.r0, c.r1)
			assert.InDelta(t, c.r0, s.Apply(c.d0), 1e-9)
			assert.InDelta(t, c.r1, s.Apply(c.d1), 1e-9)
		})
	}
}

func TestLinearScale_Monotonic(t *testing.T) {
	up := BuildLinearScale(0, 10, 0, 100)
	down := BuildLinearScale(0, 10, 100, 0)
	for x := 0.0; x < 10; x += 0.5 {
		assert.Less(t, up.Apply(x), up.Apply(x+0.5))
		assert.Greater(t, down.Apply(x), down.Apply(x+0.5))
	}
}

func TestLinearScale_DegenerateDomain(t *testing.T) {
	s := BuildLinearScale(5, 5, 10, 90)
	require.True(t, s.Degenerate())
	for _, x := range []float64{-1e9, 0, 5, 5.0001, 1e9} {
		assert.Equal(t, 10.0, s.Apply(x))
	}
	assert.Equal(t, 10.0, s.Func()(42))
}

func TestLinearScale_Interpolates(t *testing.T) {
	s := BuildLinearScale(0, 246.3, 60, 540)
	assert.InDelta(t, 60+243.1/246.3*480, s.Apply(243.1), 1e-9)
	assert.InDelta(t, 300, s.Apply(123.15), 1e-9)
}

func TestLinearScale_Ticks(t *testing.T) {
	v := BuildLinearScale(0, 246.3, 60, 540).Ticks(10)
	require.Len(t, v, 13)
	assert.Equal(t, 0.0, v[0])
	assert.Equal(t, 240.0, v[len(v)-1])

	years := BuildLinearScale(1947, 2015, 0, 1).Ticks(10)
	require.NotEmpty(t, years)
	assert.Equal(t, 1950.0, years[0])
	assert.Equal(t, 2015.0, years[len(years)-1])
	for i := 1; i < len(years); i++ {
		assert.Equal(t, 5.0, years[i]-years[i-1])
	}

	small := BuildLinearScale(0, 1, 0, 1).Ticks(10)
	require.Len(t, small, 11)
	assert.Equal(t, 0.3, small[3])

	rev := BuildLinearScale(10, 0, 0, 1).Ticks(5)
	require.NotEmpty(t, rev)
	assert.Equal(t, 10.0, rev[0])
	assert.Equal(t, 0.0, rev[len(rev)-1])

	assert.Equal(t, []float64{7}, BuildLinearScale(7, 7, 0, 1).Ticks(10))
	assert.Nil(t, BuildLinearScale(0, 1, 0, 1).Ticks(0))
}

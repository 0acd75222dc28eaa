package stats

import (
	"testing"

	"github.com/matryer/is"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		values   []int
		mean     float64
		stdev    float64
		min, max float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638, 10, 23},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891, 10, 124},
		{[]int{1}, 1, 0, 1, 1},
		{[]int{}, 0, 0, 0, 0},
		{[]int{1, 1}, 1, 0, 1, 1},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, v := range c.values {
			s.Push(float64(v))
		}
		is.Equal(s.Count(), len(c.values))
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
		is.Equal(s.Min(), c.min)
		is.Equal(s.Max(), c.max)
	}
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(FuzzyEqual(ZVal(50), 0.6744897501960817))
	is.True(ZVal(95) > 1.9599 && ZVal(95) < 1.9600)
	is.True(ZVal(99) > 2.5758 && ZVal(99) < 2.5759)
}

func TestConfidenceInterval(t *testing.T) {
	is := is.New(t)
	s := &Statistic{}
	for _, v := range []float64{4, 6, 4, 6} {
		s.Push(v)
	}
	lo, hi := s.ConfidenceInterval(95)
	is.True(lo < 5 && hi > 5)
	is.True(FuzzyEqual(5-lo, hi-5))
	is.True(FuzzyEqual(hi-lo, 2*ZVal(95)*s.StandardError()))
}

func TestMedian(t *testing.T) {
	is := is.New(t)
	is.Equal(Median(nil), 0.0)
	is.Equal(Median([]float64{7}), 7.0)
	samples := []float64{9, 1, 5}
	is.Equal(Median(samples), 5.0)
	is.Equal(samples, []float64{9, 1, 5}) // unchanged
	is.Equal(Median([]float64{4, 3, 2, 1}), 2.0)
}

package features

import "strconv"

// set accumulates feature values and their column names in lockstep. Every
// value enters through add or addSeries together with its name, which keeps
// a group's vector and header from drifting apart when columns change.
type set struct {
	names  []string
	values []float64
}

func (s *set) add(name string, value float64) {
	s.names = append(s.names, name)
	s.values = append(s.values, value)
}

func (s *set) addSeries(prefix string, vals []float64) {
	for i, v := range vals {
		s.add(prefix+strconv.Itoa(i), v)
	}
}

func (s *set) merge(other *set) {
	s.names = append(s.names, other.names...)
	s.values = append(s.values, other.values...)
}

// seriesNames returns prefix0..prefixN-1, matching addSeries.
func seriesNames(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + strconv.Itoa(i)
	}

	return out
}

package grid

import (
	"math"
	"sort"
)

// positionSet is a set of float64 positions. Positions closer than the
// resolution are considered equal, so values computed as k*0.02 and
// 2k*0.01 collide as they should.
type positionSet struct {
	res  float64
	keys map[int64]float64
}

func newPositionSet(res float64) positionSet {
	return positionSet{res: res, keys: make(map[int64]float64)}
}

func (s positionSet) key(x float64) int64 {
	return int64(math.Round(x / s.res))
}

// Add adds x to s.
func (s positionSet) Add(x float64) {
	s.keys[s.key(x)] = x
}

// Contains reports membership of x in s.
func (s positionSet) Contains(x float64) bool {
	_, ok := s.keys[s.key(x)]
	return ok
}

func (s positionSet) Len() int { return len(s.keys) }

// Elements returns the members in ascending order.
func (s positionSet) Elements() []float64 {
	elems := make([]float64, 0, len(s.keys))
	for _, x := range s.keys {
		elems = append(elems, x)
	}
	sort.Float64s(elems)
	return elems
}

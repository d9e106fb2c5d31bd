package cloud

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"
)

func checkParallel(t *testing.T, s *Store) {
	t.Helper()
	pts := s.Points()
	depths := s.DepthAttribute()
	cells := s.Cells()
	test.That(t, pts, test.ShouldHaveLength, s.Len())
	test.That(t, depths, test.ShouldHaveLength, s.Len())
	test.That(t, cells, test.ShouldHaveLength, s.Len())
	for i := range pts {
		test.That(t, depths[i], test.ShouldEqual, pts[i].Z)
		test.That(t, cells[i].Point, test.ShouldEqual, i)
	}
}

func TestStoreInsertPoint(t *testing.T) {
	s := New(DefaultOptions())
	checkParallel(t, s)

	in := []r3.Vector{
		{X: 1, Y: 2, Z: 3},
		{X: -4, Y: 5, Z: 0.5},
		{X: 1, Y: 2, Z: 3},
	}
	for i, p := range in {
		idx, err := s.InsertPoint(p)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, idx, test.ShouldEqual, i)
		checkParallel(t, s)
	}
	test.That(t, s.Points(), test.ShouldResemble, in)
	test.That(t, s.Point(1), test.ShouldResemble, in[1])
	test.That(t, s.Depth(1), test.ShouldEqual, 0.5)
}

func TestStoreAcceptsNonFinite(t *testing.T) {
	s := New(DefaultOptions())
	_, err := s.InsertPoint(r3.Vector{X: math.NaN(), Y: 0, Z: 1e9})
	test.That(t, err, test.ShouldBeNil)
	_, err = s.InsertPoint(r3.Vector{X: 0, Y: 0, Z: math.Inf(-1)})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.Len(), test.ShouldEqual, 2)
	checkParallel(t, s)

	_, ok := s.Bounds()
	test.That(t, ok, test.ShouldBeFalse)
}

func TestStoreCapacity(t *testing.T) {
	s := New(Options{MinRange: 0, MaxRange: 1, MaxNumPoints: 2})
	for i := 0; i < 2; i++ {
		_, err := s.InsertPoint(r3.Vector{Z: float64(i)})
		test.That(t, err, test.ShouldBeNil)
	}
	idx, err := s.InsertPoint(r3.Vector{Z: 9})
	test.That(t, idx, test.ShouldEqual, -1)
	test.That(t, errors.Is(err, ErrCapacityExceeded), test.ShouldBeTrue)
	test.That(t, s.Len(), test.ShouldEqual, 2)
	checkParallel(t, s)

	unbounded := New(Options{MaxNumPoints: 0})
	for i := 0; i < 10; i++ {
		_, err := unbounded.InsertPoint(r3.Vector{})
		test.That(t, err, test.ShouldBeNil)
	}
	test.That(t, unbounded.Len(), test.ShouldEqual, 10)
}

func TestStoreRange(t *testing.T) {
	s := New(DefaultOptions())
	lo, hi := s.Range()
	test.That(t, lo, test.ShouldEqual, 1.0)
	test.That(t, hi, test.ShouldEqual, 300.0)
	test.That(t, s.MaxNumPoints(), test.ShouldEqual, 800000)
}

func TestStoreBoundsAndSummary(t *testing.T) {
	s := New(DefaultOptions())
	sum := s.Summary()
	test.That(t, sum.Points, test.ShouldEqual, 0)
	test.That(t, sum.Finite, test.ShouldEqual, 0)

	for _, p := range []r3.Vector{
		{X: -1, Y: 4, Z: 1},
		{X: 3, Y: -2, Z: 2},
		{X: 0, Y: 0, Z: 3},
		{X: math.NaN(), Y: 0, Z: math.NaN()},
	} {
		_, err := s.InsertPoint(p)
		test.That(t, err, test.ShouldBeNil)
	}
	b, ok := s.Bounds()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, b.Min, test.ShouldResemble, r3.Vector{X: -1, Y: -2, Z: 1})
	test.That(t, b.Max, test.ShouldResemble, r3.Vector{X: 3, Y: 4, Z: 3})
	test.That(t, b.Center(), test.ShouldResemble, r3.Vector{X: 1, Y: 1, Z: 2})

	sum = s.Summary()
	test.That(t, sum.Points, test.ShouldEqual, 4)
	test.That(t, sum.Finite, test.ShouldEqual, 3)
	test.That(t, sum.DepthMin, test.ShouldEqual, 1.0)
	test.That(t, sum.DepthMax, test.ShouldEqual, 3.0)
	test.That(t, sum.DepthMean, test.ShouldAlmostEqual, 2.0)
	test.That(t, sum.DepthStd, test.ShouldAlmostEqual, 1.0)
}

func TestStoreIterate(t *testing.T) {
	s := New(DefaultOptions())
	for i := 0; i < 5; i++ {
		_, err := s.InsertPoint(r3.Vector{X: float64(i), Z: float64(i * 10)})
		test.That(t, err, test.ShouldBeNil)
	}
	var seen []int
	s.Iterate(func(i int, p r3.Vector, depth float64) bool {
		test.That(t, depth, test.ShouldEqual, p.Z)
		seen = append(seen, i)
		return i < 2
	})
	test.That(t, seen, test.ShouldResemble, []int{0, 1, 2})
}

func TestEllipse(t *testing.T) {
	s := New(DefaultOptions())
	test.That(t, Ellipse(s), test.ShouldBeNil)
	test.That(t, s.Len(), test.ShouldEqual, 40*126)
	checkParallel(t, s)

	first := s.Point(0)
	test.That(t, first.X, test.ShouldAlmostEqual, 0.5)
	test.That(t, first.Y, test.ShouldAlmostEqual, 0.0)
	test.That(t, first.Z, test.ShouldAlmostEqual, -1.0)

	b, ok := s.Bounds()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, b.Min.Z, test.ShouldAlmostEqual, -1.0)
	test.That(t, b.Max.Z, test.ShouldBeLessThan, 1.0)
	test.That(t, b.Max.X, test.ShouldBeLessThanOrEqualTo, 0.5)

	small := New(Options{MaxNumPoints: 10})
	err := Ellipse(small)
	test.That(t, errors.Is(err, ErrCapacityExceeded), test.ShouldBeTrue)
	test.That(t, small.Len(), test.ShouldEqual, 10)
}

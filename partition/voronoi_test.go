package partition_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessera/partition"
	"github.com/katalvlaran/tessera/point"
)

var box = r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 6, Y: 6})

// scatter draws n jittered sites in box; jitter keeps the sweep away from
// cocircular degeneracies.
func scatter(seed int64, cols, rows int) []point.Point {
	rng := rand.New(rand.NewSource(seed))
	w, h := 6/float64(cols), 6/float64(rows)
	out := make([]point.Point, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			out = append(out, point.Pt(
				(float64(x)+0.25+0.5*rng.Float64())*w,
				(float64(y)+0.25+0.5*rng.Float64())*h,
			))
		}
	}
	return out
}

// TestBuild_Triangle builds three sites whose cells meet at one vertex:
// every cell borders both others.
func TestBuild_Triangle(t *testing.T) {
	sites := []point.Point{point.Pt(1, 1), point.Pt(5, 1), point.Pt(3, 5)}
	p, err := partition.Build(sites, box)
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	assert.Equal(t, sites, p.Sites())
	assert.Equal(t, [][]int{{1, 2}, {0, 2}, {0, 1}}, p.Neighbors())
	assert.NotNil(t, p.Triangulation())

	var total float64
	for _, c := range p.Cells() {
		assert.GreaterOrEqual(t, len(c), 3)
		total += c.Area()
	}
	assert.InDelta(t, 36.0, total, 1e-6, "cells must tile the bounds")
}

func TestBuild_ScatterInvariants(t *testing.T) {
	sites := scatter(7, 6, 5)
	p, err := partition.Build(sites, box)
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	require.Equal(t, len(sites), p.Len())
	assert.Len(t, p.Cells(), len(sites))
	assert.Len(t, p.Neighbors(), len(sites))
	for i, s := range p.Sites() {
		assert.True(t, s.Equal(sites[i]), "site %d moved", i)
		assert.NotEmpty(t, p.Neighbors()[i], "cell %d isolated", i)
	}
}

func TestBuild_Errors(t *testing.T) {
	_, err := partition.Build(nil, box)
	assert.True(t, errors.Is(err, partition.ErrEmpty))

	_, err = partition.Build([]point.Point{point.Pt(1, 1), point.Pt(7, 1)}, box)
	assert.True(t, errors.Is(err, partition.ErrSiteOutOfBounds))

	_, err = partition.Build([]point.Point{point.Pt(0.3, 1), point.Pt(0.1+0.2, 1)}, box)
	assert.True(t, errors.Is(err, partition.ErrDuplicateSite))

	_, err = partition.Build([]point.Point{point.Pt(1, 1), point.Pt(math.NaN(), 1)}, box)
	assert.True(t, errors.Is(err, partition.ErrNonFiniteSite))
}

func TestRelax_MovesTowardCentroids(t *testing.T) {
	sites := scatter(11, 4, 4)
	p, err := partition.Relax(sites, box, 3)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
	require.Equal(t, len(sites), p.Len())

	for i, s := range p.Sites() {
		assert.True(t, box.ContainsPoint(s.R2()), "site %d left the bounds", i)
	}

	// Zero iterations is a plain Build.
	q, err := partition.Relax(sites, box, 0)
	require.NoError(t, err)
	assert.Equal(t, sites, q.Sites())
}

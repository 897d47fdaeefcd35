package heightmap

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/tessera/partition"
	"github.com/katalvlaran/tessera/point"
)

// polygonIndex maps a cell polygon back to its index.
// Polygons are hashed over their quantized vertex keys; a bucket holds every
// index whose polygon hashed there, and lookups confirm by key comparison.
type polygonIndex struct {
	cells   []partition.Polygon
	buckets map[uint64][]int
}

func newPolygonIndex(cells []partition.Polygon) polygonIndex {
	idx := polygonIndex{
		cells:   cells,
		buckets: make(map[uint64][]int, len(cells)),
	}
	for i, c := range cells {
		h := hashPolygon(c)
		idx.buckets[h] = append(idx.buckets[h], i)
	}
	return idx
}

// lookup returns the lowest index whose polygon matches pg vertex by vertex.
func (idx polygonIndex) lookup(pg partition.Polygon) (int, bool) {
	for _, i := range idx.buckets[hashPolygon(pg)] {
		if samePolygon(idx.cells[i], pg) {
			return i, true
		}
	}
	return 0, false
}

func hashPolygon(pg partition.Polygon) uint64 {
	d := xxhash.New()
	var buf [16]byte
	for _, v := range pg {
		k := v.Key()
		binary.LittleEndian.PutUint64(buf[:8], keyBits(k.X))
		binary.LittleEndian.PutUint64(buf[8:], keyBits(k.Y))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// keyBits folds -0 into +0 so the hash agrees with point.Equal.
func keyBits(v float64) uint64 {
	return math.Float64bits(v + 0)
}

func samePolygon(a, b partition.Polygon) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// newSiteIndex maps each site key to the first index holding it.
func newSiteIndex(sites []point.Point) map[point.Key]int {
	m := make(map[point.Key]int, len(sites))
	for i, s := range sites {
		k := s.Key()
		if _, ok := m[k]; !ok {
			m[k] = i
		}
	}
	return m
}

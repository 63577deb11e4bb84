package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Pairs computes an order-sensitive xxHash64 over the IEEE-754 bits of
// each (x, y) pair. Equal inputs hash equally regardless of how the values
// were spelled in the source text.
func Pairs(n int, at func(i int) (x, y float64)) uint64 {
	d := xxhash.New()
	var buf [16]byte
	for i := 0; i < n; i++ {
		x, y := at(i)
		binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(x))
		binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(y))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

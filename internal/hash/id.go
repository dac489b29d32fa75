package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Floats computes a single xxHash64 over the IEEE-754 bits of every value in
// every series. Series lengths are mixed into the digest, so moving a value
// from one series to the next changes the result.
func Floats(series ...[]float64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, s := range series {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
		_, _ = d.Write(buf[:])
		for _, v := range s {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}

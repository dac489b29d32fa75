package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a zeroed float64 slice of the given length.
//
// The caller must call the returned cleanup function, typically with defer,
// once the slice is no longer referenced.
//
// Example:
//
//	residuals, cleanup := pool.GetFloat64Slice(n)
//	defer cleanup()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := *ptr

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
		clear(slice)
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}

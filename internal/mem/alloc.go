package mem

import (
	"unsafe"

	"github.com/hupe1980/unitvec/vec"
)

// CacheLine is the alignment of slices returned by Aligned.
const CacheLine = 64

// Aligned returns a slice of length 0 and capacity n whose first element
// starts at an address divisible by CacheLine. It returns nil for n <= 0.
//
// Appending past n reallocates and loses the alignment.
func Aligned[T vec.Number](n int) []T {
	if n <= 0 {
		return nil
	}

	var zero T
	size := int(unsafe.Sizeof(zero))

	// Over-allocate by one cache line worth of elements.
	buf := make([]T, n+CacheLine/size)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := int((CacheLine-addr%CacheLine)%CacheLine) / size

	return buf[offset:offset:offset+n]
}

// IsAligned reports whether the first element of s starts on a cache line.
func IsAligned[T vec.Number](s []T) bool {
	if cap(s) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))%CacheLine == 0 //nolint:gosec // address inspection only
}

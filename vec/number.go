package vec

// Number is the element constraint for arithmetic containers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is the element constraint for operations that need a square root.
type Float interface {
	~float32 | ~float64
}

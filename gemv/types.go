package gemv

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Element is a constraint for the types a benchmark can be instantiated
// with. Generated values are below MaxValue, so 8-bit types are allowed
// but only useful for tiny matrices.
type Element interface {
	Floats | Integers
}

// isFloat reports whether T is a floating-point type.
func isFloat[T Element]() bool {
	var half T = 1
	half /= 2
	return half != 0
}

package endianrw

import (
	"math"
	"unsafe"
)

// Primitive is the set of fixed-width numeric types this package converts.
// Every bit pattern of the matching width is a valid value for each of these
// types, so conversion in either direction is total and never fails.
type Primitive interface {
	uint8 | uint16 | uint32 | uint64 |
		int8 | int16 | int32 | int64 |
		float32 | float64
}

// Size returns the number of bytes the encoded form of T occupies: 1, 2, 4 or
// 8. The width is a property of the type alone; it is the same under every
// byte order and never varies at run time.
func Size[T Primitive]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// FromBytes decodes the first Size[T]() bytes of buf as a T laid out in the
// byte order B. It panics if buf is shorter than that.
//
// Floats are reassembled as the unsigned integer of the same width and then
// reinterpreted bit for bit (math.Float32frombits / math.Float64frombits),
// never converted numerically.
func FromBytes[B ByteOrder, T Primitive](buf []byte) T {
	var bo B
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = buf[0]
	case *uint16:
		*p = bo.Uint16(buf)
	case *uint32:
		*p = bo.Uint32(buf)
	case *uint64:
		*p = bo.Uint64(buf)
	case *int8:
		*p = int8(buf[0])
	case *int16:
		*p = int16(bo.Uint16(buf))
	case *int32:
		*p = int32(bo.Uint32(buf))
	case *int64:
		*p = int64(bo.Uint64(buf))
	case *float32:
		*p = math.Float32frombits(bo.Uint32(buf))
	case *float64:
		*p = math.Float64frombits(bo.Uint64(buf))
	}
	return v
}

// ToBytes encodes v into the first Size[T]() bytes of buf using the byte
// order B. It panics if buf is shorter than that. ToBytes is the exact
// inverse of FromBytes: FromBytes(ToBytes(v)) yields v for every value,
// including every NaN bit pattern.
func ToBytes[B ByteOrder, T Primitive](buf []byte, v T) {
	var bo B
	switch t := any(v).(type) {
	case uint8:
		buf[0] = t
	case uint16:
		bo.PutUint16(buf, t)
	case uint32:
		bo.PutUint32(buf, t)
	case uint64:
		bo.PutUint64(buf, t)
	case int8:
		buf[0] = byte(t)
	case int16:
		bo.PutUint16(buf, uint16(t))
	case int32:
		bo.PutUint32(buf, uint32(t))
	case int64:
		bo.PutUint64(buf, uint64(t))
	case float32:
		bo.PutUint32(buf, math.Float32bits(t))
	case float64:
		bo.PutUint64(buf, math.Float64bits(t))
	}
}

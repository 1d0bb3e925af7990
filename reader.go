package endianrw

import (
	"io"
)

// ReadAs reads Size[T]() bytes from r and decodes them as a T laid out in the
// byte order B.
//
// Exactly one Read call is issued against r; ReadAs never retries a partial
// read. If the source returns an error it is propagated unchanged. If the
// source returns fewer bytes than the value's width with a nil error, ReadAs
// returns ErrShortRead and the partial bytes are discarded.
func ReadAs[B ByteOrder, T Primitive](r io.Reader) (T, error) {
	var zero T
	var buf [8]byte
	b := buf[:Size[T]()]
	n, err := r.Read(b)
	if n < len(b) {
		if err != nil {
			return zero, err
		}
		return zero, ErrShortRead
	}
	return FromBytes[B, T](b), nil
}

// ByteCounter is the interface implemented by streams that keep count of the
// bytes that have passed through them.
type ByteCounter interface {
	ReadBytes() uint64
}

// Reader wraps an io.Reader and decodes primitive values from it in the byte
// order B, keeping count of the bytes consumed. It binds the byte order once
// for the whole stream, so protocol code reading a header doesn't repeat type
// arguments at every field.
type Reader[B ByteOrder] struct {
	reader io.Reader
	n      uint64
}

func NewReader[B ByteOrder](reader io.Reader) (*Reader[B], error) {
	if reader == nil {
		return nil, ErrNilReader
	}
	return &Reader[B]{reader: reader}, nil
}

// Read reads up to len(p) bytes from the underlying io.Reader into p.
// It returns the number of bytes read and any error the underlying
// io.Reader returned.
func (r *Reader[B]) Read(p []byte) (n int, err error) {
	n, err = r.reader.Read(p)
	r.n += uint64(n)
	return n, err
}

// ReadBytes returns the number of bytes read so far from the underlying io.Reader since the instantiation of the Reader.
func (r *Reader[B]) ReadBytes() uint64 {
	return r.n
}

func (r *Reader[B]) Uint8() (uint8, error)     { return ReadAs[B, uint8](r) }
func (r *Reader[B]) Uint16() (uint16, error)   { return ReadAs[B, uint16](r) }
func (r *Reader[B]) Uint32() (uint32, error)   { return ReadAs[B, uint32](r) }
func (r *Reader[B]) Uint64() (uint64, error)   { return ReadAs[B, uint64](r) }
func (r *Reader[B]) Int8() (int8, error)       { return ReadAs[B, int8](r) }
func (r *Reader[B]) Int16() (int16, error)     { return ReadAs[B, int16](r) }
func (r *Reader[B]) Int32() (int32, error)     { return ReadAs[B, int32](r) }
func (r *Reader[B]) Int64() (int64, error)     { return ReadAs[B, int64](r) }
func (r *Reader[B]) Float32() (float32, error) { return ReadAs[B, float32](r) }
func (r *Reader[B]) Float64() (float64, error) { return ReadAs[B, float64](r) }

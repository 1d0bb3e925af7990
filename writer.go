package endianrw

import (
	"io"
)

// WriteAs encodes v in the byte order B and writes its Size[T]() bytes to w.
//
// Exactly one Write call is issued against w; WriteAs never retries a partial
// write. If the sink returns an error it is propagated unchanged. If the sink
// accepts fewer bytes than the value's width with a nil error, WriteAs
// returns ErrShortWrite.
func WriteAs[B ByteOrder, T Primitive](w io.Writer, v T) error {
	var buf [8]byte
	b := buf[:Size[T]()]
	ToBytes[B](b, v)
	n, err := w.Write(b)
	if err != nil {
		return err
	}
	if n < len(b) {
		return ErrShortWrite
	}
	return nil
}

// Flusher is the interface implemented by sinks that buffer output and can be
// told to push it to the underlying stream.
type Flusher interface {
	Flush() error
}

// Writer wraps an io.Writer and encodes primitive values to it in the byte
// order B, keeping count of the bytes written.
type Writer[B ByteOrder] struct {
	writer io.Writer
	n      uint64
}

func NewWriter[B ByteOrder](writer io.Writer) (*Writer[B], error) {
	if writer == nil {
		return nil, ErrNilWriter
	}
	return &Writer[B]{writer: writer}, nil
}

// Write writes the contents of p to the underlying io.Writer.
// It returns the number of bytes written and any error the underlying
// io.Writer returned.
func (w *Writer[B]) Write(p []byte) (n int, err error) {
	n, err = w.writer.Write(p)
	w.n += uint64(n)
	return n, err
}

// WrittenBytes returns the number of bytes written so far to the underlying io.Writer since the instantiation of the Writer.
func (w *Writer[B]) WrittenBytes() uint64 {
	return w.n
}

// Flush pushes any buffered data to the underlying stream, if the underlying
// io.Writer buffers. It is a no-op for sinks that don't implement Flusher.
func (w *Writer[B]) Flush() error {
	if f, ok := w.writer.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

func (w *Writer[B]) Uint8(v uint8) error     { return WriteAs[B](w, v) }
func (w *Writer[B]) Uint16(v uint16) error   { return WriteAs[B](w, v) }
func (w *Writer[B]) Uint32(v uint32) error   { return WriteAs[B](w, v) }
func (w *Writer[B]) Uint64(v uint64) error   { return WriteAs[B](w, v) }
func (w *Writer[B]) Int8(v int8) error       { return WriteAs[B](w, v) }
func (w *Writer[B]) Int16(v int16) error     { return WriteAs[B](w, v) }
func (w *Writer[B]) Int32(v int32) error     { return WriteAs[B](w, v) }
func (w *Writer[B]) Int64(v int64) error     { return WriteAs[B](w, v) }
func (w *Writer[B]) Float32(v float32) error { return WriteAs[B](w, v) }
func (w *Writer[B]) Float64(v float64) error { return WriteAs[B](w, v) }

package endianrw

import "errors"

// ErrShortRead is returned when the source delivered fewer bytes than the
// value's width. The partial bytes are discarded, never decoded.
var ErrShortRead = errors.New("could not read all bytes")

// ErrShortWrite is returned when the sink accepted fewer bytes than the
// value's width without reporting an error of its own.
var ErrShortWrite = errors.New("could not write all bytes")

var ErrNilReader = errors.New("Expected io.Reader to be non-nil, but got a nil value")
var ErrNilWriter = errors.New("Expected io.Writer to be non-nil, but got a nil value")

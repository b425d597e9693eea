package store

import "errors"

// ErrSerializationCorruption indicates an unexpected tag (at top level or
// inside a Block record) or a negative string length. A record that ends
// before its fields are fully present is not reported with this error: the
// decoders return the underlying io error (io.EOF or io.ErrUnexpectedEOF).
var ErrSerializationCorruption = errors.New("store: serialization corruption")

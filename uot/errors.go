package uot

import "errors"

// MaxPayload is the largest payload representable by the 2-byte length
// prefix.
const MaxPayload = 65535

// ErrFrameTooLarge is returned when a caller attempts to write a payload
// longer than MaxPayload. Writing an oversized frame is a programming
// fault, not a transport error.
var ErrFrameTooLarge = errors.New("uot: frame payload exceeds 65535 bytes")

package ewah

import "errors"

// ErrInvalidBitSet is returned when there is an attempt to set a bit
// before the last written bit. Bits must be set in non-decreasing order.
var ErrInvalidBitSet = errors.New("ewah: attempted to set a bit before the last written bit")

// ErrBitmapTooLarge is returned by Write when the bitmap's bit size or
// word count does not fit the 32-bit header fields of the wire format.
var ErrBitmapTooLarge = errors.New("ewah: bitmap exceeds the 32-bit serialization limit")

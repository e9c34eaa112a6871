package ewah

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// Write serializes the bitmap to w in the wire format:
//
//	bit_size   uint32
//	num_words  uint32
//	words      [num_words]uint64
//	rlw_offset uint32
//
// rlw_offset is the active marker's index within words. A fresh bitmap
// has no active marker (index -1); it is written as 0xFFFFFFFF, which
// FromReader maps back to -1. Integers are written
// big-endian. Write reports ErrBitmapTooLarge if either the bitmap's
// logical bit count or its word count does not fit in 32 bits.
func (b *Bitmap) Write(w io.Writer) error {
	if b.n > math.MaxUint32 || len(b.w) > math.MaxUint32 {
		return ErrBitmapTooLarge
	}

	if err := writeUint32(w, uint32(b.n)); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(len(b.w))); err != nil {
		return err
	}
	for _, word := range b.w {
		if err := writeUint64(w, word); err != nil {
			return err
		}
	}
	return writeUint32(w, uint32(b.lastrlw))
}

// FromReader reads a bitmap previously serialized with Write.
func FromReader(r io.Reader) (*Bitmap, error) {
	n, err := readUint32(r)
	if err != nil {
		return nil, err
	}

	numWords, err := readUint32(r)
	if err != nil {
		return nil, err
	}

	var w []uint64
	if numWords > 0 {
		w = make([]uint64, numWords)
	}
	for i := range w {
		word, err := readUint64(r)
		if err != nil {
			return nil, err
		}
		w[i] = word
	}

	rlwOffset, err := readUint32(r)
	if err != nil {
		return nil, err
	}

	lastrlw := int(rlwOffset)
	if rlwOffset == math.MaxUint32 {
		lastrlw = -1
	}

	return &Bitmap{
		n:       int64(n),
		w:       w,
		lastrlw: lastrlw,
	}, nil
}

// FromBytes reads a bitmap previously serialized with Write from a byte
// slice.
func FromBytes(data []byte) (*Bitmap, error) {
	return FromReader(bytes.NewBuffer(data))
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func readUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

package ewah

import "math/bits"

// WordIterator yields the consecutive uncompressed 64-bit words of a
// Bitmap's buffer, one block at a time. It is a stateful cursor that
// borrows the bitmap: the bitmap must not be mutated while the iterator
// is in use.
type WordIterator struct {
	buf []uint64

	compressed int64  // remaining clean words in the current marker's run
	b          bool    // the clean bit of the current marker's run
	literals   uint32 // remaining literal words in the current marker's block
	litPos     int     // index, within buf, of the next literal word to emit
	pos        int     // index, within buf, of the next marker to load
}

// NewWordIterator returns a WordIterator positioned before the first word
// of b's buffer.
func NewWordIterator(b *Bitmap) *WordIterator {
	it := &WordIterator{buf: b.w}
	it.loadMarker(0)
	return it
}

func (it *WordIterator) loadMarker(idx int) {
	it.pos = idx
	if idx >= len(it.buf) {
		it.compressed = 0
		it.literals = 0
		return
	}

	m := rlw(it.buf[idx])
	it.compressed = int64(m.k())
	it.b = m.b()
	it.literals = m.l()
	it.litPos = idx + 1
	it.pos = idx + 1 + int(m.l())
}

// Next yields the next uncompressed word, or (0, false) once every word
// covered by the bitmap's buffer has been emitted.
func (it *WordIterator) Next() (uint64, bool) {
	for {
		if it.compressed > 0 {
			it.compressed--
			if it.b {
				return allones, true
			}
			return 0, true
		}

		if it.literals > 0 {
			w := it.buf[it.litPos]
			it.litPos++
			it.literals--
			return w, true
		}

		if it.pos >= len(it.buf) {
			return 0, false
		}

		it.loadMarker(it.pos)
	}
}

// BitIterator yields the absolute positions of the set bits of a Bitmap,
// strictly ascending and each exactly once. It is a stateful cursor that
// borrows the bitmap: the bitmap must not be mutated while the iterator
// is in use.
type BitIterator struct {
	buf []uint64

	pos          int    // index, within buf, of the next marker to load
	runWordsLeft int64  // remaining words in the current marker's clean run
	runBit       bool   // the clean bit of the current marker's run
	literalsLeft uint32 // remaining literal words in the current marker's block
	litPos       int    // index, within buf, of the next literal word

	haveWord    bool   // whether curWordBits holds a word currently being scanned
	curWordBits uint64 // unyielded bits of the word currently being scanned
	wordBase    int64  // absolute bit position of curWordBits's word
}

// NewBitIterator returns a BitIterator positioned before the first set
// bit of b.
func NewBitIterator(b *Bitmap) *BitIterator {
	it := &BitIterator{buf: b.w}
	return it
}

func (it *BitIterator) loadMarker(idx int) {
	it.pos = idx
	if idx >= len(it.buf) {
		it.runWordsLeft = 0
		it.literalsLeft = 0
		return
	}

	m := rlw(it.buf[idx])
	it.runWordsLeft = int64(m.k())
	it.runBit = m.b()
	it.literalsLeft = m.l()
	it.litPos = idx + 1
	it.pos = idx + 1 + int(m.l())
}

// Next yields the absolute position of the next set bit, or (0, false)
// once every set bit has been emitted.
func (it *BitIterator) Next() (int64, bool) {
	for {
		if it.haveWord {
			if it.curWordBits != 0 {
				tz := bits.TrailingZeros64(it.curWordBits)
				it.curWordBits &= it.curWordBits - 1 // clear the lowest set bit
				return it.wordBase + int64(tz), true
			}
			it.haveWord = false
			it.wordBase += 64
			continue
		}

		if it.runWordsLeft > 0 {
			if !it.runBit {
				// A clean run of 0s holds no set bits at all: skip it in
				// one step instead of spinning once per absent word.
				it.wordBase += it.runWordsLeft * 64
				it.runWordsLeft = 0
				continue
			}
			it.runWordsLeft--
			it.curWordBits = allones
			it.haveWord = true
			continue
		}

		if it.literalsLeft > 0 {
			it.curWordBits = it.buf[it.litPos]
			it.litPos++
			it.literalsLeft--
			it.haveWord = true
			continue
		}

		if it.pos >= len(it.buf) {
			return 0, false
		}

		it.loadMarker(it.pos)
	}
}

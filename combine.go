package ewah

// wordFor returns the 64-bit word a clean run of the given bit expands
// to.
func wordFor(bit bool) uint64 {
	if bit {
		return allones
	}
	return 0
}

// tailFromOther drains the remainder of other into out once its peer
// cursor has been exhausted. zero selects between copying other's
// remaining content verbatim and padding with a clean run of 0s, which
// is the correct behavior when the exhausted side's missing bits are
// implicitly zero and the combining operation is a zeroing one (AND's
// tails are always zero; AND-NOT's left tail is zero).
func tailFromOther(out *Bitmap, other *runCursor, zero bool) {
	for other.hasMore() {
		if rl := other.runLength(); rl > 0 {
			if zero {
				out.AddEmptyWords(false, rl)
			} else {
				out.AddEmptyWords(other.runningBit(), rl)
			}
			other.discardRun(rl)
			continue
		}

		lc := other.literalCount()
		if zero {
			out.AddEmptyWords(false, int64(lc))
		} else {
			out.AddDirtyWords(other.literalSlice(int(lc)), false)
		}
		other.discardLiterals(lc)
	}
}

// combine merges a and b word by word under wordOp without fully
// decompressing either operand. Clean runs are merged in O(1) per run
// whenever possible: two overlapping clean runs collapse into one, and
// a clean run merged against literals collapses to a clean run too
// whenever wordOp's result does not actually depend on the literal
// content (e.g. ANDing against a clean run of 0s is 0 regardless of
// what the other side holds). Everywhere else the merge proceeds
// literal word by literal word.
func combine(a, b *Bitmap, wordOp func(x, y uint64) uint64) *Bitmap {
	out := New()
	ca := newRunCursor(a.w)
	cb := newRunCursor(b.w)

	// Tail behavior is derived from wordOp itself: once one side runs
	// out, its remaining bits are implicitly 0, so the tail of the
	// other side is wordOp(0, x) or wordOp(x, 0) applied pointwise.
	// For every bitwise op these reduce to either the identity
	// function or the constant-0 function.
	leftZero := wordOp(0, allones) == 0
	rightZero := wordOp(allones, 0) == 0

	for ca.hasMore() && cb.hasMore() {
		aRun := ca.runLength()
		bRun := cb.runLength()

		switch {
		case aRun > 0 && bRun > 0:
			step := aRun
			if bRun < step {
				step = bRun
			}
			rw := wordOp(wordFor(ca.runningBit()), wordFor(cb.runningBit()))
			out.AddEmptyWords(rw == allones, step)
			ca.discardRun(step)
			cb.discardRun(step)

		case aRun > 0:
			aw := wordFor(ca.runningBit())
			bLit := cb.literalCount()

			if wordOp(aw, 0) == wordOp(aw, allones) {
				step := aRun
				if int64(bLit) < step {
					step = int64(bLit)
				}
				rw := wordOp(aw, 0)
				out.AddEmptyWords(rw == allones, step)
				ca.discardRun(step)
				cb.discardLiterals(uint32(step))
				continue
			}

			n := bLit
			if int64(n) > aRun {
				n = uint32(aRun)
			}
			words := cb.literalSlice(int(n))
			res := make([]uint64, n)
			for i := range res {
				res[i] = wordOp(aw, words[i])
			}
			out.AddDirtyWords(res, false)
			ca.discardRun(int64(n))
			cb.discardLiterals(n)

		case bRun > 0:
			bw := wordFor(cb.runningBit())
			aLit := ca.literalCount()

			if wordOp(0, bw) == wordOp(allones, bw) {
				step := bRun
				if int64(aLit) < step {
					step = int64(aLit)
				}
				rw := wordOp(0, bw)
				out.AddEmptyWords(rw == allones, step)
				cb.discardRun(step)
				ca.discardLiterals(uint32(step))
				continue
			}

			n := aLit
			if int64(n) > bRun {
				n = uint32(bRun)
			}
			words := ca.literalSlice(int(n))
			res := make([]uint64, n)
			for i := range res {
				res[i] = wordOp(words[i], bw)
			}
			out.AddDirtyWords(res, false)
			cb.discardRun(int64(n))
			ca.discardLiterals(n)

		default:
			aLit := ca.literalCount()
			bLit := cb.literalCount()
			n := aLit
			if bLit < n {
				n = bLit
			}
			aWords := ca.literalSlice(int(n))
			bWords := cb.literalSlice(int(n))
			res := make([]uint64, n)
			for i := range res {
				res[i] = wordOp(aWords[i], bWords[i])
			}
			out.AddDirtyWords(res, false)
			ca.discardLiterals(n)
			cb.discardLiterals(n)
		}
	}

	if ca.hasMore() {
		tailFromOther(out, ca, rightZero)
	} else if cb.hasMore() {
		tailFromOther(out, cb, leftZero)
	}

	if a.n > b.n {
		out.n = a.n
	} else {
		out.n = b.n
	}
	maskTrailingBits(out)

	return out
}

// Or returns a new bitmap holding the bitwise OR of a and b. The
// shorter operand is treated as though it were padded with 0s out to
// the length of the longer one.
func Or(a, b *Bitmap) *Bitmap {
	return combine(a, b, func(x, y uint64) uint64 { return x | y })
}

// And returns a new bitmap holding the bitwise AND of a and b.
func And(a, b *Bitmap) *Bitmap {
	return combine(a, b, func(x, y uint64) uint64 { return x & y })
}

// Xor returns a new bitmap holding the bitwise XOR of a and b.
func Xor(a, b *Bitmap) *Bitmap {
	return combine(a, b, func(x, y uint64) uint64 { return x ^ y })
}

// AndNot returns a new bitmap holding the bits set in a but not in b
// (a &^ b).
func AndNot(a, b *Bitmap) *Bitmap {
	return combine(a, b, func(x, y uint64) uint64 { return x &^ y })
}

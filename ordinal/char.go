package ordinal

import (
	"strconv"
	"unicode"
)

// Char represents a Unicode code point. Unlike rune it excludes the surrogate block from its
// domain, so stepping and distance calculations jump from the code point right before the block
// to the code point right after it.
type Char uint32

// MaxChar is the highest code point of the Char domain.
const MaxChar Char = unicode.MaxRune

const (
	// surrogateMin is the first code point of the surrogate block.
	surrogateMin = 0xD800

	// surrogateMax is the first code point after the surrogate block.
	surrogateMax = 0xE000

	// surrogateCount is the number of code points the surrogate block occupies.
	surrogateCount = surrogateMax - surrogateMin
)

// String returns a human-readable version of the Char.
func (c Char) String() string {
	return strconv.QuoteRune(rune(c))
}

// forwardChar steps a Char forward, skipping over the surrogate block. Results beyond MaxChar are
// not meaningful code points.
func forwardChar(c Char, count uint64) Char {
	result := uint64(c) + count
	if uint64(c) < surrogateMin && result >= surrogateMin {
		result += surrogateCount
	}

	return Char(result)
}

// forwardCheckedChar steps a Char forward, skipping over the surrogate block and reporting false
// if the result would exceed MaxChar.
func forwardCheckedChar(c Char, count uint64) (Char, bool) {
	if count > uint64(MaxChar) {
		return 0, false
	}

	result := uint64(c) + count
	if uint64(c) < surrogateMin && result >= surrogateMin {
		result += surrogateCount
	}
	if result > uint64(MaxChar) {
		return 0, false
	}

	return Char(result), true
}

// backwardChar steps a Char backward, skipping over the surrogate block. Results of stepping
// below zero are not meaningful code points.
func backwardChar(c Char, count uint64) Char {
	result := uint64(c) - count
	if uint64(c) >= surrogateMax && result < surrogateMax {
		result -= surrogateCount
	}

	return Char(result)
}

// backwardCheckedChar steps a Char backward, skipping over the surrogate block and reporting
// false if the result would drop below zero.
func backwardCheckedChar(c Char, count uint64) (Char, bool) {
	if count > uint64(c) {
		return 0, false
	}

	result := uint64(c) - count
	if uint64(c) >= surrogateMax && result < surrogateMax {
		if result < surrogateCount {
			return 0, false
		}
		result -= surrogateCount
	}

	return Char(result), true
}

package numconv

import "math"

const radixCharset = "0123456789abcdefghijklmnopqrstuvwxyz"

// bufferSize mirrors V8's DoubleToRadixCString buffer: big enough for the
// longest possible digit run of a binary64 value in any supported radix.
const bufferSize = 2200

// ToRadixString renders value in the given non-decimal radix (2-36),
// following V8's DoubleToRadixCString algorithm: a dual-ended byte buffer
// filled from the middle outward, fractional digits generated with
// banker's-rounding carry propagation bounded by a shrinking precision
// envelope (delta), then the integer part divided down in the chosen radix.
// Radix 10 is handled separately by ToDecimalString, since ECMAScript's
// Number::toString defines its own algorithm for that case.
func ToRadixString(value float64, radix int) string {
	buffer := make([]byte, bufferSize)
	integerCursor := bufferSize / 2
	fractionCursor := integerCursor

	negative := value < 0
	if negative {
		value = -value
	}

	radixF := float64(radix)
	integer := math.Floor(value)
	fraction := value - integer
	delta := math.Max(nextAfterZero(), 0.5*(math.Nextafter(value, math.Inf(1))-value))

	if fraction >= delta {
		buffer[fractionCursor] = '.'
		fractionCursor++

		for {
			fraction *= radixF
			delta *= radixF

			digit := byte(fraction)
			buffer[fractionCursor] = radixCharset[digit]
			fractionCursor++
			fraction -= float64(digit)

			if fraction > 0.5 || (fraction == 0.5 && digit&1 != 0) {
				if fraction+delta > 1.0 {
					for {
						fractionCursor--
						if fractionCursor == bufferSize/2 {
							integer++
							break
						}

						c := buffer[fractionCursor]
						var d byte
						if c > '9' {
							d = c - 'a' + 10
						} else {
							d = c - '0'
						}

						if int(d)+1 < radix {
							buffer[fractionCursor] = radixCharset[d+1]
							fractionCursor++
							break
						}
					}
					break
				}
			}

			if fraction < delta {
				break
			}
		}
	}

	for exponentOf(integer/radixF) > 0 {
		integer /= radixF
		integerCursor--
		buffer[integerCursor] = '0'
	}

	for {
		remainder := math.Mod(integer, radixF)
		integerCursor--
		buffer[integerCursor] = radixCharset[int(remainder)]
		integer = (integer - remainder) / radixF
		if integer <= 0 {
			break
		}
	}

	if negative {
		integerCursor--
		buffer[integerCursor] = '-'
	}

	return string(buffer[integerCursor:fractionCursor])
}

// nextAfterZero is the smallest positive float64, used as the floor for the
// rounding-precision envelope exactly as V8's 0.0.next_up() is.
func nextAfterZero() float64 {
	return math.Nextafter(0, 1)
}

// exponentOf extracts the binary exponent of v the way V8's Double::Exponent
// reads it out of the IEEE-754 bit pattern: the exponent that goes with v's
// 53-bit integer significand (biased exponent minus 1023+52). It is positive
// only while v >= 2^53, i.e. while the integer part still has low-order
// digits below binary64 precision, which the caller writes out as '0'.
func exponentOf(v float64) int {
	bits := math.Float64bits(v)
	return int((bits>>52)&0x7FF) - 1075
}

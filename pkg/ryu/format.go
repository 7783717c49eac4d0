package ryu

const smallsString = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// appendDecimal renders mantissa * 10^exp the way strconv's shortest 'g'
// format does: fixed notation while the decimal exponent stays in [-4, 6),
// scientific notation with a sign and at least two exponent digits
// otherwise.
func appendDecimal(buf []byte, sign bool, mantissa uint64, exp int32) []byte {
	// The conversion cores emit no trailing zero digits, but the notation
	// decision below depends on it, so normalize anyway.
	for mantissa%10 == 0 {
		mantissa /= 10
		exp++
	}

	// Write the digits of the mantissa into the tail of a scratch buffer,
	// two at a time.
	var digits [17]byte
	pos := len(digits)
	v := mantissa
	for v >= 100 {
		d2 := v % 100
		v /= 100
		pos -= 2
		copy(digits[pos:], smallsString[2*d2:2*d2+2])
	}
	if v >= 10 {
		pos -= 2
		copy(digits[pos:], smallsString[2*v:2*v+2])
	} else {
		pos--
		digits[pos] = byte(v) + '0'
	}
	d := digits[pos:]
	n := int32(len(d))
	dp := n + exp // value = 0.digits * 10^dp

	if sign {
		buf = append(buf, '-')
	}

	if e := dp - 1; e < -4 || e >= 6 {
		// d.ddde±dd
		buf = append(buf, d[0])
		if n > 1 {
			buf = append(buf, '.')
			buf = append(buf, d[1:]...)
		}
		buf = append(buf, 'e')
		if e < 0 {
			buf = append(buf, '-')
			e = -e
		} else {
			buf = append(buf, '+')
		}
		switch {
		case e < 10:
			buf = append(buf, '0', byte(e)+'0')
		case e < 100:
			buf = append(buf, byte(e/10)+'0', byte(e%10)+'0')
		default:
			buf = append(buf, byte(e/100)+'0', byte(e/10)%10+'0', byte(e%10)+'0')
		}
		return buf
	}

	switch {
	case dp <= 0:
		// 0.00ddd
		buf = append(buf, '0', '.')
		for i := dp; i < 0; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, d...)
	case dp >= n:
		// ddd00
		buf = append(buf, d...)
		for i := n; i < dp; i++ {
			buf = append(buf, '0')
		}
	default:
		// dd.ddd
		buf = append(buf, d[:dp]...)
		buf = append(buf, '.')
		buf = append(buf, d[dp:]...)
	}
	return buf
}

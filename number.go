package cmdl

// isNumber reports whether arg reads as a signed floating point number
// under a permissive leading scan: optional sign, digits, optional
// fraction and exponent. The scan deliberately tolerates trailing
// garbage after a complete mantissa ("123abc" is a number), the way a
// streaming numeric read would. An exponent marker with no digits
// behind it poisons the token ("1e" is not a number).
func isNumber(arg string) bool {
	i := 0
	if i < len(arg) && (arg[i] == '+' || arg[i] == '-') {
		i++
	}
	digits := 0
	for i < len(arg) && isDigit(arg[i]) {
		i++
		digits++
	}
	if i < len(arg) && arg[i] == '.' {
		i++
		for i < len(arg) && isDigit(arg[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(arg) && (arg[i] == 'e' || arg[i] == 'E') {
		i++
		if i < len(arg) && (arg[i] == '+' || arg[i] == '-') {
			i++
		}
		expDigits := 0
		for i < len(arg) && isDigit(arg[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

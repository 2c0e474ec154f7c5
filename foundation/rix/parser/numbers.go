// File: numbers.go
// Title: Numeric Literal Matching
// Description: Longest-match recognition of every RiX number format. Each
//              scanner returns the end offset of the match or -1.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial number formats

package parser

import "strings"

// prefix letter to base for 0<letter> literals
var basePrefixes = map[byte]int{
	'b': 2,
	't': 3,
	'q': 4,
	'o': 8,
	'd': 10,
	'x': 16,
	'v': 32,
}

const plusMinus = "±"

// scanNumber matches an unsigned number at i: a based or plain literal,
// optionally followed by :B to form an interval
func scanNumber(s string, i int) int {
	end := scanBased(s, i)
	if end < 0 {
		end = scanScientific(s, i)
	}
	if end < 0 {
		return -1
	}

	if end < len(s) && s[end] == ':' {
		j := end + 1
		if j < len(s) && s[j] == '-' {
			j++
		}
		upper := scanBased(s, j)
		if upper < 0 {
			upper = scanScientific(s, j)
		}
		if upper > 0 {
			return upper
		}
	}
	return end
}

// scanBased matches 0x1F, 0b1.01, 0z[36]ZZ/2 and the like
func scanBased(s string, i int) int {
	if i+1 >= len(s) || s[i] != '0' {
		return -1
	}

	var base, j int
	if s[i+1] == 'z' {
		j = i + 2
		if j >= len(s) || s[j] != '[' {
			return -1
		}
		k := digitRun(s, j+1)
		if k == j+1 || k >= len(s) || s[k] != ']' {
			return -1
		}
		base = atoiSmall(s[j+1 : k])
		if base < 2 || base > 62 {
			return -1
		}
		j = k + 1
	} else {
		b, ok := basePrefixes[s[i+1]]
		if !ok {
			return -1
		}
		base, j = b, i+2
	}

	k := baseRun(s, j, base)
	if k == j {
		return -1
	}
	if k < len(s) && (s[k] == '.' || s[k] == '/') {
		if m := baseRun(s, k+1, base); m > k+1 {
			return m
		}
	}
	return k
}

// scanScientific matches a plain literal with an optional E exponent
func scanScientific(s string, i int) int {
	m := scanPlain(s, i)
	if m < 0 {
		return -1
	}
	if m < len(s) && s[m] == 'E' {
		j := m + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if d := digitRun(s, j); d > j {
			return d
		}
	}
	return m
}

// scanPlain tries every plain format and keeps the longest match. The
// candidates are ordered most specific first so ties go to the richer
// format.
func scanPlain(s string, i int) int {
	best := -1
	for _, match := range []func(string, int) int{
		scanMixed,
		scanRepeating,
		scanWithError,
		scanRational,
		scanDecimal,
		scanInteger,
	} {
		if end := match(s, i); end > best {
			best = end
		}
	}
	return best
}

// scanMixed matches a..b/c
func scanMixed(s string, i int) int {
	a := digitRun(s, i)
	if a == i || !strings.HasPrefix(s[a:], "..") {
		return -1
	}
	b := digitRun(s, a+2)
	if b == a+2 || b >= len(s) || s[b] != '/' {
		return -1
	}
	c := digitRun(s, b+1)
	if c == b+1 {
		return -1
	}
	return c
}

// scanRepeating matches a.b#c, .b#c and a#c
func scanRepeating(s string, i int) int {
	a := digitRun(s, i)
	j := a
	if a < len(s) && s[a] == '.' {
		j = digitRun(s, a+1)
	}
	if j == i || j >= len(s) || s[j] != '#' {
		return -1
	}
	if j == a+1 && a == i {
		return -1 // lone "."
	}
	r := digitRun(s, j+1)
	if r == j+1 {
		return -1
	}
	return r
}

// scanWithError matches a.b[+-c] and a.b[±c]
func scanWithError(s string, i int) int {
	e := scanDecimal(s, i)
	if e < 0 {
		e = scanInteger(s, i)
	}
	if e < 0 || e >= len(s) || s[e] != '[' {
		return -1
	}

	j := e + 1
	switch {
	case strings.HasPrefix(s[j:], "+-"):
		j += 2
	case strings.HasPrefix(s[j:], plusMinus):
		j += len(plusMinus)
	default:
		return -1
	}

	c := scanDecimal(s, j)
	if c < 0 {
		c = scanInteger(s, j)
	}
	if c < 0 || c >= len(s) || s[c] != ']' {
		return -1
	}
	return c + 1
}

// scanRational matches a/b
func scanRational(s string, i int) int {
	a := digitRun(s, i)
	if a == i || a >= len(s) || s[a] != '/' {
		return -1
	}
	b := digitRun(s, a+1)
	if b == a+1 {
		return -1
	}
	return b
}

// scanDecimal matches a.b and .b
func scanDecimal(s string, i int) int {
	a := digitRun(s, i)
	if a >= len(s) || s[a] != '.' {
		return -1
	}
	f := digitRun(s, a+1)
	if f == a+1 {
		return -1
	}
	return f
}

func scanInteger(s string, i int) int {
	if d := digitRun(s, i); d > i {
		return d
	}
	return -1
}

func digitRun(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

func baseRun(s string, i, base int) int {
	for i < len(s) {
		v := digitValue(s[i], base)
		if v < 0 || v >= base {
			break
		}
		i++
	}
	return i
}

// digitValue maps 0-9, a-z, A-Z to digit values. Up to base 36 letters are
// case-insensitive; above it upper case continues from 36.
func digitValue(c byte, base int) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		if base <= 36 {
			return int(c-'A') + 10
		}
		return int(c-'A') + 36
	}
	return -1
}

func atoiSmall(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
		if n > 1000 {
			return n
		}
	}
	return n
}

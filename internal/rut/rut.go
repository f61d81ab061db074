// Package rut handles Chilean tax ids (RUT): a numeric body plus a modulo-11 check digit.
package rut

import (
	"regexp"
	"strings"
)

var (
	strip  = regexp.MustCompile(`[^0-9kK]`)
	shaped = regexp.MustCompile(`^[0-9]+[0-9K]$`)
)

// Sanitize drops dots, dashes and spaces and upper-cases the check digit.
func Sanitize(value string) string {
	return strings.ToUpper(strip.ReplaceAllString(value, ""))
}

// Valid reports whether value, once sanitized, carries the right check digit.
func Valid(value string) bool {
	r := Sanitize(value)
	if !shaped.MatchString(r) {
		return false
	}
	body, dv := r[:len(r)-1], r[len(r)-1]
	return CheckDigit(body) == dv
}

// CheckDigit computes the verifier for a numeric body: 11 maps to '0', 10 to 'K'.
func CheckDigit(body string) byte {
	sum, multiplier := 0, 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * multiplier
		if multiplier == 7 {
			multiplier = 2
		} else {
			multiplier++
		}
	}
	switch expected := 11 - sum%11; expected {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + expected)
	}
}

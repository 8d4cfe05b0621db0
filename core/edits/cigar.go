// core/edits/cigar.go
package edits

import (
	"strconv"
	"strings"
)

// Compress renders ops in run-length CIGAR form, e.g. "MDMMM" → "1M1D3M".
// It is a display form only; the edit sequence itself stays one letter per op.
func Compress(ops string) (string, error) {
	if _, err := CountOps(ops); err != nil {
		return "", err
	}
	var sb strings.Builder
	for i := 0; i < len(ops); {
		j := i + 1
		for j < len(ops) && ops[j] == ops[i] {
			j++
		}
		sb.WriteString(strconv.Itoa(j - i))
		sb.WriteByte(ops[i])
		i = j
	}
	return sb.String(), nil
}

// Expand turns a run-length CIGAR string over M, I and D back into one
// letter per op. "3M2I" → "MMMII".
func Expand(cigar string) (string, error) {
	var sb strings.Builder
	n, start := 0, -1
	for i := 0; i < len(cigar); i++ {
		c := cigar[i]
		if c >= '0' && c <= '9' {
			if start < 0 {
				start = i
			}
			n = n*10 + int(c-'0')
			if n > 1<<24 {
				return "", &CigarSyntaxError{Index: start, Reason: "run length too large"}
			}
			continue
		}
		if start < 0 {
			return "", &CigarSyntaxError{Index: i, Reason: "operation without a length"}
		}
		if n == 0 {
			return "", &CigarSyntaxError{Index: start, Reason: "zero-length run"}
		}
		if !Op(c).Valid() {
			return "", &UnknownOperationError{Index: i, Symbol: c}
		}
		sb.WriteString(strings.Repeat(string(c), n))
		n, start = 0, -1
	}
	if start >= 0 {
		return "", &CigarSyntaxError{Index: start, Reason: "trailing length without an operation"}
	}
	return sb.String(), nil
}

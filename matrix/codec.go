// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Convert between *Dense and the line-oriented point-cloud text format:
//     one row per line, elements separated by a single space, every row
//     (including the last) terminated by the line separator, no header or footer.
//   - Guarantee an exact round-trip: formatted values re-parse to identical float64s.
//
// Determinism:
//   - Row-major output order; shortest round-trip representation per element.

package matrix

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	opParseRows = "ParseRows"
	opWriteTo   = "WriteTo"

	_fmtSep = " " // element separator
)

// ParseRows builds a Dense from whitespace-delimited numeric text rows.
//
// Implementation:
//   - Stage 1: split each line with strings.Fields (spaces, tabs, stray '\r').
//   - Stage 2: the first line fixes the column count; later lines must match.
//   - Stage 3: parse every token as a decimal float (no hex, no '_') and enforce
//     the numeric policy (NaN/±Inf rejected unless WithNoValidateNaNInf).
//
// Behavior highlights:
//   - Accepts standard literal forms: "-0.5", "1", "1.0", "1e-3".
//   - Rejects Go-only forms such as "0x1p-2" and "1_0".
//   - No lines at all yields a 0×0 matrix.
//   - Never returns a partially filled matrix: result is nil on any error.
//
// Errors:
//   - ErrNumberFormat (bad token), ErrShapeMismatch (ragged row), ErrNaNInf.
//     All are wrapped with 1-based line/field positions.
//
// Complexity:
//   - Time O(total characters), Space O(r*c).
func ParseRows(lines []string, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	r := len(lines)
	if r == 0 {
		return &Dense{}, nil
	}

	var (
		c      = -1
		data   []float64
		fields []string
		v      float64
		err    error
	)
	for i, line := range lines {
		fields = strings.Fields(line)
		if c < 0 {
			c = len(fields)
			data = make([]float64, 0, r*c)
		} else if len(fields) != c {
			return nil, matrixErrorf(opParseRows,
				fmt.Errorf("line %d: want %d fields, got %d: %w", i+1, c, len(fields), ErrShapeMismatch))
		}
		for j, tok := range fields {
			v, err = parseDecimal(tok)
			if err != nil {
				return nil, matrixErrorf(opParseRows,
					fmt.Errorf("line %d field %d %q: %w", i+1, j+1, tok, ErrNumberFormat))
			}
			if o.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(opParseRows,
					fmt.Errorf("line %d field %d %q: %w", i+1, j+1, tok, ErrNaNInf))
			}
			data = append(data, v)
		}
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// parseDecimal parses a decimal float token. strconv.ParseFloat also takes Go
// literal syntax; hex mantissas and '_' digit separators are rejected here.
func parseDecimal(tok string) (float64, error) {
	if strings.IndexByte(tok, '_') >= 0 {
		return 0, strconv.ErrSyntax
	}
	s := tok
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return 0, strconv.ErrSyntax
	}

	return strconv.ParseFloat(tok, 64)
}

// formatFloat renders v with the shortest representation that parses back to
// the same float64. Integral values keep a ".0" suffix so a written cloud
// reads "1.0 0.5 0.0" rather than "1 0.5 0".
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") { // decimal point, exponent, NaN or Inf
		return s
	}

	return s + ".0"
}

// formatRow renders row i without a terminator.
func (m *Dense) formatRow(b *strings.Builder, i int) {
	base := i * m.c
	for j := 0; j < m.c; j++ {
		if j > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(formatFloat(m.data[base+j]))
	}
}

// FormatRows renders every row as one line of text without its terminator.
// ParseRows(m.FormatRows()) reproduces m exactly.
// Complexity: O(r*c).
func (m *Dense) FormatRows() []string {
	out := make([]string, m.r)
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.Reset()
		m.formatRow(&b, i)
		out[i] = b.String()
	}

	return out
}

// Format renders the whole matrix: each row followed by the line separator.
// The separator defaults to DefaultLineSeparator; see WithLineSeparator.
func (m *Dense) Format(opts ...Option) string {
	o := gatherOptions(opts...)
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		m.formatRow(&b, i)
		b.WriteString(o.lineSeparator)
	}

	return b.String()
}

// String implements fmt.Stringer with the platform text format.
func (m *Dense) String() string {
	return m.Format()
}

// WriteTo streams the platform text format to w row by row (io.WriterTo).
// Returns the number of bytes written and the first write error.
func (m *Dense) WriteTo(w io.Writer) (int64, error) {
	var (
		total int64
		b     strings.Builder
	)
	for i := 0; i < m.r; i++ {
		b.Reset()
		m.formatRow(&b, i)
		b.WriteString(DefaultLineSeparator)
		n, err := io.WriteString(w, b.String())
		total += int64(n)
		if err != nil {
			return total, matrixErrorf(opWriteTo, fmt.Errorf("row %d: %w", i, err))
		}
	}

	return total, nil
}

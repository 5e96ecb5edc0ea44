// SPDX-License-Identifier: MIT

// Package xyz reads and writes point-cloud text files: one point per line,
// coordinates separated by whitespace, one row terminator after every point.
//
// Reading accepts both "\n" and "\r\n" terminators and skips blank lines.
// Writing uses matrix.DefaultLineSeparator, so a file written on one platform
// reads back identically everywhere.
package xyz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/cloudalign/matrix"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Read parses every non-blank line of r into a matrix.
// Parse errors report the 1-based position among non-blank lines.
//
// Errors:
//   - matrix.ErrNumberFormat, matrix.ErrShapeMismatch, matrix.ErrNaNInf,
//     or the underlying read error.
func Read(r io.Reader, opts ...matrix.Option) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("xyz: read: %w", err)
	}

	return matrix.ParseRows(lines, opts...)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts ...matrix.Option) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xyz: %w", err)
	}
	defer f.Close()

	m, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("xyz: %s: %w", path, err)
	}

	return m, nil
}

// Write streams m to w in the point-cloud text format.
func Write(w io.Writer, m *matrix.Dense) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("xyz: write: %w", err)
	}
	bw := bufio.NewWriter(w)
	if _, err := m.WriteTo(bw); err != nil {
		return fmt.Errorf("xyz: write: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("xyz: write: %w", err)
	}

	return nil
}

// WriteFile creates or truncates path and writes m to it.
func WriteFile(path string, m *matrix.Dense) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("xyz: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("xyz: %w", cerr)
		}
	}()

	if err = Write(f, m); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// SPDX-License-Identifier: MIT

//go:build windows

package matrix

// DefaultLineSeparator terminates every formatted row.
const DefaultLineSeparator = "\r\n"

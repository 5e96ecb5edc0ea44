// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"strings"
)

// Method selects how principal axes are computed.
type Method int

const (
	// MethodSVD runs gonum stat.PC, an SVD of the centred points.
	MethodSVD Method = iota

	// MethodCovariance builds the sample covariance and runs gonum mat.EigenSym on it.
	MethodCovariance
)

// DefaultMethod is used when no WithMethod option is given.
const DefaultMethod = MethodSVD

// String returns "svd" or "covariance".
func (m Method) String() string {
	switch m {
	case MethodSVD:
		return "svd"
	case MethodCovariance:
		return "covariance"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "svd" / "covariance" (case-insensitive) to a Method.
// Errors: ErrUnknownMethod.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "svd", "":
		return MethodSVD, nil
	case "covariance", "cov", "eigen":
		return MethodCovariance, nil
	default:
		return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
	}
}

// Option configures an Aligner.
type Option func(*Options)

// Options holds the effective Aligner configuration.
type Options struct {
	method Method
}

// WithMethod selects the decomposition. Panics on an unknown Method.
func WithMethod(m Method) Option {
	if m != MethodSVD && m != MethodCovariance {
		panic(fmt.Sprintf("align: WithMethod(%v): %v", m, ErrUnknownMethod))
	}

	return func(o *Options) { o.method = m }
}

func gatherOptions(opts ...Option) Options {
	o := Options{method: DefaultMethod}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

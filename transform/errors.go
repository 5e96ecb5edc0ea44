// SPDX-License-Identifier: MIT

package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAxis indicates an Axis outside {X, Y, Z}.
	ErrUnknownAxis = errors.New("transform: unknown axis")

	// ErrNilHandler indicates a nil Handler was added to a Pipeline.
	ErrNilHandler = errors.New("transform: nil handler")
)

// stageErrorf wraps a stage failure with its position and name.
// The cause stays reachable through errors.Is.
func stageErrorf(stage int, name string, err error) error {
	return fmt.Errorf("transform: stage %d (%s): %w", stage, name, err)
}

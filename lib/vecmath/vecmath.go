// Package vecmath holds the small generic vector types used for vertex data.
package vecmath

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any component type a vector can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

var ErrIndexOutOfRange = errors.New("vector index out of range")

func outOfRange(i, n int) error {
	return fmt.Errorf("%w: %d (dimension %d)", ErrIndexOutOfRange, i, n)
}

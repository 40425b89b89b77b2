package constraints

import "golang.org/x/exp/constraints"

// Integer permits any signed or unsigned integer type.
type Integer = constraints.Integer

// Number permits any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

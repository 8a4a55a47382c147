// SPDX-License-Identifier: MIT

package vector

import "golang.org/x/exp/constraints"

// MaxVectorSize is the largest element count New accepts.
const MaxVectorSize = 100_000_000

// Number is the element constraint: every type supporting +, -, * and ==
// with a meaningful zero value as the additive identity.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/utmatrix/vector"

// MaxMatrixSize is the largest row (and column) count New accepts.
const MaxMatrixSize = 10_000

// Number is the element constraint, shared with package vector.
type Number = vector.Number

package dot

import (
	"fmt"

	"github.com/ajroetker/go-matrix/hwy"
)

// DotBatch computes multiple dot products.
// For each i, computes the dot product of queries[i] and keys[i].
//
// queries and keys must have the same number of vectors; the first failing
// pair aborts the batch and its index is reported in the error.
func DotBatch[T hwy.Lanes](queries, keys [][]T) ([]T, error) {
	if len(queries) != len(keys) {
		return nil, fmt.Errorf("%w: %d queries, %d keys", ErrLengthMismatch, len(queries), len(keys))
	}

	k := KernelFor[T]()
	results := make([]T, len(queries))
	for i := range queries {
		r, err := k.Dot(queries[i], keys[i])
		if err != nil {
			return nil, fmt.Errorf("dot: batch entry %d: %w", i, err)
		}
		results[i] = r
	}

	return results, nil
}

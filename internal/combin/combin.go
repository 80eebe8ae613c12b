// Package combin enumerates k-element combinations of n positions.
package combin

import "iter"

// Indices yields every k-element subset of {0, ..., n-1} as strictly
// increasing indices in lexicographic order. Each subset is produced exactly
// once. The yielded slice is reused, so callers must copy it to keep it.
func Indices(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 0 || n < 0 || k > n {
			return
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			if !yield(idx) {
				return
			}
			// Find the rightmost position that can still advance.
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// Of yields each k-element combination of items, preserving their order.
// Every yielded slice is freshly allocated.
func Of[T any](items []T, k int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for idx := range Indices(len(items), k) {
			out := make([]T, k)
			for i, j := range idx {
				out[i] = items[j]
			}
			if !yield(out) {
				return
			}
		}
	}
}

// Count returns the binomial coefficient C(n, k), or 0 when k is out of range.
func Count(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}

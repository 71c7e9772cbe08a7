package catalog

// RemoveDuplicates collapses repeated occurrences of the first element of the
// input, preserving order. The head of the original input is captured once
// and every recursive step filters the shrinking remainder against that same
// value, so only repeats of the very first element are removed; duplicates
// among later elements are preserved. The general case is unspecified, use
// Unique for a full first-seen-order deduplication.
//
// The input slice is never mutated.
func RemoveDuplicates(in []string) []string {
	if len(in) == 0 {
		return in
	}

	return append([]string{in[0]}, collapseAgainst(in[0], in[1:])...)
}

// collapseAgainst removes every occurrence of pinned from rest and recurses
// on the remainder after its own head, threading pinned through unchanged.
func collapseAgainst(pinned string, rest []string) []string {
	if len(rest) == 0 {
		return nil
	}

	filtered := make([]string, 0, len(rest))
	for _, value := range rest {
		if value != pinned {
			filtered = append(filtered, value)
		}
	}

	if len(filtered) == 0 {
		return nil
	}

	return append(filtered[:1:1], collapseAgainst(pinned, filtered[1:])...)
}

// Unique returns the input without any duplicate values, keeping the first
// occurrence of each value and preserving order.
func Unique(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))

	for _, value := range in {
		if _, ok := seen[value]; ok {
			continue
		}

		seen[value] = struct{}{}
		out = append(out, value)
	}

	return out
}

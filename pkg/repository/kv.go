package repository

// ListBounds converts redis style LRANGE indexes into a half-open [from, to)
// window over a list of n elements. ok is false when the window is empty.
func ListBounds(n, start, stop int64) (from, to int64, ok bool) {
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop || start >= n {
		return 0, 0, false
	}
	return start, stop + 1, true
}

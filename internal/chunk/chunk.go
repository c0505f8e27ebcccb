// Package chunk windows long texts so regex scanning stays bounded. Windows
// overlap so a match straddling a boundary is always fully contained in at
// least one window; callers dedup across windows by interval overlap.
package chunk

type Window struct {
	Index int
	Start int
	End   int
}

// Windows covers [0, n) with windows of the given rune size and overlap.
func Windows(n, size, overlap int) []Window {
	if size <= 0 || n <= 0 {
		return nil
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size - 1
	}

	step := size - overlap
	windows := make([]Window, 0, (n/step)+1)
	for start := 0; start < n; start += step {
		end := start + size
		if end > n {
			end = n
		}
		windows = append(windows, Window{
			Index: len(windows),
			Start: start,
			End:   end,
		})
		if end == n {
			break
		}
	}

	return windows
}

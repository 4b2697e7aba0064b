package model

// PageOffset converts a from/size pair into the row offset of the page that
// contains from. from=3, size=2 starts at row 2.
func PageOffset(from, size int) int {
	if size <= 0 || from <= 0 {
		return 0
	}
	return (from / size) * size
}

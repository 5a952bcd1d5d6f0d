package layout

// Span is a half-open [Start, End) range into the ordered image list.
type Span struct {
	Start int
	End   int
}

// Len returns the number of images in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Paginate splits n images into consecutive spans of perPage images each; the
// final span holds the remainder. perPage must be at least 1.
func Paginate(n, perPage int) []Span {
	var pages []Span
	for start := 0; start < n; start += perPage {
		pages = append(pages, Span{Start: start, End: min(start+perPage, n)})
	}
	return pages
}

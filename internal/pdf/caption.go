package pdf

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Label selects what caption is drawn under each thumbnail.
type Label int

const (
	// LabelNone draws no captions.
	LabelNone Label = iota
	// LabelIndex draws the filename without its extension.
	LabelIndex
	// LabelName draws the full filename.
	LabelName
)

// ParseLabel maps a CLI label mode to a Label.
func ParseLabel(s string) (Label, error) {
	switch s {
	case "none":
		return LabelNone, nil
	case "index":
		return LabelIndex, nil
	case "name":
		return LabelName, nil
	}
	return LabelNone, fmt.Errorf("unknown label mode %q (valid: none, index, name)", s)
}

func (l Label) String() string {
	switch l {
	case LabelNone:
		return "none"
	case LabelIndex:
		return "index"
	case LabelName:
		return "name"
	}
	return fmt.Sprintf("label(%d)", int(l))
}

// captionText returns the caption for path under the given label mode.
func captionText(path string, label Label) string {
	name := filepath.Base(path)
	switch label {
	case LabelIndex:
		return strings.TrimSuffix(name, filepath.Ext(name))
	case LabelName:
		return name
	}
	return ""
}

// removeDiacritics strips diacritical marks from a string (e.g., "Jiří" -> "Jiri")
// so captions survive the cp1252 encoding of the built-in PDF fonts.
func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

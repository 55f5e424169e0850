package layout

import "strings"

// Measurer reports the rendered width of text in pixels.
type Measurer interface {
	TextWidth(text string) int
}

type MeasureFunc func(text string) int

func (f MeasureFunc) TextWidth(text string) int {
	return f(text)
}

// Wrap greedily packs the words of text into lines no wider than maxWidth.
// A word wider than maxWidth on its own is kept whole on a line of its own.
func Wrap(text string, maxWidth int, m Measurer) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		candidate := current + " " + word
		if m.TextWidth(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}

	return append(lines, current)
}

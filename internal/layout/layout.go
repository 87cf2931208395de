// Package layout splits text into words and packs them into fixed-width lines.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	// ErrWordTooWide reports a word that cannot fit on a single line.
	ErrWordTooWide = errors.New("cannot place words in given width")
	// ErrNoText reports text without a single word to type.
	ErrNoText = errors.New("no text to type")
)

// LayoutError describes why the text could not be laid out.
type LayoutError struct {
	Word  string
	Width int
	Err   error
}

func (e *LayoutError) Error() string {
	if e.Word != "" {
		return fmt.Sprintf("%v: word %q does not fit in %d columns", e.Err, e.Word, e.Width)
	}
	return e.Err.Error()
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

// Split returns the whitespace-delimited words of text in source order.
func Split(text string) []string {
	return strings.Fields(text)
}

// Place greedily packs words into lines no wider than width.
// Every line except the last ends with a single space, which counts toward
// the width, so only the last line may use the full width for words.
func Place(words []string, width int) ([]string, error) {
	if len(words) == 0 {
		return nil, nil
	}
	for i, word := range words {
		if wordWidth(word) > budget(width, i == len(words)-1) {
			return nil, &LayoutError{Word: word, Width: width, Err: ErrWordTooWide}
		}
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	for i, word := range words {
		w := wordWidth(word)
		if line.Len() > 0 && lineWidth+1+w > budget(width, i == len(words)-1) {
			line.WriteByte(' ')
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += w
	}
	lines = append(lines, line.String())
	return lines, nil
}

// Build splits text and places its words into lines of at most width columns.
func Build(text string, width int) ([]string, error) {
	words := Split(text)
	if len(words) == 0 {
		return nil, &LayoutError{Width: width, Err: ErrNoText}
	}
	return Place(words, width)
}

// budget is the room for words on a line; non-final lines keep one column
// for their trailing space.
func budget(width int, last bool) int {
	if last {
		return width
	}
	return width - 1
}

func wordWidth(word string) int {
	return runewidth.StringWidth(word)
}

// Package stats derives typing metrics and renders the result summary.
package stats

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/verte-zerg/linetype/internal/session"
)

// ErrNoCharacters reports metrics requested for an empty session.
var ErrNoCharacters = errors.New("no characters to measure")

// Metrics summarizes a completed session.
type Metrics struct {
	TotalChars     int
	Errors         int
	Elapsed        time.Duration
	CharsPerMinute float64
	ErrorRate      float64
}

// Compute derives characters per minute and the error percentage.
func Compute(totalChars int, elapsed time.Duration, errorCount int) (Metrics, error) {
	if totalChars <= 0 {
		return Metrics{}, ErrNoCharacters
	}
	m := Metrics{
		TotalChars: totalChars,
		Errors:     errorCount,
		Elapsed:    elapsed,
		ErrorRate:  float64(errorCount) / float64(totalChars) * 100,
	}
	if seconds := elapsed.Seconds(); seconds > 0 {
		m.CharsPerMinute = float64(totalChars) / seconds * 60
	}
	return m, nil
}

// FromResult computes metrics for a finished session.
func FromResult(res session.Result) (Metrics, error) {
	return Compute(res.TotalChars, res.Elapsed, res.Errors)
}

// SummaryRows returns the label, value and unit columns of the summary.
func SummaryRows(m Metrics) [][]string {
	return [][]string{
		{"Time taken", fmt.Sprintf("%.2f", m.Elapsed.Seconds()), "seconds"},
		{"Typing speed", fmt.Sprintf("%.2f", m.CharsPerMinute), "characters per minute"},
		{"Errors", fmt.Sprintf("%d", m.Errors), fmt.Sprintf("%.2f%% of characters", m.ErrorRate)},
	}
}

// SummaryLines formats the summary as aligned text lines.
func SummaryLines(m Metrics) []string {
	return formatTable(nil, SummaryRows(m), map[int]bool{1: true})
}

// RenderSummary prints the summary table for m.
func RenderSummary(w io.Writer, m Metrics) error {
	if _, err := fmt.Fprintln(w, "Results"); err != nil {
		return err
	}
	for _, line := range SummaryLines(m) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

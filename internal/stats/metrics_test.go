package stats

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/verte-zerg/linetype/internal/session"
)

func TestCompute(t *testing.T) {
	m, err := Compute(60, 30*time.Second, 3)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if math.Abs(m.CharsPerMinute-120.0) > 1e-9 {
		t.Fatalf("expected 120 chars/min, got %f", m.CharsPerMinute)
	}
	if math.Abs(m.ErrorRate-5.0) > 1e-9 {
		t.Fatalf("expected 5%% errors, got %f", m.ErrorRate)
	}
}

func TestComputeNoCharacters(t *testing.T) {
	if _, err := Compute(0, time.Second, 0); !errors.Is(err, ErrNoCharacters) {
		t.Fatalf("expected ErrNoCharacters, got %v", err)
	}
}

func TestComputeZeroElapsed(t *testing.T) {
	m, err := Compute(10, 0, 1)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if m.CharsPerMinute != 0 {
		t.Fatalf("expected zero speed, got %f", m.CharsPerMinute)
	}
	if math.Abs(m.ErrorRate-10.0) > 1e-9 {
		t.Fatalf("expected 10%% errors, got %f", m.ErrorRate)
	}
}

func TestFromResult(t *testing.T) {
	m, err := FromResult(session.Result{TotalChars: 120, Errors: 6, Elapsed: time.Minute, Complete: true})
	if err != nil {
		t.Fatalf("from result: %v", err)
	}
	if math.Abs(m.CharsPerMinute-120) > 1e-9 || math.Abs(m.ErrorRate-5) > 1e-9 {
		t.Fatalf("unexpected metrics: %+v", m)
	}
}

func TestRenderSummary(t *testing.T) {
	m, err := Compute(60, 30*time.Second, 3)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, m); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Results\n" +
		"Time taken    30.00 seconds\n" +
		"Typing speed 120.00 characters per minute\n" +
		"Errors            3 5.00% of characters\n"
	if buf.String() != want {
		t.Fatalf("unexpected summary:\n%s\nwant:\n%s", buf.String(), want)
	}
}

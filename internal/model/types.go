// Package model defines shared data structures.
package model

// Config defines practice settings after flags and the config file are merged.
type Config struct {
	WidthRatio float64
	Width      int
	Symbols    string
	LogFile    string
	LogLevel   string
	Theme      Theme
}

// Theme holds the colors used for cell statuses.
type Theme struct {
	Correct   string
	Incorrect string
	Untyped   string
	Next      string
}

// DefaultTheme mirrors the white/green/red palette of a classic terminal trainer.
func DefaultTheme() Theme {
	return Theme{
		Correct:   "#5FAF5F",
		Incorrect: "#FF4D4F",
		Untyped:   "#F0F0F0",
		Next:      "#C89A3A",
	}
}

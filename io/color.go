package clargsio

import "github.com/fatih/color"

// Theme holds the attributes used for each message severity.
type Theme struct {
	Success, Warning, Error, Info, Debug []color.Attribute
}

// DefaultTheme returns the bright 16-color theme, which renders on every
// color-capable terminal.
func DefaultTheme() Theme {
	return Theme{
		Success: []color.Attribute{color.FgHiGreen},
		Warning: []color.Attribute{color.FgHiYellow},
		Error:   []color.Attribute{color.FgHiRed, color.Bold},
		Info:    []color.Attribute{color.FgHiCyan},
		Debug:   []color.Attribute{color.FgHiMagenta},
	}
}

// MonochromeTheme uses attributes only, for terminals where colors clash
// with the background.
func MonochromeTheme() Theme {
	return Theme{
		Success: []color.Attribute{color.Bold},
		Warning: []color.Attribute{color.Underline},
		Error:   []color.Attribute{color.Bold, color.Underline},
		Info:    nil,
		Debug:   []color.Attribute{color.Faint},
	}
}

package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/kennyg/ossuary/internal/classify"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, UI functions produce plain text without colors or decorations.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// ═══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Bone, ash and candlelight
// ═══════════════════════════════════════════════════════════════════════════════

var (
	Bone   = lipgloss.Color("#EDE6D6") // Bleached bone
	Ivory  = lipgloss.Color("#FFF8E7") // Polished ivory
	Ochre  = lipgloss.Color("#D4A373") // Candlelit ochre
	Rust   = lipgloss.Color("#B5523B") // Dried rust
	Moss   = lipgloss.Color("#7FB069") // Crypt moss
	Teal   = lipgloss.Color("#5FA8A0") // Verdigris
	Violet = lipgloss.Color("#8E6CB0") // Bruise violet
	Rose   = lipgloss.Color("#E07A8F") // Faded rose

	Gray     = lipgloss.Color("#A8A29E")
	DarkGray = lipgloss.Color("#57534E")
	Black    = lipgloss.Color("#1C1917")
)

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT STYLES
// ═══════════════════════════════════════════════════════════════════════════════

var (
	// Title for headings
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Ochre)

	// Subtitle for secondary headings
	Subtitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Bone)

	// Success messages
	Success = lipgloss.NewStyle().
		Foreground(Moss)

	// Error messages
	Error = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	// Warning messages
	Warning = lipgloss.NewStyle().
		Foreground(Rust)

	// Info messages
	Info = lipgloss.NewStyle().
		Foreground(Teal)

	// Muted/secondary text
	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	// Dim - even more subtle
	Dim = lipgloss.NewStyle().
		Foreground(DarkGray)
)

// ═══════════════════════════════════════════════════════════════════════════════
// BADGES - Group kind indicators
// ═══════════════════════════════════════════════════════════════════════════════

var baseBadge = lipgloss.NewStyle().
	Padding(0, 1).
	Bold(true)

// KindBadge returns the badge for a group kind
func KindBadge(kind classify.Kind) string {
	switch kind {
	case classify.KindJiggle:
		return badge("JIGGLE", "〰 JIGGLE", Violet, Ivory)
	case classify.KindDriver:
		return badge("DRIVER", "⚙ DRIVER", Teal, Ivory)
	case classify.KindCategory:
		return badge("CATEGORY", "◆ CATEGORY", Ochre, Black)
	case classify.KindDefault:
		return badge("DEFAULT", "○ DEFAULT", DarkGray, Ivory)
	default:
		// Collections ossuary did not create
		return badge("CUSTOM", "· CUSTOM", DarkGray, Ivory)
	}
}

func badge(plain, fancy string, bg, fg lipgloss.Color) string {
	if !IsTTY {
		return "[" + plain + "]"
	}
	return baseBadge.Background(bg).Foreground(fg).Render(fancy)
}

// VisibilityMark renders a collection's visibility flag
func VisibilityMark(visible bool) string {
	if !IsTTY {
		if visible {
			return "visible"
		}
		return "hidden"
	}
	if visible {
		return lipgloss.NewStyle().Foreground(Moss).Render("◉ visible")
	}
	return lipgloss.NewStyle().Foreground(DarkGray).Render("◌ hidden")
}

// ═══════════════════════════════════════════════════════════════════════════════
// LOGO
// ═══════════════════════════════════════════════════════════════════════════════

// Logo returns the ossuary banner
func Logo() string {
	// Plain output for non-TTY environments
	if !IsTTY {
		return "\n  OSSUARY - Every bone in its place\n"
	}

	lines := []struct {
		text  string
		color lipgloss.Color
	}{
		{"", Black},
		{"      ▄█▄                         ▄█▄", Bone},
		{"     ▀███▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄███▀", Bone},
		{"     ▄███▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀███▄", Ivory},
		{"      ▀█▀   O S S U A R Y         ▀█▀", Ochre},
		{"             ─────────────", DarkGray},
		{"             every bone in its place", Gray},
		{"", Black},
	}

	var result strings.Builder
	for _, line := range lines {
		styled := lipgloss.NewStyle().Foreground(line.color).Render(line.text)
		result.WriteString(styled)
		result.WriteString("\n")
	}

	return result.String()
}

// ═══════════════════════════════════════════════════════════════════════════════
// DECORATIVE ELEMENTS
// ═══════════════════════════════════════════════════════════════════════════════

// Divider returns a horizontal divider
func Divider(width int) string {
	if !IsTTY {
		return strings.Repeat("-", width)
	}
	return lipgloss.NewStyle().
		Foreground(DarkGray).
		Render(strings.Repeat("─", width))
}

// SectionHeader creates a decorated section header
func SectionHeader(title string) string {
	// Plain output for non-TTY environments
	if !IsTTY {
		return fmt.Sprintf("=== %s ===", title)
	}

	// Use terminal width, capped at 80
	width := TerminalWidth()
	if width > 80 {
		width = 80
	}

	titleStyled := lipgloss.NewStyle().
		Foreground(Ochre).
		Bold(true).
		Render(title)

	titleLen := lipgloss.Width(title)
	padLeft := (width - titleLen - 6) / 2
	padRight := width - titleLen - 6 - padLeft
	if padLeft < 0 {
		padLeft, padRight = 0, 0
	}

	left := lipgloss.NewStyle().Foreground(DarkGray).Render(strings.Repeat("─", padLeft) + "┤ ")
	right := lipgloss.NewStyle().Foreground(DarkGray).Render(" ├" + strings.Repeat("─", padRight))

	return left + titleStyled + right
}

// PageFooter creates a consistent page footer matching the header width
func PageFooter() string {
	// Plain output for non-TTY environments
	if !IsTTY {
		return "\n"
	}

	width := TerminalWidth()
	if width > 80 {
		width = 80
	}
	padSide := (width - 5) / 2 // 5 = " ✦ " with spaces
	left := strings.Repeat("─", padSide)
	right := strings.Repeat("─", width-padSide-5)
	line := lipgloss.NewStyle().Foreground(DarkGray).Render(left + " ✦ " + right)
	return "\n" + line + "\n"
}

// ═══════════════════════════════════════════════════════════════════════════════
// STATUS LINE COMPONENTS
// ═══════════════════════════════════════════════════════════════════════════════

// StatusLine creates a status line with icon and message
func StatusLine(icon, message string, color lipgloss.Color) string {
	if !IsTTY {
		return fmt.Sprintf("  %s %s", icon, message)
	}
	iconStyled := lipgloss.NewStyle().Foreground(color).Render(icon)
	msgStyled := lipgloss.NewStyle().Foreground(color).Render(message)
	return fmt.Sprintf("  %s %s", iconStyled, msgStyled)
}

// SuccessLine creates a success status line
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  OK: %s", message)
	}
	return StatusLine("✓", message, Moss)
}

// WarningLine creates a warning status line
func WarningLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  WARN: %s", message)
	}
	return StatusLine("!", message, Rust)
}

// InfoLine creates an info status line
func InfoLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  %s", message)
	}
	return StatusLine("→", message, Teal)
}

// ═══════════════════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════════════════

// Render applies a lipgloss style to text, returning plain text in non-TTY environments.
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}

// PadRight pads text with spaces to the given display width
func PadRight(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return text + strings.Repeat(" ", width-w)
}

// TerminalWidth returns the current terminal width, defaulting to 80 if unknown
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

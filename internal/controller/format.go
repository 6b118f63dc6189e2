package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/ivedit/internal/model"
)

// describeCompileError turns a compile failure into a one-line message.
// Cancellation is reported as such, everything else with its cause.
func describeCompileError(err error) string {
	switch {
	case errors.Is(err, m.ErrDialogCancelled):
		return "compile cancelled: no output path chosen"
	case errors.Is(err, context.Canceled):
		return "compile interrupted"
	case errors.Is(err, context.DeadlineExceeded):
		return "compile timed out"
	default:
		return fmt.Sprintf("error: %v", err)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}

	return d.Round(time.Millisecond).String()
}

// truncatePath shortens a path from the left so the file name stays visible.
func truncatePath(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	runes := []rune(text)
	currentWidth := 0
	start := len(runes)

	for start > 0 {
		rWidth := lipgloss.Width(string(runes[start-1]))
		if currentWidth+rWidth > maxWidth {
			break
		}

		start--
		currentWidth += rWidth
	}

	return ellipsis + string(runes[start:])
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

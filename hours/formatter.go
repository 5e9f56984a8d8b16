package hours

import "fmt"

// FormatCountdown renders a minute count as a human-readable duration:
// 75 -> "1h 15m", 45 -> "45m". Zero or negative minutes return "" so a
// caller never shows a misleading "0m"; the evaluator's half-open interval
// keeps that case from arising on its own.
func FormatCountdown(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

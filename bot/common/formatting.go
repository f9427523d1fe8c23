package common

import (
	"fmt"
	"strings"
	"time"
)

// FormatBalance formats a balance amount with thousand separators
func FormatBalance(balance int64) string {
	// Convert to string
	str := fmt.Sprintf("%d", balance)

	// Add commas for thousands
	n := len(str)
	if n <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// FormatBalanceCompact formats a balance amount in compact form (e.g. 100k, 1.5M)
func FormatBalanceCompact(balance int64) string {
	if balance < 1000 {
		return fmt.Sprintf("%d", balance)
	} else if balance < 1000000 {
		// Format as k (thousands)
		thousands := float64(balance) / 1000.0
		if thousands == float64(int(thousands)) {
			return fmt.Sprintf("%.0fk", thousands)
		}
		return fmt.Sprintf("%.1fk", thousands)
	} else if balance < 1000000000 {
		// Format as M (millions)
		millions := float64(balance) / 1000000.0
		if millions == float64(int(millions)) {
			return fmt.Sprintf("%.0fM", millions)
		}
		return fmt.Sprintf("%.1fM", millions)
	} else {
		// Format as B (billions)
		billions := float64(balance) / 1000000000.0
		if billions == float64(int(billions)) {
			return fmt.Sprintf("%.0fB", billions)
		}
		return fmt.Sprintf("%.1fB", billions)
	}
}

// FormatShekels formats an amount with the currency name attached
func FormatShekels(amount int64) string {
	return fmt.Sprintf("**%s shekels**", FormatBalance(amount))
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that displays in user's local timezone
// Format types: "t" = short time, "T" = long time, "d" = short date, "D" = long date,
// "f" = short date/time, "F" = long date/time, "R" = relative time
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}


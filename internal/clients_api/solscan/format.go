package solscan

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatUSD renders a dollar value with a K/M/B suffix ($1.2M, $980.5K, $42)
func FormatUSD(value float64) string {
	if value >= 1e9 {
		return "$" + trimZeros(fmt.Sprintf("%.2f", value/1e9)) + "B"
	} else if value >= 1e6 {
		return "$" + trimZeros(fmt.Sprintf("%.2f", value/1e6)) + "M"
	} else if value >= 1e3 {
		return "$" + trimZeros(fmt.Sprintf("%.2f", value/1e3)) + "K"
	}
	return "$" + trimZeros(fmt.Sprintf("%.2f", value))
}

// FormatAmount renders a token amount with a K/M/B suffix (1.1M, 2.2K, 15)
func FormatAmount(amount float64) string {
	if amount >= 1e9 {
		return trimZeros(fmt.Sprintf("%.1f", amount/1e9)) + "B"
	} else if amount >= 1e6 {
		return trimZeros(fmt.Sprintf("%.1f", amount/1e6)) + "M"
	} else if amount >= 1e3 {
		return trimZeros(fmt.Sprintf("%.1f", amount/1e3)) + "K"
	}
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("%.0f", amount)
	}
	return trimZeros(fmt.Sprintf("%.2f", amount))
}

// FormatPrice keeps sub-cent precision that FormatUSD would round away
func FormatPrice(price float64) string {
	if price >= 1 {
		return "$" + trimZeros(fmt.Sprintf("%.2f", price))
	}
	return "$" + trimZeros(strconv.FormatFloat(price, 'f', 8, 64))
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}

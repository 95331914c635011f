package tg_charts

// Renders the top-holders bar chart attached to a /search report
// Bar heights come from the fetched amounts; the text report only shows addresses

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"advisoor-bot/internal/clients_api/solscan"
	logging "advisoor-bot/internal/infra/log"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
)

const (
	chartWidth  = 1200
	chartHeight = 675

	chartAreaLeft   = 80.0
	chartAreaRight  = 1120.0
	chartAreaTop    = 140.0
	chartAreaBottom = 580.0

	barSpacing = 24.0

	titleFontSize = 34.0
	labelFontSize = 20.0

	labelOffsetY    = 28.0
	barValueOffsetY = 12.0
)

var (
	backgroundColor = color.RGBA{R: 16, G: 18, B: 24, A: 255}
	barColor        = color.RGBA{R: 64, G: 186, B: 213, A: 255}
	textColor       = color.White
)

// GenerateHoldersChart draws one bar per holder and saves the PNG under chartsDir
// Returns the written file path
func GenerateHoldersChart(chartsDir string, symbol string, holders []solscan.HolderEntry) (string, error) {
	if len(holders) == 0 {
		return "", fmt.Errorf("no holder data available")
	}

	if err := os.MkdirAll(chartsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create charts directory: %w", err)
	}

	maxAmount := 0.0
	for _, holder := range holders {
		if holder.Amount > maxAmount {
			maxAmount = holder.Amount
		}
	}
	if maxAmount <= 0 {
		return "", fmt.Errorf("holder amounts are empty")
	}

	dc := gg.NewContext(chartWidth, chartHeight)

	dc.SetColor(backgroundColor)
	dc.Clear()

	loadChartFont(dc, titleFontSize)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(fmt.Sprintf("%s — Top %d Holders", symbol, len(holders)), chartWidth/2, 70, 0.5, 0.5)

	loadChartFont(dc, labelFontSize)

	barAreaWidth := chartAreaRight - chartAreaLeft
	barWidth := (barAreaWidth - barSpacing*float64(len(holders)-1)) / float64(len(holders))

	for i, holder := range holders {
		barHeight := (holder.Amount / maxAmount) * (chartAreaBottom - chartAreaTop)
		x := chartAreaLeft + float64(i)*(barWidth+barSpacing)
		y := chartAreaBottom - barHeight

		dc.SetColor(barColor)
		dc.DrawRectangle(x, y, barWidth, barHeight)
		dc.Fill()

		dc.SetColor(textColor)
		dc.DrawStringAnchored(solscan.FormatAmount(holder.Amount), x+barWidth/2, y-barValueOffsetY, 0.5, 1)
		dc.DrawStringAnchored(shortAddress(holder.Address), x+barWidth/2, chartAreaBottom+labelOffsetY, 0.5, 0.5)
	}

	chartPath := filepath.Join(chartsDir, "holders_chart.png")
	if err := dc.SavePNG(chartPath); err != nil {
		return "", fmt.Errorf("failed to save chart: %w", err)
	}

	logging.LogInfo("Holders chart generated",
		zap.String("symbol", symbol),
		zap.String("chartPath", chartPath),
		zap.Int("holders", len(holders)))

	return chartPath, nil
}

// loadChartFont falls back to the built-in face when no bundled font is present
func loadChartFont(dc *gg.Context, size float64) {
	fontPaths := []string{
		"etc/fonts/Inter-Regular.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	}
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			if err := dc.LoadFontFace(path, size); err == nil {
				return
			}
		}
	}
}

// shortAddress truncates a wallet address to the familiar head…tail form
func shortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:4] + "…" + address[len(address)-4:]
}

package tg_charts

import (
	"fmt"
	"os"
	"testing"

	"advisoor-bot/internal/clients_api/solscan"
)

func TestGenerateHoldersChart(t *testing.T) {
	holders := make([]solscan.HolderEntry, 0, 10)
	for i := 0; i < 10; i++ {
		holders = append(holders, solscan.HolderEntry{
			Address: fmt.Sprintf("holder%daddresslongenough", i),
			Amount:  float64((10 - i) * 1500),
		})
	}

	chartPath, err := GenerateHoldersChart(t.TempDir(), "SYM", holders)
	if err != nil {
		t.Fatalf("GenerateHoldersChart failed: %v", err)
	}

	info, err := os.Stat(chartPath)
	if err != nil {
		t.Fatalf("chart file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("chart file is empty")
	}
}

func TestGenerateHoldersChart_NoHolders(t *testing.T) {
	if _, err := GenerateHoldersChart(t.TempDir(), "SYM", nil); err == nil {
		t.Fatalf("expected error for empty holder list")
	}
}

func TestGenerateHoldersChart_ZeroAmounts(t *testing.T) {
	holders := []solscan.HolderEntry{{Address: "holder0"}, {Address: "holder1"}}
	if _, err := GenerateHoldersChart(t.TempDir(), "SYM", holders); err == nil {
		t.Fatalf("expected error when all amounts are zero")
	}
}

func TestShortAddress(t *testing.T) {
	if got := shortAddress("7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"); got != "7xKX…gAsU" {
		t.Errorf("shortAddress = %q", got)
	}
	if got := shortAddress("short"); got != "short" {
		t.Errorf("short addresses must pass through, got %q", got)
	}
}

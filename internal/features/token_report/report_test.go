package token_report

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"advisoor-bot/internal/clients_api/solscan"
)

func fullMetadata() *solscan.TokenMetadata {
	return &solscan.TokenMetadata{
		MintAddress:    "Mint111",
		Symbol:         "SYM",
		Name:           "Sym Token",
		Decimals:       "6",
		IconURL:        "https://img.example/sym.png",
		Website:        "https://sym.example",
		Twitter:        "https://twitter.com/sym",
		MarketCapRank:  "42",
		Price:          "$0.00123",
		MarketCapFD:    "$12.35M",
		Volume24h:      "$2.35M",
		Tag:            "meme",
		TotalLiquidity: "$987.65K",
		InitialLPSize:  "1.5M",
		MintDisabled:   "Yes",
		LPBurned:       "No",
	}
}

func tenHolders() []solscan.HolderEntry {
	holders := make([]solscan.HolderEntry, 0, 10)
	for i := 0; i < 10; i++ {
		holders = append(holders, solscan.HolderEntry{
			Address: fmt.Sprintf("holder%d", i),
			Amount:  987654,
		})
	}
	return holders
}

// assertOrdered checks each needle occurs after the previous one
func assertOrdered(t *testing.T, body string, needles ...string) {
	t.Helper()
	pos := 0
	for _, needle := range needles {
		idx := strings.Index(body[pos:], needle)
		if idx < 0 {
			t.Fatalf("expected %q after position %d in body:\n%s", needle, pos, body)
		}
		pos += idx + len(needle)
	}
}

func TestBuildReport_NoMetadata(t *testing.T) {
	report := BuildReport(nil, nil, "Mint111")

	if !strings.Contains(report.Body, "No data available") {
		t.Errorf("expected no-data notice in body:\n%s", report.Body)
	}
	if !strings.Contains(report.Body, ExplorerURL("Mint111")) {
		t.Errorf("expected explorer link in body:\n%s", report.Body)
	}
	if len(report.Links) != 0 {
		t.Errorf("expected 0 links, got %d", len(report.Links))
	}
}

func TestBuildReport_FullMetadata(t *testing.T) {
	report := BuildReport(fullMetadata(), tenHolders(), "Mint111")

	assertOrdered(t, report.Body,
		"SYM",
		"Sym Token",
		"Market Cap: <code>$12.35M</code>",
		"Total Liquidity: <code>$987.65K</code>",
		"Initial LP Size: <code>1.5M</code>",
		"Mint Disabled: Yes",
		"LP Burned: No",
		"Website: https://sym.example",
		"Twitter: https://twitter.com/sym",
		ExplorerURL("Mint111"),
	)

	if len(report.Links) != 4 {
		t.Errorf("expected exactly 4 links, got %d", len(report.Links))
	}
}

func TestBuildReport_HolderListAddressesOnly(t *testing.T) {
	holders := tenHolders()
	report := BuildReport(fullMetadata(), holders, "Mint111")

	addresses := make([]string, 0, len(holders))
	for _, holder := range holders {
		addresses = append(addresses, holder.Address)
	}
	joined := strings.Join(addresses, ", ")
	if !strings.Contains(report.Body, joined) {
		t.Errorf("expected holder addresses joined with \", \" in body:\n%s", report.Body)
	}
	if strings.Contains(report.Body, "987654") {
		t.Errorf("holder amounts must not be rendered:\n%s", report.Body)
	}
}

func TestBuildReport_EmptyHolders(t *testing.T) {
	report := BuildReport(fullMetadata(), []solscan.HolderEntry{}, "Mint111")

	if !strings.Contains(report.Body, "Top Holders: "+solscan.NotAvailable) {
		t.Errorf("expected N/A holder list in body:\n%s", report.Body)
	}
}

func TestBuildReport_Deterministic(t *testing.T) {
	first := BuildReport(fullMetadata(), tenHolders(), "Mint111")
	second := BuildReport(fullMetadata(), tenHolders(), "Mint111")

	if first.Body != second.Body {
		t.Errorf("bodies differ between identical invocations")
	}
	if len(first.Links) != len(second.Links) {
		t.Fatalf("link counts differ between identical invocations")
	}
	for i := range first.Links {
		if first.Links[i] != second.Links[i] {
			t.Errorf("link %d differs between identical invocations", i)
		}
	}
}

func TestBuildReport_EscapesAddressInExplorerLink(t *testing.T) {
	address := "ab/c?d#e f"
	escaped := url.PathEscape(address)

	for _, report := range []Report{
		BuildReport(nil, nil, address),
		BuildReport(fullMetadata(), nil, address),
	} {
		if !strings.Contains(report.Body, ExplorerBase+"/"+escaped) {
			t.Errorf("expected escaped address %q in explorer link:\n%s", escaped, report.Body)
		}
		if strings.Contains(report.Body, ExplorerBase+"/"+address) {
			t.Errorf("raw address leaked into explorer link:\n%s", report.Body)
		}
	}
}

func TestBuildReport_MissingOptionalFieldKeepsOrder(t *testing.T) {
	meta := fullMetadata()
	meta.Website = solscan.NotAvailable

	report := BuildReport(meta, nil, "Mint111")

	assertOrdered(t, report.Body,
		"LP Burned: No",
		"Website: "+solscan.NotAvailable,
		"Twitter: https://twitter.com/sym",
	)
}

func TestBuildReport_FixedLinkSet(t *testing.T) {
	report := BuildReport(fullMetadata(), nil, "Mint111")

	for _, link := range report.Links {
		if strings.Contains(link.URL, "Mint111") {
			t.Errorf("link %q must not be derived from the queried address", link.URL)
		}
		if link.Label == "" || link.URL == "" {
			t.Errorf("link has empty label or URL: %+v", link)
		}
	}
}

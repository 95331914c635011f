package token_report

// Builds the /search report: an HTML body plus the fixed set of inline link buttons
// Output is deterministic: same metadata and holders always produce byte-identical results

import (
	"fmt"
	"net/url"
	"strings"

	"advisoor-bot/internal/clients_api/solscan"
)

const (
	// ExplorerBase - public block-explorer token page
	ExplorerBase = "https://solscan.io/token"

	noDataNotice = "No data available"
)

// Link - one labeled external URL button under the report
type Link struct {
	Label string
	URL   string
}

// Report - formatted body plus the optional button set, consumed by the send step
type Report struct {
	Body  string
	Links []Link
}

// actionLinks - static trading-service shortcuts, never derived from the queried address
var actionLinks = []Link{
	{Label: "Trojan", URL: "https://t.me/solana_trojanbot"},
	{Label: "Maestro", URL: "https://t.me/maestro"},
	{Label: "Bonkbot", URL: "https://t.me/bonkbot_bot"},
	{Label: "Photon", URL: "https://photon-sol.tinyastro.io"},
}

// ActionLinks returns a copy of the fixed button set
func ActionLinks() []Link {
	links := make([]Link, len(actionLinks))
	copy(links, actionLinks)
	return links
}

// ExplorerURL builds the explorer page link for a token address
func ExplorerURL(address string) string {
	return fmt.Sprintf("%s/%s", ExplorerBase, url.PathEscape(address))
}

// BuildReport combines the fetch results into one report, tolerating absence of either
// Absent metadata yields the no-data notice with only the inline explorer link and no buttons
func BuildReport(meta *solscan.TokenMetadata, holders []solscan.HolderEntry, address string) Report {
	if meta == nil {
		return Report{
			Body: fmt.Sprintf("%s for this token.\n\n<a href=\"%s\">View on Solscan</a>",
				noDataNotice, ExplorerURL(address)),
		}
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>%s</b> (%s)\n\n", meta.Symbol, meta.Name)
	fmt.Fprintf(&sb, "Market Cap: <code>%s</code>\n", meta.MarketCapFD)
	fmt.Fprintf(&sb, "Total Liquidity: <code>%s</code>\n", meta.TotalLiquidity)
	fmt.Fprintf(&sb, "Initial LP Size: <code>%s</code>\n", meta.InitialLPSize)
	fmt.Fprintf(&sb, "Mint Disabled: %s\n", meta.MintDisabled)
	fmt.Fprintf(&sb, "LP Burned: %s\n", meta.LPBurned)
	fmt.Fprintf(&sb, "Top Holders: %s\n", holderList(holders))
	fmt.Fprintf(&sb, "Website: %s\n", meta.Website)
	fmt.Fprintf(&sb, "Twitter: %s\n", meta.Twitter)
	fmt.Fprintf(&sb, "\n<a href=\"%s\">View on Solscan</a>", ExplorerURL(address))

	return Report{
		Body:  sb.String(),
		Links: ActionLinks(),
	}
}

// holderList joins addresses with ", "; amounts are deliberately not rendered here
func holderList(holders []solscan.HolderEntry) string {
	if len(holders) == 0 {
		return solscan.NotAvailable
	}

	addresses := make([]string, 0, len(holders))
	for _, holder := range holders {
		addresses = append(addresses, holder.Address)
	}
	return strings.Join(addresses, ", ")
}

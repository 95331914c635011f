package solscan

// Token metadata from the Solscan market endpoint
// Only the first listed market is used; every missing upstream key renders the N/A sentinel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	logging "advisoor-bot/internal/infra/log"

	"go.uber.org/zap"
)

// NotAvailable is the sentinel rendered for any field the upstream response omits
const NotAvailable = "N/A"

// TokenMetadata - display-ready view of the first market of a token
// All fields are strings so an absent upstream value and a present one flow the same way
type TokenMetadata struct {
	MintAddress    string
	Symbol         string
	Name           string
	Decimals       string
	IconURL        string
	Website        string
	Twitter        string
	MarketCapRank  string
	Price          string
	MarketCapFD    string
	Volume24h      string
	Tag            string
	TotalLiquidity string
	InitialLPSize  string
	MintDisabled   string
	LPBurned       string
}

// marketsResponse - body shape of GET /market/token/{address}
type marketsResponse struct {
	Markets []marketEntry `json:"markets"`
}

type marketEntry struct {
	Base          marketBase `json:"base"`
	Price         *float64   `json:"price"`
	MarketCapRank *int       `json:"market_cap_rank"`
	MarketCapFD   *float64   `json:"market_cap_fd"`
	Volume24h     *float64   `json:"volume24h"`
	Liquidity     *float64   `json:"liquidity"`
	InitialLPSize *float64   `json:"initial_lp_size"`
	Tag           *string    `json:"tag"`
	LPBurned      *bool      `json:"lp_burned"`
	Mint          *mintInfo  `json:"mint"`
}

type marketBase struct {
	Address  *string `json:"address"`
	Symbol   *string `json:"symbol"`
	Name     *string `json:"name"`
	Decimals *int    `json:"decimals"`
	Icon     *string `json:"icon"`
	Website  *string `json:"website"`
	Twitter  *string `json:"twitter"`
}

type mintInfo struct {
	FreezeAuthority *string `json:"freezeAuthority"`
}

// FetchTokenMetadata issues one GET and maps the first market into a TokenMetadata
// Returns nil on a non-2xx status, an undecodable body or an empty market list; never errors out
func (s *Session) FetchTokenMetadata(ctx context.Context, address string) *TokenMetadata {
	endpoint := fmt.Sprintf("%s/market/token/%s", s.marketBase, url.PathEscape(address))

	body, status, err := s.doGET(ctx, endpoint)
	if err != nil {
		logging.LogWarn("Token metadata fetch failed", zap.String("address", address), zap.Error(err))
		return nil
	}
	if status < 200 || status >= 300 {
		logging.LogWarn("Token metadata endpoint returned non-success status",
			zap.String("address", address),
			zap.Int("status", status))
		return nil
	}

	var resp marketsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		logging.LogWarn("Failed to decode token metadata response", zap.String("address", address), zap.Error(err))
		return nil
	}

	if len(resp.Markets) == 0 {
		logging.LogInfo("No markets listed for token", zap.String("address", address))
		return nil
	}

	return mapMarketEntry(resp.Markets[0])
}

func mapMarketEntry(m marketEntry) *TokenMetadata {
	return &TokenMetadata{
		MintAddress:    strOr(m.Base.Address),
		Symbol:         strOr(m.Base.Symbol),
		Name:           strOr(m.Base.Name),
		Decimals:       intOr(m.Base.Decimals),
		IconURL:        strOr(m.Base.Icon),
		Website:        strOr(m.Base.Website),
		Twitter:        strOr(m.Base.Twitter),
		MarketCapRank:  intOr(m.MarketCapRank),
		Price:          priceOr(m.Price),
		MarketCapFD:    usdOr(m.MarketCapFD),
		Volume24h:      usdOr(m.Volume24h),
		Tag:            strOr(m.Tag),
		TotalLiquidity: usdOr(m.Liquidity),
		InitialLPSize:  amountOr(m.InitialLPSize),
		MintDisabled:   mintDisabled(m.Mint),
		LPBurned:       boolOr(m.LPBurned),
	}
}

// Accessors: value when the key was present, the sentinel otherwise.

func strOr(p *string) string {
	if p == nil || *p == "" {
		return NotAvailable
	}
	return *p
}

func intOr(p *int) string {
	if p == nil {
		return NotAvailable
	}
	return strconv.Itoa(*p)
}

func usdOr(p *float64) string {
	if p == nil {
		return NotAvailable
	}
	return FormatUSD(*p)
}

func amountOr(p *float64) string {
	if p == nil {
		return NotAvailable
	}
	return FormatAmount(*p)
}

func priceOr(p *float64) string {
	if p == nil {
		return NotAvailable
	}
	return FormatPrice(*p)
}

func boolOr(p *bool) string {
	if p == nil {
		return NotAvailable
	}
	if *p {
		return "Yes"
	}
	return "No"
}

// mintDisabled - "Yes" while no freeze authority is set, "No" when one is, N/A without a mint object
func mintDisabled(m *mintInfo) string {
	if m == nil {
		return NotAvailable
	}
	if m.FreezeAuthority == nil || *m.FreezeAuthority == "" {
		return "Yes"
	}
	return "No"
}

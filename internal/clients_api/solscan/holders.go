package solscan

// Top holders from the Solscan holders endpoint
// Upstream order is kept as-is (assumed descending by balance)

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	logging "advisoor-bot/internal/infra/log"

	"go.uber.org/zap"
)

// TopHoldersLimit - how many holders one report shows
const TopHoldersLimit = 10

// HolderEntry - one (address, amount) pair from the holders list
type HolderEntry struct {
	Address string
	Amount  float64
}

// holdersResponse - body shape of GET /token/holders/{address}
type holdersResponse struct {
	Data []holderData `json:"data"`
}

type holderData struct {
	Owner  string      `json:"owner"`
	Amount json.Number `json:"amount"`
}

// FetchTopHolders issues one GET and maps up to TopHoldersLimit entries
// Returns an empty slice on a non-2xx status or an undecodable body; never errors out
func (s *Session) FetchTopHolders(ctx context.Context, address string) []HolderEntry {
	endpoint := fmt.Sprintf("%s/token/holders/%s?limit=%d", s.holdersBase, url.PathEscape(address), TopHoldersLimit)

	body, status, err := s.doGET(ctx, endpoint)
	if err != nil {
		logging.LogWarn("Top holders fetch failed", zap.String("address", address), zap.Error(err))
		return []HolderEntry{}
	}
	if status < 200 || status >= 300 {
		logging.LogWarn("Holders endpoint returned non-success status",
			zap.String("address", address),
			zap.Int("status", status))
		return []HolderEntry{}
	}

	var resp holdersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		logging.LogWarn("Failed to decode holders response", zap.String("address", address), zap.Error(err))
		return []HolderEntry{}
	}

	holders := make([]HolderEntry, 0, TopHoldersLimit)
	for _, entry := range resp.Data {
		if len(holders) >= TopHoldersLimit {
			break
		}
		amount, _ := entry.Amount.Float64()
		holders = append(holders, HolderEntry{
			Address: entry.Owner,
			Amount:  amount,
		})
	}

	return holders
}

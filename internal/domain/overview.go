package domain

import (
	"encoding/json"
	"fmt"
)

// LinkKind classifies a URL found in token metadata.
type LinkKind string

const (
	LinkTelegram LinkKind = "telegram"
	LinkTwitter  LinkKind = "twitter"
	LinkWebsite  LinkKind = "website"
)

// Link is a classified URL extracted from free-text token metadata.
type Link struct {
	Kind LinkKind
	URL  string
}

// MarshalJSON renders the link as a single-key object, e.g. {"telegram":"https://t.me/x"}.
func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{string(l.Kind): l.URL})
}

// UnmarshalJSON accepts the single-key object form produced by MarshalJSON.
func (l *Link) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if len(m) != 1 {
		return fmt.Errorf("link object must have exactly one key, got %d", len(m))
	}
	for k, v := range m {
		l.Kind = LinkKind(k)
		l.URL = v
	}
	return nil
}

// OverviewResult is the enrichment outcome for one accepted address.
type OverviewResult struct {
	Address        string
	Buy1h          int64   // buys in the last hour
	Sell1h         int64   // sells in the last hour
	Trade1h        int64   // Buy1h + Sell1h
	BuyPercentage  float64 // 0 when Trade1h == 0
	SellPercentage float64 // 0 when Trade1h == 0
	Liquidity      float64 // USD
	Links          []Link  // classified links from metadata description
	TradeURL       string  // trading-venue deep link
}

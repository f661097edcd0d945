package screener

import (
	"testing"
	"time"

	"solana-token-screener/internal/domain"
)

// Valid 32-byte base58 addresses for tests.
const (
	addrWSOL = "So11111111111111111111111111111111111111112"
	addrUSDC = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	addrRay  = "4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R"
)

func f64(v float64) *float64 { return &v }

func testFilter(now time.Time) *Filter {
	return NewFilter(DefaultThresholds()).WithClock(func() time.Time { return now })
}

func passingToken(now time.Time) domain.TokenSummary {
	return domain.TokenSummary{
		Address:           addrWSOL,
		Liquidity:         f64(60_000),
		V24hUSD:           f64(70_000),
		MarketCap:         1_000_000,
		LastTradeUnixTime: now.Add(-1 * time.Minute).Unix(),
		V24hChangePercent: f64(12.5),
	}
}

func TestFilter_RetainsPassingToken(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	got := testFilter(now).Filter([]domain.TokenSummary{passingToken(now)})

	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	c := got[0]
	if c.Address != addrWSOL {
		t.Errorf("address mismatch: %s", c.Address)
	}
	if c.TokenURL != DefaultExplorerBase+addrWSOL {
		t.Errorf("token URL mismatch: %s", c.TokenURL)
	}
	if c.LastTradeAt.Location() != time.UTC {
		t.Errorf("last trade not normalized to UTC")
	}
	if c.V24hChangePercent == nil || *c.V24hChangePercent != 12.5 {
		t.Errorf("change percent not carried through")
	}
}

func TestFilter_DropsMissingLiquidityOrVolume(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	noLiq := passingToken(now)
	noLiq.Liquidity = nil
	noVol := passingToken(now)
	noVol.V24hUSD = nil

	got := testFilter(now).Filter([]domain.TokenSummary{noLiq, noVol})
	if len(got) != 0 {
		t.Fatalf("expected records with missing fields to be dropped, got %d", len(got))
	}
}

func TestFilter_Thresholds(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		mutate func(*domain.TokenSummary)
		keep   bool
	}{
		{"liquidity at floor", func(s *domain.TokenSummary) { s.Liquidity = f64(50_000) }, true},
		{"liquidity below floor", func(s *domain.TokenSummary) { s.Liquidity = f64(49_999.99) }, false},
		{"volume at floor", func(s *domain.TokenSummary) { s.V24hUSD = f64(50_000) }, true},
		{"volume below floor", func(s *domain.TokenSummary) { s.V24hUSD = f64(49_999.99) }, false},
		{"market cap at floor", func(s *domain.TokenSummary) { s.MarketCap = 50 }, true},
		{"market cap below floor", func(s *domain.TokenSummary) { s.MarketCap = 49.99 }, false},
		{"market cap at cap", func(s *domain.TokenSummary) { s.MarketCap = 1_000_000_000 }, true},
		{"market cap above cap", func(s *domain.TokenSummary) { s.MarketCap = 1_000_000_001 }, false},
		{"zero market cap", func(s *domain.TokenSummary) { s.MarketCap = 0 }, false},
		{"invalid address", func(s *domain.TokenSummary) { s.Address = "not-base58!!" }, false},
		{"empty address", func(s *domain.TokenSummary) { s.Address = "" }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tok := passingToken(now)
			tc.mutate(&tok)
			got := testFilter(now).Filter([]domain.TokenSummary{tok})
			if kept := len(got) == 1; kept != tc.keep {
				t.Errorf("keep = %v, want %v", kept, tc.keep)
			}
		})
	}
}

func TestFilter_RecencyBoundary(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	fresh := passingToken(now)
	fresh.LastTradeUnixTime = now.Add(-1 * time.Minute).Unix()

	exact := passingToken(now)
	exact.Address = addrUSDC
	exact.LastTradeUnixTime = now.Add(-59 * time.Minute).Unix()

	stale := passingToken(now)
	stale.Address = addrRay
	stale.LastTradeUnixTime = now.Add(-59*time.Minute - time.Second).Unix()

	got := testFilter(now).Filter([]domain.TokenSummary{fresh, exact, stale})
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	for _, c := range got {
		if c.Address == addrRay {
			t.Error("record 59m1s old should be excluded")
		}
	}
}

func TestFilter_OutputIsSubsetInOrder(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	a := passingToken(now)
	b := passingToken(now)
	b.Address = addrUSDC
	rejected := passingToken(now)
	rejected.Address = addrRay
	rejected.MarketCap = 10

	got := testFilter(now).Filter([]domain.TokenSummary{a, rejected, b})
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].Address != addrWSOL || got[1].Address != addrUSDC {
		t.Errorf("input order not preserved: %s, %s", got[0].Address, got[1].Address)
	}
}

package domain

import (
	"encoding/json"
	"testing"
)

func TestValidAddress(t *testing.T) {
	cases := []struct {
		addr string
		want bool
	}{
		{"So11111111111111111111111111111111111111112", true},
		{"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", true},
		{"", false},
		{"not-base58!!", false},
		{"abc", false}, // decodes to fewer than 32 bytes
	}
	for _, tc := range cases {
		if got := ValidAddress(tc.addr); got != tc.want {
			t.Errorf("ValidAddress(%q) = %v, want %v", tc.addr, got, tc.want)
		}
	}
}

func TestLink_JSONRoundtrip(t *testing.T) {
	links := []Link{
		{Kind: LinkTelegram, URL: "https://t.me/x"},
		{Kind: LinkWebsite, URL: "https://example.com"},
	}

	data, err := json.Marshal(links)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[{"telegram":"https://t.me/x"},{"website":"https://example.com"}]` {
		t.Errorf("unexpected encoding: %s", data)
	}

	var decoded []Link
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 2 || decoded[0] != links[0] || decoded[1] != links[1] {
		t.Errorf("roundtrip mismatch: %+v", decoded)
	}
}

func TestLink_UnmarshalRejectsMultiKey(t *testing.T) {
	var l Link
	if err := json.Unmarshal([]byte(`{"telegram":"a","twitter":"b"}`), &l); err == nil {
		t.Error("expected error for multi-key object")
	}
}

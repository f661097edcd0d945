package solana

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(url string) *HTTPClient {
	return NewHTTPClient(url, WithMaxRetries(2), WithRetryDelay(time.Millisecond))
}

func TestSendTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Method string        `json:"method"`
			Params []interface{} `json:"params"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("bad request: %v", err)
		}
		if req.Method != "sendTransaction" {
			t.Errorf("method = %s", req.Method)
		}
		if len(req.Params) != 2 {
			t.Fatalf("params = %d, want 2", len(req.Params))
		}
		if req.Params[0] != "BASE64TX" {
			t.Errorf("tx param = %v", req.Params[0])
		}
		opts, ok := req.Params[1].(map[string]interface{})
		if !ok || opts["skipPreflight"] != true || opts["encoding"] != "base64" {
			t.Errorf("opts = %v", req.Params[1])
		}
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"SIGNATURE123"}`))
	}))
	defer srv.Close()

	sig, err := testClient(srv.URL).SendTransaction(context.Background(), "BASE64TX", true)
	if err != nil {
		t.Fatalf("SendTransaction failed: %v", err)
	}
	if sig != "SIGNATURE123" {
		t.Errorf("signature = %s", sig)
	}
}

func TestSendTransaction_RPCErrorNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32002,"message":"Blockhash not found"}}`))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).SendTransaction(context.Background(), "TX", true); err == nil {
		t.Fatal("expected RPC error")
	}
	if calls != 1 {
		t.Errorf("RPC errors must not be retried, got %d calls", calls)
	}
}

func TestSendTransaction_RetriesServerErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"SIG"}`))
	}))
	defer srv.Close()

	sig, err := testClient(srv.URL).SendTransaction(context.Background(), "TX", true)
	if err != nil {
		t.Fatalf("SendTransaction failed: %v", err)
	}
	if sig != "SIG" || calls != 3 {
		t.Errorf("sig = %s, calls = %d", sig, calls)
	}
}

func TestSendTransaction_RetriesExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).SendTransaction(context.Background(), "TX", true); err == nil {
		t.Fatal("expected max-retries error")
	}
}

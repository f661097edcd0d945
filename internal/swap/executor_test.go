package swap

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"

	"solana-token-screener/internal/solana"
	"solana-token-screener/internal/wallet"
)

// fakeQuoteAPI records calls and serves a canned quote and payload.
type fakeQuoteAPI struct {
	quote     json.RawMessage
	payload   string
	gotInput  string
	gotOutput string
	gotAmount uint64
	gotBps    int
	gotQuote  json.RawMessage
	gotPubkey string
}

func (f *fakeQuoteAPI) Quote(_ context.Context, inputMint, outputMint string, amount uint64, slippageBps int) (json.RawMessage, error) {
	f.gotInput, f.gotOutput, f.gotAmount, f.gotBps = inputMint, outputMint, amount, slippageBps
	return f.quote, nil
}

func (f *fakeQuoteAPI) SwapTransaction(_ context.Context, quote json.RawMessage, userPublicKey string) (string, error) {
	f.gotQuote, f.gotPubkey = quote, userPublicKey
	return f.payload, nil
}

// fakeSubmitter captures the submitted transaction.
type fakeSubmitter struct {
	gotTx        string
	gotPreflight bool
	calls        int
}

func (f *fakeSubmitter) SendTransaction(_ context.Context, txBase64 string, skipPreflight bool) (string, error) {
	f.calls++
	f.gotTx = txBase64
	f.gotPreflight = skipPreflight
	return "SUBMITTED_SIG", nil
}

func testKeypair(t *testing.T) (*wallet.Keypair, ed25519.PublicKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	k, err := wallet.FromBase58(base58.Encode(priv))
	require.NoError(t, err)
	return k, pub
}

// unsignedPayload builds a base64 single-signer transaction payload.
func unsignedPayload(t *testing.T) (string, []byte) {
	t.Helper()
	message := append([]byte{0x80, 1, 0, 0}, []byte("unsigned swap message")...)
	raw := append([]byte{1}, make([]byte, solana.SignatureLength)...)
	raw = append(raw, message...)
	return base64.StdEncoding.EncodeToString(raw), message
}

func TestExecuteSwap(t *testing.T) {
	key, pub := testKeypair(t)
	payload, message := unsignedPayload(t)

	api := &fakeQuoteAPI{quote: json.RawMessage(`{"outAmount":"42"}`), payload: payload}
	rpc := &fakeSubmitter{}

	exec := NewExecutor(api, rpc, key)
	sig, err := exec.ExecuteSwap(context.Background(), "OUTPUTMINT", 1_500_000)
	require.NoError(t, err)
	require.Equal(t, "SUBMITTED_SIG", sig)

	// Quote request uses the fixed quote asset and default slippage.
	require.Equal(t, WSOLMint, api.gotInput)
	require.Equal(t, "OUTPUTMINT", api.gotOutput)
	require.Equal(t, uint64(1_500_000), api.gotAmount)
	require.Equal(t, DefaultSlippageBps, api.gotBps)

	// The quote flows into the build call verbatim, with our public key.
	require.JSONEq(t, `{"outAmount":"42"}`, string(api.gotQuote))
	require.Equal(t, key.PublicKey(), api.gotPubkey)

	// Preflight is disabled and the submitted transaction carries a
	// signature over the exact message bytes of the unsigned transaction.
	require.True(t, rpc.gotPreflight)
	submitted, err := base64.StdEncoding.DecodeString(rpc.gotTx)
	require.NoError(t, err)
	tx, err := solana.ParseTransaction(submitted)
	require.NoError(t, err)
	require.Equal(t, message, tx.Message)
	require.Len(t, tx.Signatures, 1)
	require.True(t, ed25519.Verify(pub, tx.Message, tx.Signatures[0]))
}

func TestExecuteSwap_CorruptPayloadFailsBeforeSubmit(t *testing.T) {
	key, _ := testKeypair(t)

	api := &fakeQuoteAPI{quote: json.RawMessage(`{}`), payload: "not!!!base64"}
	rpc := &fakeSubmitter{}

	_, err := NewExecutor(api, rpc, key).ExecuteSwap(context.Background(), "OUT", 1)
	require.Error(t, err)
	require.Zero(t, rpc.calls, "corrupt payload must fail before submission")
}

func TestExecuteSwap_TruncatedTransactionFailsBeforeSubmit(t *testing.T) {
	key, _ := testKeypair(t)

	api := &fakeQuoteAPI{
		quote:   json.RawMessage(`{}`),
		payload: base64.StdEncoding.EncodeToString([]byte{1, 2, 3}),
	}
	rpc := &fakeSubmitter{}

	_, err := NewExecutor(api, rpc, key).ExecuteSwap(context.Background(), "OUT", 1)
	require.Error(t, err)
	require.Zero(t, rpc.calls)
}

func TestExecuteSwap_Options(t *testing.T) {
	key, _ := testKeypair(t)
	payload, _ := unsignedPayload(t)

	api := &fakeQuoteAPI{quote: json.RawMessage(`{}`), payload: payload}
	rpc := &fakeSubmitter{}

	exec := NewExecutor(api, rpc, key, WithSlippageBps(100), WithInputMint("OTHERMINT"))
	_, err := exec.ExecuteSwap(context.Background(), "OUT", 7)
	require.NoError(t, err)
	require.Equal(t, 100, api.gotBps)
	require.Equal(t, "OTHERMINT", api.gotInput)
}

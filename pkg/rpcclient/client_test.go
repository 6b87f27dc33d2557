package rpcclient

import (
	"errors"
	"testing"

	"github.com/hazeltree/chiactl/pkg/chiarpc"
	"github.com/stretchr/testify/require"
)

type testExec struct {
	calls    int
	lastArgs []string
	out      []byte
	err      error
}

func (e *testExec) Run(args ...string) ([]byte, error) {
	e.calls++
	e.lastArgs = args
	return e.out, e.err
}

func newTestClient(t *testing.T, e Executor) *Client {
	c, err := New(Options{Executor: e})
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	c, err := New(Options{})
	require.NoError(t, err)
	require.IsType(t, &processExecutor{}, c.exec)
	require.Equal(t, []string{"chia"}, c.exec.(*processExecutor).argv)

	c, err = New(Options{CLI: "ssh farm chia"})
	require.NoError(t, err)
	require.Equal(t, []string{"ssh", "farm", "chia"}, c.exec.(*processExecutor).argv)

	_, err = New(Options{CLI: `chia "unterminated`})
	require.Error(t, err)

	_, err = New(Options{CLI: " "})
	require.Error(t, err)
}

func TestInvokeCategory(t *testing.T) {
	te := new(testExec)
	c := newTestClient(t, te)

	// A category outside the closed set fails without spawning anything.
	err := c.Invoke("full_node", chiarpc.GetHeightInfo, nil, nil)
	require.ErrorIs(t, err, chiarpc.ErrInvalidCategory)
	require.Zero(t, te.calls)
}

func TestInvokeArgs(t *testing.T) {
	te := &testExec{out: []byte(`{"success": true}`)}
	c := newTestClient(t, te)

	require.NoError(t, c.Invoke(chiarpc.CategoryWallet, chiarpc.GetSyncStatus, nil, nil))
	require.Equal(t, []string{"rpc", "wallet", "get_sync_status", "{}"}, te.lastArgs)

	require.NoError(t, c.Invoke(chiarpc.CategoryWallet, chiarpc.LogIn, map[string]any{"fingerprint": 42}, nil))
	require.Equal(t, []string{"rpc", "wallet", "log_in", `{"fingerprint":42}`}, te.lastArgs)
}

func TestInvokeErrors(t *testing.T) {
	te := new(testExec)
	c := newTestClient(t, te)

	var gwErr *chiarpc.GatewayError
	te.err = errors.New("exit status 1")
	err := c.Invoke(chiarpc.CategoryWallet, chiarpc.GetHeightInfo, nil, nil)
	require.ErrorAs(t, err, &gwErr)
	require.ErrorIs(t, err, te.err)

	te.err = nil
	te.out = []byte("Connection error. Check if wallet is running")
	err = c.Invoke(chiarpc.CategoryWallet, chiarpc.GetHeightInfo, nil, nil)
	require.ErrorAs(t, err, &gwErr)

	te.out = []byte(`{"success": false, "error": "unknown key"}`)
	err = c.Invoke(chiarpc.CategoryWallet, chiarpc.LogIn, nil, nil)
	var walletErr *chiarpc.Error
	require.ErrorAs(t, err, &walletErr)
	require.Equal(t, "unknown key", walletErr.Message)
	require.Equal(t, chiarpc.LogIn, walletErr.Endpoint)
}

func TestGetHeightInfo(t *testing.T) {
	te := &testExec{out: []byte(`{"height": 4000123, "success": true}`)}
	c := newTestClient(t, te)

	height, err := c.GetHeightInfo()
	require.NoError(t, err)
	require.EqualValues(t, 4000123, height)
}

func TestGetNetworkInfo(t *testing.T) {
	te := &testExec{out: []byte(`{"network_name": "mainnet", "network_prefix": "xch", "success": true}`)}
	c := newTestClient(t, te)

	ni, err := c.GetNetworkInfo()
	require.NoError(t, err)
	require.Equal(t, "mainnet", ni.NetworkName)
	require.Equal(t, "xch", ni.NetworkPrefix)
}

func TestGetWallets(t *testing.T) {
	te := &testExec{out: []byte(`{"fingerprint": 3919172776,
		"wallets": [{"data": "", "id": 1, "name": "Chia Wallet", "type": 0},
		            {"data": "fa4a...00", "id": 2, "name": "CAT king", "type": 6}],
		"success": true}`)}
	c := newTestClient(t, te)

	wallets, err := c.GetWallets()
	require.NoError(t, err)
	require.Len(t, wallets, 2)
	require.EqualValues(t, 2, wallets[1].ID)
	require.EqualValues(t, 6, wallets[1].Type)
	require.Equal(t, []string{"rpc", "wallet", "get_wallets", "{}"}, te.lastArgs)

	_, err = c.GetWalletsByType(6)
	require.NoError(t, err)
	require.Equal(t, `{"type":6}`, te.lastArgs[3])
}

func TestCheckDeleteKey(t *testing.T) {
	te := &testExec{out: []byte(`{"fingerprint": 3919172776, "success": true,
		"used_for_farmer_rewards": true, "used_for_pool_rewards": false, "wallet_balance": true}`)}
	c := newTestClient(t, te)

	ki, err := c.CheckDeleteKey(3919172776)
	require.NoError(t, err)
	require.True(t, ki.UsedForFarmerRewards)
	require.False(t, ki.UsedForPoolRewards)
	require.True(t, ki.WalletBalance)
}

func TestAddKeyValidation(t *testing.T) {
	te := &testExec{out: []byte(`{"fingerprint": 112233, "success": true}`)}
	c := newTestClient(t, te)

	words := make([]string, 13)
	for i := range words {
		words[i] = "abandon"
	}
	_, err := c.AddKey(words)
	require.ErrorIs(t, err, ErrInvalidMnemonic)
	require.Zero(t, te.calls)

	fp, err := c.AddKey(words[:12])
	require.NoError(t, err)
	require.EqualValues(t, 112233, fp)
	require.Equal(t, 1, te.calls)

	words = append(words, make([]string, 11)...)
	_, err = c.AddKey(words)
	require.NoError(t, err)
	require.Equal(t, 2, te.calls)
}

func TestNFTGetInfo(t *testing.T) {
	te := &testExec{out: []byte(`{"nft_info": {
		"launcher_id": "0xdead", "nft_coin_id": "0xbeef", "royalty_percentage": 300,
		"chain_info": "((117))", "owner_did": null}, "success": true}`)}
	c := newTestClient(t, te)

	info, err := c.NFTGetInfo("nft1qq")
	require.NoError(t, err)
	require.Equal(t, "0xdead", info.LauncherID)
	require.EqualValues(t, 300, info.RoyaltyPercentage)
	require.Empty(t, info.OwnerDID)
	require.Equal(t, `{"coin_id":"nft1qq"}`, te.lastArgs[3])
}

func TestGetOffer(t *testing.T) {
	te := &testExec{out: []byte(`{"offer": "offer1qqqq",
		"trade_record": {"trade_id": "0xaa", "status": "PENDING_ACCEPT", "created_at_time": 1700000000},
		"success": true}`)}
	c := newTestClient(t, te)

	record, err := c.GetOffer("0xaa")
	require.NoError(t, err)
	require.Equal(t, "0xaa", record.TradeID)
	// The shareable string from the response top level lands on the record.
	require.Equal(t, "offer1qqqq", record.Offer)
}

func TestCreateOfferForIDs(t *testing.T) {
	te := &testExec{out: []byte(`{"offer": "offer1zzzz",
		"trade_record": {"trade_id": "0xbb", "status": "PENDING_ACCEPT", "is_my_offer": true},
		"success": true}`)}
	c := newTestClient(t, te)

	record, err := c.CreateOfferForIDs(&chiarpc.CreateOfferRequest{
		Offer:        map[string]int64{"1": -1000},
		ReusePuzhash: true,
	})
	require.NoError(t, err)
	require.Equal(t, "0xbb", record.TradeID)
	require.Equal(t, "offer1zzzz", record.Offer)
	require.True(t, record.IsMyOffer)
	require.Equal(t, `{"offer":{"1":-1000},"fee":0,"validate_only":false,"reuse_puzhash":true}`, te.lastArgs[3])
}

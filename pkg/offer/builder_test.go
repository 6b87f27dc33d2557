package offer

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hazeltree/chiactl/pkg/chiarpc"
	"github.com/hazeltree/chiactl/pkg/chiarpc/result"
	"github.com/stretchr/testify/require"
)

type testClient struct {
	height    uint32
	heightErr error
	nft       *result.NFTInfo
	nftErr    error
	record    *result.TradeRecord
	createErr error
	lastReq   *chiarpc.CreateOfferRequest
}

func (t *testClient) GetHeightInfo() (uint32, error) {
	return t.height, t.heightErr
}
func (t *testClient) NFTGetInfo(coinID string) (*result.NFTInfo, error) {
	return t.nft, t.nftErr
}
func (t *testClient) CreateOfferForIDs(req *chiarpc.CreateOfferRequest) (*result.TradeRecord, error) {
	t.lastReq = req
	return t.record, t.createErr
}

func TestBuildDeltas(t *testing.T) {
	b := New(new(testClient))
	require.NoError(t, b.OfferXCH(1000000000000))
	b.RequestCAT("X", 205000)

	req := b.Build()
	require.Equal(t, map[string]int64{"1": -1000000000000, "X": 205000}, req.Offer)
	require.EqualValues(t, 0, req.Fee)
	require.True(t, req.ReusePuzhash)
	require.False(t, req.ValidateOnly)

	// The last write per asset wins, there is no accumulation.
	require.NoError(t, b.OfferXCH(5))
	b.RequestCAT("X", 7)
	require.Equal(t, map[string]int64{"1": -5, "X": 7}, b.Build().Offer)

	// Build is a projection, not a snapshot transfer.
	req.Offer["Y"] = 1
	require.NotContains(t, b.Build().Offer, "Y")
}

func TestConflictingNativeDelta(t *testing.T) {
	b := New(new(testClient))
	require.NoError(t, b.OfferXCH(100))
	require.ErrorIs(t, b.RequestXCH(100), ErrConflictingDelta)

	b = New(new(testClient))
	require.NoError(t, b.RequestXCH(100))
	require.ErrorIs(t, b.OfferXCH(100), ErrConflictingDelta)
	// The original delta is untouched.
	require.Equal(t, map[string]int64{"1": 100}, b.Build().Offer)
}

func TestOptionalBounds(t *testing.T) {
	b := New(new(testClient))
	b.RequestCAT("X", 1)

	// Unset bounds must be absent from the serialized document.
	data, err := json.Marshal(b.Build())
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"min_height", "max_height", "min_time", "max_time", "driver_dict"} {
		require.NotContains(t, doc, key)
	}

	b.SetMinHeight(10)
	b.SetMaxHeight(20)
	b.SetMinTime(30)
	b.SetMaxTime(40)
	req := b.Build()
	require.EqualValues(t, 10, req.MinHeight)
	require.EqualValues(t, 20, req.MaxHeight)
	require.EqualValues(t, 30, req.MinTime)
	require.EqualValues(t, 40, req.MaxTime)
}

func TestRelativeBounds(t *testing.T) {
	tc := &testClient{height: 4000000}
	b := New(tc)

	require.NoError(t, b.TradableAfterBlocks(10))
	require.NoError(t, b.ExpireAfterBlocks(100))
	req := b.Build()
	require.EqualValues(t, 4000010, req.MinHeight)
	require.EqualValues(t, 4000100, req.MaxHeight)

	// A failed height query surfaces and leaves the bound as it was.
	tc.heightErr = errors.New("no peers")
	b = New(tc)
	require.Error(t, b.ExpireAfterBlocks(100))
	require.Zero(t, b.Build().MaxHeight)

	tc.heightErr = nil
	now := uint64(time.Now().Unix())
	b.TradableAfterMinutes(1)
	b.ExpireAfterMinutes(60)
	req = b.Build()
	require.InDelta(t, now+60, req.MinTime, 5)
	require.InDelta(t, now+3600, req.MaxTime, 5)
}

func testNFTInfo() *result.NFTInfo {
	return &result.NFTInfo{
		LauncherID:        "0xdeadbeef",
		LauncherPuzhash:   "0xfeedface",
		NFTCoinID:         "0xc01dc0ffee",
		ChainInfo:         `((117 "https://example.org/1.png") (27 32))`,
		UpdaterPuzhash:    "0xabcdef",
		OwnerDID:          "0x1234",
		RoyaltyPuzzleHash: "0x5678",
		RoyaltyPercentage: 300,
	}
}

func TestRequestNFT(t *testing.T) {
	tc := &testClient{nft: testNFTInfo()}
	b := New(tc)
	require.NoError(t, b.RequestNFT("nft1qqqq"))

	req := b.Build()
	require.Equal(t, map[string]int64{"deadbeef": 1}, req.Offer)
	require.Len(t, req.DriverDict, 1)

	entry := req.DriverDict["deadbeef"]
	require.NotNil(t, entry)
	require.Equal(t, chiarpc.DriverTypeSingleton, entry.Type)
	require.Equal(t, "0xdeadbeef", entry.LauncherID)
	require.Equal(t, "0xfeedface", entry.LauncherPH)

	meta := entry.Also
	require.NotNil(t, meta)
	require.Equal(t, chiarpc.DriverTypeMetadata, meta.Type)
	require.Equal(t, `((117 "https://example.org/1.png") (27 32))`, meta.Metadata)
	require.Equal(t, "0xabcdef", meta.UpdaterHash)

	own := meta.Also
	require.NotNil(t, own)
	require.Equal(t, chiarpc.DriverTypeOwnership, own.Type)
	require.Equal(t, "0x1234", own.Owner)

	tp := own.TransferProgram
	require.NotNil(t, tp)
	require.Equal(t, chiarpc.DriverTypeRoyalty, tp.Type)
	require.Equal(t, "0xdeadbeef", tp.LauncherID)
	require.Equal(t, "0x5678", tp.RoyaltyAddress)
	require.Equal(t, "300", tp.RoyaltyPercentage)
}

func TestOfferNFT(t *testing.T) {
	tc := &testClient{nft: testNFTInfo()}
	b := New(tc)
	require.NoError(t, b.OfferNFT("nft1qqqq"))

	// Offered NFTs get a delta but no driver dictionary.
	req := b.Build()
	require.Equal(t, map[string]int64{"deadbeef": -1}, req.Offer)
	require.Nil(t, req.DriverDict)
}

func TestNFTLookupFailure(t *testing.T) {
	tc := &testClient{nftErr: &chiarpc.Error{Endpoint: chiarpc.NFTGetInfo, Message: "coin not found"}}
	b := New(tc)

	err := b.RequestNFT("nft1bogus")
	var lookupErr *NFTLookupError
	require.ErrorAs(t, err, &lookupErr)
	require.Equal(t, "nft1bogus", lookupErr.ID)

	err = b.OfferNFT("nft1bogus")
	require.ErrorAs(t, err, &lookupErr)

	// Failed lookups record nothing.
	require.Empty(t, b.Build().Offer)
	require.Nil(t, b.Build().DriverDict)
}

func TestCreateAndShow(t *testing.T) {
	tc := &testClient{record: &result.TradeRecord{
		TradeID: "0xaa55",
		Offer:   "offer1qqqqqqqq",
		Status:  "PENDING_ACCEPT",
	}}
	b := New(tc)
	require.NoError(t, b.OfferXCH(1000))
	b.SetFee(50)
	b.ValidateOnly()

	_, err := b.Show()
	require.ErrorIs(t, err, ErrNotCreated)

	record, err := b.Create()
	require.NoError(t, err)
	require.Equal(t, tc.record, record)
	require.EqualValues(t, 50, tc.lastReq.Fee)
	require.True(t, tc.lastReq.ValidateOnly)

	// Show returns the cached record, not a fresh lookup.
	shown, err := b.Show()
	require.NoError(t, err)
	require.Same(t, record, shown)
}

func TestCreateFailure(t *testing.T) {
	walletErr := &chiarpc.Error{Endpoint: chiarpc.CreateOfferForIDs, Message: "insufficient funds"}
	tc := &testClient{createErr: walletErr}
	b := New(tc)
	require.NoError(t, b.OfferXCH(1000))

	_, err := b.Create()
	var creationErr *CreationError
	require.ErrorAs(t, err, &creationErr)
	require.ErrorIs(t, err, walletErr)

	_, err = b.Show()
	require.ErrorIs(t, err, ErrNotCreated)
}

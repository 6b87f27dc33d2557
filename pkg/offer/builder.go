/*
Package offer implements a builder for peer-to-peer trade offers.

A Builder accumulates one-sided asset deltas (offered or requested XCH, CAT
and NFT amounts), optional height/time validity bounds and, for requested
NFTs, a driver dictionary, then serializes the whole thing into the JSON
body the wallet's create_offer_for_ids endpoint requires. One Builder
produces one offer, it is owned by a single caller and is not safe for
concurrent use.
*/
package offer

import (
	"errors"
	"fmt"
	"time"

	"github.com/hazeltree/chiactl/pkg/chiarpc"
	"github.com/hazeltree/chiactl/pkg/chiarpc/result"
)

// NativeAssetID is the reserved delta-map key of the chain's native asset.
const NativeAssetID = "1"

var (
	// ErrNotCreated is returned by Show before a successful Create.
	ErrNotCreated = errors.New("offer has not been created yet")
	// ErrConflictingDelta is returned when both sides of the native asset
	// are set on one builder. The native asset shares a single reserved
	// delta key, offering and requesting it at once can't be expressed.
	ErrConflictingDelta = errors.New("native asset is already set on the other side of the offer")
)

// NFTLookupError means the wallet could not resolve an NFT id during
// OfferNFT or RequestNFT. The delta is not recorded in that case.
type NFTLookupError struct {
	ID  string
	Err error
}

// Error implements the error interface.
func (e *NFTLookupError) Error() string {
	return fmt.Sprintf("NFT %s lookup: %v", e.ID, e.Err)
}

// Unwrap implements the error wrapper interface.
func (e *NFTLookupError) Unwrap() error {
	return e.Err
}

// CreationError means the wallet rejected the offer creation request (for
// example, for insufficient balance). The wallet's message is preserved in
// the wrapped error.
type CreationError struct {
	Err error
}

// Error implements the error interface.
func (e *CreationError) Error() string {
	return fmt.Sprintf("offer creation: %v", e.Err)
}

// Unwrap implements the error wrapper interface.
func (e *CreationError) Unwrap() error {
	return e.Err
}

// Client is the subset of the wallet RPC client used by the Builder.
type Client interface {
	GetHeightInfo() (uint32, error)
	NFTGetInfo(coinID string) (*result.NFTInfo, error)
	CreateOfferForIDs(req *chiarpc.CreateOfferRequest) (*result.TradeRecord, error)
}

// Builder accumulates the terms of a single offer. The zero value is not
// usable, create instances with New.
type Builder struct {
	client Client

	deltas       map[string]int64
	driver       map[string]*chiarpc.DriverEntry
	fee          uint64
	validateOnly bool
	minHeight    uint32
	maxHeight    uint32
	minTime      uint64
	maxTime      uint64

	// nativeSide remembers which side of the trade the native asset is on,
	// both at once can't share the reserved key.
	nativeSide int
	record     *result.TradeRecord
}

// New returns an empty Builder submitting offers via the given client.
func New(client Client) *Builder {
	return &Builder{
		client: client,
		deltas: make(map[string]int64),
		driver: make(map[string]*chiarpc.DriverEntry),
	}
}

// OfferXCH puts the given amount of mojos on the offered side of the trade.
// Repeated calls overwrite the amount.
func (b *Builder) OfferXCH(amount uint64) error {
	if b.nativeSide > 0 {
		return ErrConflictingDelta
	}
	b.nativeSide = -1
	b.deltas[NativeAssetID] = -int64(amount)
	return nil
}

// RequestXCH puts the given amount of mojos on the requested side of the
// trade. Repeated calls overwrite the amount.
func (b *Builder) RequestXCH(amount uint64) error {
	if b.nativeSide < 0 {
		return ErrConflictingDelta
	}
	b.nativeSide = 1
	b.deltas[NativeAssetID] = int64(amount)
	return nil
}

// OfferCAT offers the given amount of the CAT with the given asset id. The
// last call per asset id wins.
func (b *Builder) OfferCAT(assetID string, amount uint64) {
	b.deltas[assetID] = -int64(amount)
}

// RequestCAT requests the given amount of the CAT with the given asset id.
// The last call per asset id wins.
func (b *Builder) RequestCAT(assetID string, amount uint64) {
	b.deltas[assetID] = int64(amount)
}

// OfferNFT puts the NFT with the given coin or launcher id on the offered
// side. The id is resolved through the wallet first, on lookup failure the
// delta is not recorded. No driver dictionary is built, the wallet already
// holds full info for assets it owns.
func (b *Builder) OfferNFT(id string) error {
	info, err := b.client.NFTGetInfo(id)
	if err != nil {
		return &NFTLookupError{ID: id, Err: err}
	}
	b.deltas[stripPrefix(info.LauncherID)] = -1
	return nil
}

// RequestNFT puts the NFT with the given coin or launcher id on the
// requested side and builds its driver dictionary entry from the wallet's
// lookup result. On lookup failure neither is recorded.
func (b *Builder) RequestNFT(id string) error {
	info, err := b.client.NFTGetInfo(id)
	if err != nil {
		return &NFTLookupError{ID: id, Err: err}
	}
	launcher := stripPrefix(info.LauncherID)
	b.deltas[launcher] = 1
	b.driver[launcher] = driverEntry(info)
	return nil
}

// SetFee sets the fee paid in native mojos on top of the trade.
func (b *Builder) SetFee(fee uint64) {
	b.fee = fee
}

// ValidateOnly makes Create ask for a dry-run validation instead of a real
// offer.
func (b *Builder) ValidateOnly() {
	b.validateOnly = true
}

// SetMinHeight sets the block height before which the offer can't be taken.
// 0 means unset.
func (b *Builder) SetMinHeight(height uint32) {
	b.minHeight = height
}

// SetMaxHeight sets the block height after which the offer expires. 0 means
// unset.
func (b *Builder) SetMaxHeight(height uint32) {
	b.maxHeight = height
}

// SetMinTime sets the Unix time before which the offer can't be taken. 0
// means unset.
func (b *Builder) SetMinTime(t uint64) {
	b.minTime = t
}

// SetMaxTime sets the Unix time after which the offer expires. 0 means
// unset.
func (b *Builder) SetMaxTime(t uint64) {
	b.maxTime = t
}

// TradableAfterBlocks makes the offer takeable only n blocks after the
// current height. On a failed height query the bound is left unset.
func (b *Builder) TradableAfterBlocks(n uint32) error {
	height, err := b.client.GetHeightInfo()
	if err != nil {
		return err
	}
	b.minHeight = height + n
	return nil
}

// ExpireAfterBlocks makes the offer expire n blocks after the current
// height. On a failed height query the bound is left unset.
func (b *Builder) ExpireAfterBlocks(n uint32) error {
	height, err := b.client.GetHeightInfo()
	if err != nil {
		return err
	}
	b.maxHeight = height + n
	return nil
}

// TradableAfterMinutes makes the offer takeable only n minutes from now.
func (b *Builder) TradableAfterMinutes(n uint32) {
	b.minTime = uint64(time.Now().Add(time.Duration(n) * time.Minute).Unix())
}

// ExpireAfterMinutes makes the offer expire n minutes from now.
func (b *Builder) ExpireAfterMinutes(n uint32) {
	b.maxTime = uint64(time.Now().Add(time.Duration(n) * time.Minute).Unix())
}

// Build assembles the create_offer_for_ids body from the accumulated state.
// It performs no I/O and can be called repeatedly, it always reflects the
// current state. Optional fields are included only when set.
func (b *Builder) Build() *chiarpc.CreateOfferRequest {
	req := &chiarpc.CreateOfferRequest{
		Offer:        make(map[string]int64, len(b.deltas)),
		Fee:          b.fee,
		ValidateOnly: b.validateOnly,
		ReusePuzhash: true,
		MinHeight:    b.minHeight,
		MaxHeight:    b.maxHeight,
		MinTime:      b.minTime,
		MaxTime:      b.maxTime,
	}
	for id, amount := range b.deltas {
		req.Offer[id] = amount
	}
	if len(b.driver) > 0 {
		req.DriverDict = make(map[string]*chiarpc.DriverEntry, len(b.driver))
		for id, entry := range b.driver {
			req.DriverDict[id] = entry
		}
	}
	return req
}

// Create submits the built offer to the wallet and caches the resulting
// trade record. The wallet locks up the offered coins as a side effect, so
// the call is not idempotent.
func (b *Builder) Create() (*result.TradeRecord, error) {
	record, err := b.client.CreateOfferForIDs(b.Build())
	if err != nil {
		return nil, &CreationError{Err: err}
	}
	b.record = record
	return record, nil
}

// Show returns the trade record cached by the last successful Create
// without asking the wallet again.
func (b *Builder) Show() (*result.TradeRecord, error) {
	if b.record == nil {
		return nil, ErrNotCreated
	}
	return b.record, nil
}

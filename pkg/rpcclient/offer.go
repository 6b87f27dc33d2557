package rpcclient

import (
	"github.com/hazeltree/chiactl/pkg/chiarpc"
	"github.com/hazeltree/chiactl/pkg/chiarpc/result"
)

// OffersFilter narrows down the set of trade records returned by
// GetAllOffers.
type OffersFilter struct {
	Start              uint32 `json:"start"`
	End                uint32 `json:"end"`
	ExcludeMyOffers    bool   `json:"exclude_my_offers"`
	ExcludeTakenOffers bool   `json:"exclude_taken_offers"`
	IncludeCompleted   bool   `json:"include_completed"`
	Reverse            bool   `json:"reverse"`
}

// GetAllOffers lists the wallet's trade records matching the filter.
func (c *Client) GetAllOffers(filter OffersFilter) ([]result.TradeRecord, error) {
	var resp struct {
		chiarpc.Header
		TradeRecords []result.TradeRecord `json:"trade_records"`
	}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.GetAllOffers, filter, &resp); err != nil {
		return nil, err
	}
	return resp.TradeRecords, nil
}

// GetOffer returns a single trade record by trade id, including the
// shareable offer string.
func (c *Client) GetOffer(tradeID string) (*result.TradeRecord, error) {
	var resp struct {
		chiarpc.Header
		Offer       string             `json:"offer"`
		TradeRecord result.TradeRecord `json:"trade_record"`
	}
	params := map[string]any{"trade_id": tradeID, "file_contents": true}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.GetOffer, params, &resp); err != nil {
		return nil, err
	}
	resp.TradeRecord.Offer = resp.Offer
	return &resp.TradeRecord, nil
}

// CancelOffer cancels the offer with the given trade id. With secure set
// the cancellation is performed on-chain by spending the offered coins
// (paying the given fee), otherwise it's a wallet-local cancellation.
func (c *Client) CancelOffer(tradeID string, fee uint64, secure bool) error {
	params := map[string]any{"trade_id": tradeID, "fee": fee, "secure": secure}
	return c.Invoke(chiarpc.CategoryWallet, chiarpc.CancelOffer, params, nil)
}

// GetOfferSummary inspects an offer string without accepting it.
func (c *Client) GetOfferSummary(offer string) (*result.OfferSummary, error) {
	var resp struct {
		chiarpc.Header
		Summary result.OfferSummary `json:"summary"`
	}
	params := map[string]any{"offer": offer}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.GetOfferSummary, params, &resp); err != nil {
		return nil, err
	}
	return &resp.Summary, nil
}

// CreateOfferForIDs submits an assembled offer request to the wallet. The
// returned trade record carries the shareable offer string. This call asks
// the wallet to lock up the offered coins, it is not idempotent.
func (c *Client) CreateOfferForIDs(req *chiarpc.CreateOfferRequest) (*result.TradeRecord, error) {
	var resp struct {
		chiarpc.Header
		Offer       string             `json:"offer"`
		TradeRecord result.TradeRecord `json:"trade_record"`
	}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.CreateOfferForIDs, req, &resp); err != nil {
		return nil, err
	}
	resp.TradeRecord.Offer = resp.Offer
	return &resp.TradeRecord, nil
}

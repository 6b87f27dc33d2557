package rpcclient

import (
	"time"

	"github.com/hazeltree/chiactl/pkg/chiarpc"
	"github.com/hazeltree/chiactl/pkg/chiarpc/result"
)

// GetHeightInfo returns the current chain height as seen by the wallet.
func (c *Client) GetHeightInfo() (uint32, error) {
	var resp struct {
		chiarpc.Header
		result.HeightInfo
	}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.GetHeightInfo, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Height, nil
}

// GetNetworkInfo returns the name and the address prefix of the network the
// wallet is connected to.
func (c *Client) GetNetworkInfo() (*result.NetworkInfo, error) {
	var resp struct {
		chiarpc.Header
		result.NetworkInfo
	}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.GetNetworkInfo, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.NetworkInfo, nil
}

// GetSyncStatus returns the wallet's synchronization state.
func (c *Client) GetSyncStatus() (*result.SyncStatus, error) {
	var resp struct {
		chiarpc.Header
		result.SyncStatus
	}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.GetSyncStatus, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.SyncStatus, nil
}

// GetTimestampForHeight returns the Unix timestamp of the block at the
// given height.
func (c *Client) GetTimestampForHeight(height uint32) (uint64, error) {
	var resp struct {
		chiarpc.Header
		Timestamp uint64 `json:"timestamp"`
	}
	params := map[string]any{"height": height}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.GetTimestampForHeight, params, &resp); err != nil {
		return 0, err
	}
	return resp.Timestamp, nil
}

// GetTimeForHeight is GetTimestampForHeight with the result converted to
// the local time zone.
func (c *Client) GetTimeForHeight(height uint32) (time.Time, error) {
	ts, err := c.GetTimestampForHeight(height)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(ts), 0).Local(), nil
}

// PushTX submits a signed spend bundle to the network and returns the
// wallet's status string.
func (c *Client) PushTX(spendBundle any) (string, error) {
	var resp struct {
		chiarpc.Header
		Status string `json:"status"`
	}
	params := map[string]any{"spend_bundle": spendBundle}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.PushTX, params, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// GetWallets lists all wallets of the active key.
func (c *Client) GetWallets() ([]result.Wallet, error) {
	return c.getWallets(nil)
}

// GetWalletsByType lists the wallets of the given type only.
func (c *Client) GetWalletsByType(typ uint8) ([]result.Wallet, error) {
	return c.getWallets(map[string]any{"type": typ})
}

func (c *Client) getWallets(params map[string]any) ([]result.Wallet, error) {
	var resp struct {
		chiarpc.Header
		Wallets []result.Wallet `json:"wallets"`
	}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.GetWallets, params, &resp); err != nil {
		return nil, err
	}
	return resp.Wallets, nil
}

// CreateCATWallet registers an existing CAT for tracking under the given
// name and returns the id of the new wallet.
func (c *Client) CreateCATWallet(assetID, name string) (uint32, error) {
	var resp struct {
		chiarpc.Header
		WalletID uint32 `json:"wallet_id"`
	}
	params := map[string]any{
		"wallet_type": "cat_wallet",
		"mode":        "existing",
		"asset_id":    assetID,
		"name":        name,
	}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.CreateNewWallet, params, &resp); err != nil {
		return 0, err
	}
	return resp.WalletID, nil
}

// GetAutoClaim returns the wallet's auto-claim settings.
func (c *Client) GetAutoClaim() (*result.AutoClaimSettings, error) {
	var resp struct {
		chiarpc.Header
		result.AutoClaimSettings
	}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.GetAutoClaim, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.AutoClaimSettings, nil
}

// SetAutoClaim updates the wallet's auto-claim settings and returns the
// settings now in effect.
func (c *Client) SetAutoClaim(settings result.AutoClaimSettings) (*result.AutoClaimSettings, error) {
	var resp struct {
		chiarpc.Header
		result.AutoClaimSettings
	}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.SetAutoClaim, settings, &resp); err != nil {
		return nil, err
	}
	return &resp.AutoClaimSettings, nil
}

package rpcclient

import (
	"github.com/hazeltree/chiactl/pkg/chiarpc"
	"github.com/hazeltree/chiactl/pkg/chiarpc/result"
)

// NFTGetInfo looks up the on-chain info of an NFT by its coin or launcher
// id.
func (c *Client) NFTGetInfo(coinID string) (*result.NFTInfo, error) {
	var resp struct {
		chiarpc.Header
		NFTInfo result.NFTInfo `json:"nft_info"`
	}
	params := map[string]any{"coin_id": coinID}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.NFTGetInfo, params, &resp); err != nil {
		return nil, err
	}
	return &resp.NFTInfo, nil
}

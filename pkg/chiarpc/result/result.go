/*
Package result contains typed results of the wallet RPC endpoints. Field
names mirror the wallet's wire format exactly, responses are decoded into
these structs as is.
*/
package result

// HeightInfo is the result of the get_height_info call.
type HeightInfo struct {
	Height uint32 `json:"height"`
}

// NetworkInfo is the result of the get_network_info call.
type NetworkInfo struct {
	NetworkName   string `json:"network_name"`
	NetworkPrefix string `json:"network_prefix"`
}

// SyncStatus is the result of the get_sync_status call.
type SyncStatus struct {
	GenesisInitialized bool `json:"genesis_initialized"`
	Synced             bool `json:"synced"`
	Syncing            bool `json:"syncing"`
}

// Wallet describes a single wallet entry returned by get_wallets.
type Wallet struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
	Type uint8  `json:"type"`
	Data string `json:"data"`
}

// KeyInfo is the result of the check_delete_key call. It tells whether the
// key in question is safe to delete.
type KeyInfo struct {
	Fingerprint          uint32 `json:"fingerprint"`
	UsedForFarmerRewards bool   `json:"used_for_farmer_rewards"`
	UsedForPoolRewards   bool   `json:"used_for_pool_rewards"`
	WalletBalance        bool   `json:"wallet_balance"`
}

// PrivateKey is the result of the get_private_key call.
type PrivateKey struct {
	Fingerprint uint32 `json:"fingerprint"`
	SK          string `json:"sk"`
	PK          string `json:"pk"`
	FarmerPK    string `json:"farmer_pk"`
	PoolPK      string `json:"pool_pk"`
	Seed        string `json:"seed"`
}

// AutoClaimSettings is both the argument of set_auto_claim and the result of
// get_auto_claim.
type AutoClaimSettings struct {
	Enabled   bool   `json:"enabled"`
	TxFee     uint64 `json:"tx_fee"`
	MinAmount uint64 `json:"min_amount"`
	BatchSize uint16 `json:"batch_size"`
}

// NFTInfo is the result of the nft_get_info call. ChainInfo carries the
// on-chain metadata blob as a string, OwnerDID and MinterDID may be empty
// when the NFT has no owning or minting DID.
type NFTInfo struct {
	LauncherID         string   `json:"launcher_id"`
	LauncherPuzhash    string   `json:"launcher_puzhash"`
	NFTCoinID          string   `json:"nft_coin_id"`
	ChainInfo          string   `json:"chain_info"`
	UpdaterPuzhash     string   `json:"updater_puzhash"`
	OwnerDID           string   `json:"owner_did"`
	MinterDID          string   `json:"minter_did"`
	RoyaltyPuzzleHash  string   `json:"royalty_puzzle_hash"`
	RoyaltyPercentage  uint16   `json:"royalty_percentage"`
	DataURIs           []string `json:"data_uris"`
	DataHash           string   `json:"data_hash"`
	MetadataURIs       []string `json:"metadata_uris"`
	MetadataHash       string   `json:"metadata_hash"`
	LicenseURIs        []string `json:"license_uris"`
	LicenseHash        string   `json:"license_hash"`
	EditionNumber      uint64   `json:"edition_number"`
	EditionTotal       uint64   `json:"edition_total"`
	MintHeight         uint32   `json:"mint_height"`
	SupportsDID        bool     `json:"supports_did"`
	P2Address          string   `json:"p2_address"`
	PendingTransaction bool     `json:"pending_transaction"`
}

// TradeRecord is the wallet's bookkeeping entry for a created or received
// offer. Offer carries the shareable offer string when the wallet returned
// one along with the record.
type TradeRecord struct {
	TradeID          string `json:"trade_id"`
	Offer            string `json:"offer,omitempty"`
	Status           string `json:"status"`
	CreatedAtTime    uint64 `json:"created_at_time"`
	AcceptedAtTime   uint64 `json:"accepted_at_time"`
	ConfirmedAtIndex uint32 `json:"confirmed_at_index"`
	Sent             uint32 `json:"sent"`
	IsMyOffer        bool   `json:"is_my_offer"`
}

// OfferSummary is the result of the get_offer_summary call. Offered and
// requested amounts are keyed by asset id ("xch" for the native asset).
type OfferSummary struct {
	Offered   map[string]uint64         `json:"offered"`
	Requested map[string]uint64         `json:"requested"`
	Fees      uint64                    `json:"fees"`
	Infos     map[string]map[string]any `json:"infos"`
}

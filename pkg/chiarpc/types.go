/*
Package chiarpc contains a set of types used for RPC communication with the
external Chia wallet process. It defines the response envelope shared by all
wallet endpoints, the closed set of RPC categories this client is allowed to
talk to and the errors the transport layer can produce.
*/
package chiarpc

// Category is a section of the wallet CLI's RPC surface. The wallet binary
// exposes several of them (full_node, farmer, wallet, ...), but this client
// deliberately talks to the wallet section only.
type Category string

// CategoryWallet is the only category supported by this client.
const CategoryWallet Category = "wallet"

// Valid tells whether the category belongs to the supported set.
func (c Category) Valid() bool {
	return c == CategoryWallet
}

// Endpoint names of the wallet RPC surface consumed by this client. The
// names are fixed by the wallet's published RPC schema.
const (
	AddKey                 = "add_key"
	CheckDeleteKey         = "check_delete_key"
	DeleteKey              = "delete_key"
	GenerateMnemonic       = "generate_mnemonic"
	GetLoggedInFingerprint = "get_logged_in_fingerprint"
	GetPrivateKey          = "get_private_key"
	GetPublicKeys          = "get_public_keys"
	LogIn                  = "log_in"
	GetAutoClaim           = "get_auto_claim"
	SetAutoClaim           = "set_auto_claim"
	GetHeightInfo          = "get_height_info"
	GetNetworkInfo         = "get_network_info"
	GetSyncStatus          = "get_sync_status"
	GetTimestampForHeight  = "get_timestamp_for_height"
	PushTX                 = "push_tx"
	CreateNewWallet        = "create_new_wallet"
	GetWallets             = "get_wallets"
	NFTGetInfo             = "nft_get_info"
	GetAllOffers           = "get_all_offers"
	GetOffer               = "get_offer"
	CancelOffer            = "cancel_offer"
	GetOfferSummary        = "get_offer_summary"
	CreateOfferForIDs      = "create_offer_for_ids"
)

// Header is the response envelope every wallet endpoint returns along with
// its endpoint-specific payload. Typed results embed it.
type Header struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

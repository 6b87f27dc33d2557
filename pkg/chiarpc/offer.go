package chiarpc

// CreateOfferRequest is the body of the create_offer_for_ids call. Optional
// bounds are serialized only when set, 0 is not a valid height or timestamp
// in this context.
type CreateOfferRequest struct {
	// Offer maps asset ids to signed mojo amounts, negative for offered
	// assets and positive for requested ones. "1" is the native asset.
	Offer        map[string]int64        `json:"offer"`
	Fee          uint64                  `json:"fee"`
	ValidateOnly bool                    `json:"validate_only"`
	ReusePuzhash bool                    `json:"reuse_puzhash"`
	DriverDict   map[string]*DriverEntry `json:"driver_dict,omitempty"`
	MinHeight    uint32                  `json:"min_height,omitempty"`
	MaxHeight    uint32                  `json:"max_height,omitempty"`
	MinTime      uint64                  `json:"min_time,omitempty"`
	MaxTime      uint64                  `json:"max_time,omitempty"`
}

// Driver dictionary level type tags, fixed by the wallet's offer-driver
// schema.
const (
	DriverTypeSingleton = "singleton"
	DriverTypeMetadata  = "metadata"
	DriverTypeOwnership = "ownership"
	DriverTypeRoyalty   = "royalty transfer program"
)

// DriverEntry is the top (singleton) level of an NFT driver dictionary. The
// whole four-level structure tells the wallet how to interpret a requested
// NFT and is reproduced field-for-field from the wallet's schema.
type DriverEntry struct {
	Type       string          `json:"type"`
	LauncherID string          `json:"launcher_id"`
	LauncherPH string          `json:"launcher_ph"`
	Also       *MetadataDriver `json:"also"`
}

// MetadataDriver is the metadata level of a driver dictionary, carrying the
// on-chain metadata blob and the updater puzzle hash.
type MetadataDriver struct {
	Type        string           `json:"type"`
	Metadata    string           `json:"metadata"`
	UpdaterHash string           `json:"updater_hash"`
	Also        *OwnershipDriver `json:"also"`
}

// OwnershipDriver is the ownership level of a driver dictionary. Owner is
// passed through as reported by the wallet and may be empty for NFTs
// without an owning DID.
type OwnershipDriver struct {
	Type            string           `json:"type"`
	Owner           string           `json:"owner"`
	TransferProgram *TransferProgram `json:"transfer_program"`
}

// TransferProgram is the royalty-transfer-program level of a driver
// dictionary. RoyaltyPercentage is a string on the wire.
type TransferProgram struct {
	Type              string `json:"type"`
	LauncherID        string `json:"launcher_id"`
	RoyaltyAddress    string `json:"royalty_address"`
	RoyaltyPercentage string `json:"royalty_percentage"`
}

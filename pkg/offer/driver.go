package offer

import (
	"strconv"
	"strings"

	"github.com/hazeltree/chiactl/pkg/chiarpc"
	"github.com/hazeltree/chiactl/pkg/chiarpc/result"
)

// stripPrefix removes the hex prefix from an on-chain identifier, the
// driver dictionary is keyed by bare launcher ids.
func stripPrefix(id string) string {
	return strings.TrimPrefix(id, "0x")
}

// driverEntry builds the four-level driver dictionary entry (singleton ->
// metadata -> ownership -> royalty transfer program) for a requested NFT
// from its lookup result. Fields are passed through as reported by the
// wallet, Owner in particular may be empty for NFTs without an owning DID.
func driverEntry(info *result.NFTInfo) *chiarpc.DriverEntry {
	return &chiarpc.DriverEntry{
		Type:       chiarpc.DriverTypeSingleton,
		LauncherID: info.LauncherID,
		LauncherPH: info.LauncherPuzhash,
		Also: &chiarpc.MetadataDriver{
			Type:        chiarpc.DriverTypeMetadata,
			Metadata:    info.ChainInfo,
			UpdaterHash: info.UpdaterPuzhash,
			Also: &chiarpc.OwnershipDriver{
				Type:  chiarpc.DriverTypeOwnership,
				Owner: info.OwnerDID,
				TransferProgram: &chiarpc.TransferProgram{
					Type:              chiarpc.DriverTypeRoyalty,
					LauncherID:        info.LauncherID,
					RoyaltyAddress:    info.RoyaltyPuzzleHash,
					RoyaltyPercentage: strconv.FormatUint(uint64(info.RoyaltyPercentage), 10),
				},
			},
		},
	}
}

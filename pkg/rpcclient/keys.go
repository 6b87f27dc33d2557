package rpcclient

import (
	"errors"
	"fmt"

	"github.com/hazeltree/chiactl/pkg/chiarpc"
	"github.com/hazeltree/chiactl/pkg/chiarpc/result"
)

// ErrInvalidMnemonic is returned by AddKey before any RPC call when the
// mnemonic word count is neither 12 nor 24.
var ErrInvalidMnemonic = errors.New("mnemonic must contain 12 or 24 words")

// GenerateMnemonic asks the wallet for a fresh 24-word mnemonic. The key is
// not added to the keychain by this call.
func (c *Client) GenerateMnemonic() ([]string, error) {
	var resp struct {
		chiarpc.Header
		Mnemonic []string `json:"mnemonic"`
	}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.GenerateMnemonic, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Mnemonic, nil
}

// AddKey adds a key derived from the given mnemonic to the wallet keychain
// and returns its fingerprint.
func (c *Client) AddKey(mnemonic []string) (uint32, error) {
	if l := len(mnemonic); l != 12 && l != 24 {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidMnemonic, l)
	}
	var resp struct {
		chiarpc.Header
		Fingerprint uint32 `json:"fingerprint"`
	}
	params := map[string]any{"mnemonic": mnemonic}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.AddKey, params, &resp); err != nil {
		return 0, err
	}
	return resp.Fingerprint, nil
}

// CheckDeleteKey reports whether the key with the given fingerprint is used
// for farmer or pool rewards or still holds a balance, i.e. whether it is
// safe to delete.
func (c *Client) CheckDeleteKey(fingerprint uint32) (*result.KeyInfo, error) {
	var resp struct {
		chiarpc.Header
		result.KeyInfo
	}
	params := map[string]any{"fingerprint": fingerprint}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.CheckDeleteKey, params, &resp); err != nil {
		return nil, err
	}
	return &resp.KeyInfo, nil
}

// DeleteKey removes the key with the given fingerprint from the keychain.
func (c *Client) DeleteKey(fingerprint uint32) error {
	params := map[string]any{"fingerprint": fingerprint}
	return c.Invoke(chiarpc.CategoryWallet, chiarpc.DeleteKey, params, nil)
}

// GetLoggedInFingerprint returns the fingerprint of the currently selected
// key.
func (c *Client) GetLoggedInFingerprint() (uint32, error) {
	var resp struct {
		chiarpc.Header
		Fingerprint uint32 `json:"fingerprint"`
	}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.GetLoggedInFingerprint, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Fingerprint, nil
}

// GetPrivateKey returns the private key material for the given fingerprint.
func (c *Client) GetPrivateKey(fingerprint uint32) (*result.PrivateKey, error) {
	var resp struct {
		chiarpc.Header
		PrivateKey result.PrivateKey `json:"private_key"`
	}
	params := map[string]any{"fingerprint": fingerprint}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.GetPrivateKey, params, &resp); err != nil {
		return nil, err
	}
	return &resp.PrivateKey, nil
}

// GetPublicKeys returns the fingerprints of all keys in the keychain.
func (c *Client) GetPublicKeys() ([]uint32, error) {
	var resp struct {
		chiarpc.Header
		Fingerprints []uint32 `json:"public_key_fingerprints"`
	}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.GetPublicKeys, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Fingerprints, nil
}

// LogIn selects the key with the given fingerprint as the active one.
func (c *Client) LogIn(fingerprint uint32) (uint32, error) {
	var resp struct {
		chiarpc.Header
		Fingerprint uint32 `json:"fingerprint"`
	}
	params := map[string]any{"fingerprint": fingerprint}
	if err := c.Invoke(chiarpc.CategoryWallet, chiarpc.LogIn, params, &resp); err != nil {
		return 0, err
	}
	return resp.Fingerprint, nil
}

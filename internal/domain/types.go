package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Network represents the ledger network identifier
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkPreprod Network = "preprod"
)

// IsValidNetwork checks if a network is valid
func IsValidNetwork(network Network) bool {
	return network == NetworkMainnet || network == NetworkPreprod
}

// AssetID is the canonical on-chain asset unit: the 56-hex-char minting
// policy ID immediately followed by the hex-encoded asset name.
type AssetID string

// StakeKey is a wallet-level identity controlling one or more payment
// addresses; holdings are grouped under it.
type StakeKey string

var (
	policyPattern   = regexp.MustCompile(`^[0-9a-f]{56}$`)
	hexNamePattern  = regexp.MustCompile(`^[0-9a-f]{0,64}$`)
	poolIDPattern   = regexp.MustCompile(`^pool1[02-9ac-hj-np-z]{10,}$`)
	txHashPattern   = regexp.MustCompile(`^[0-9a-f]{64}$`)
	stakeKeyPattern = regexp.MustCompile(`^stake1[02-9ac-hj-np-z]{10,}$`)
)

// String returns the string representation of the AssetID
func (a AssetID) String() string {
	return string(a)
}

// Parse splits the AssetID into its policy ID and hex-encoded asset name
func (a AssetID) Parse() (policyID string, assetName string) {
	s := string(a)
	if len(s) < 56 {
		return s, ""
	}
	return s[:56], s[56:]
}

// Valid checks if the AssetID is well-formed
func (a AssetID) Valid() bool {
	policyID, assetName := a.Parse()
	return policyPattern.MatchString(policyID) && hexNamePattern.MatchString(assetName)
}

// PolicyID is the minting policy prefix shared by all units of a collection
func (a AssetID) PolicyID() string {
	policyID, _ := a.Parse()
	return policyID
}

// NewAssetID creates a new AssetID from a policy ID and hex asset name
func NewAssetID(policyID string, assetName string) AssetID {
	return AssetID(fmt.Sprintf("%s%s", policyID, assetName))
}

// Valid checks if the stake key is well-formed
func (k StakeKey) Valid() bool {
	return stakeKeyPattern.MatchString(string(k))
}

// String returns the string representation of the StakeKey
func (k StakeKey) String() string {
	return string(k)
}

// ValidPoolID checks if a pool ID is well-formed
func ValidPoolID(poolID string) bool {
	return poolIDPattern.MatchString(poolID)
}

// ValidTxHash checks if a transaction hash is well-formed
func ValidTxHash(txHash string) bool {
	return txHashPattern.MatchString(strings.ToLower(txHash))
}

// ValidAddress checks if a payment address is plausibly well-formed.
// Only the prefix is checked; full bech32 validation is left to the ledger.
func ValidAddress(address string) bool {
	return strings.HasPrefix(address, "addr1") || strings.HasPrefix(address, "addr_test1")
}

// Owner is a read-only view of one asset holding grouped under a stake key.
// Quantity is the sum across the listed addresses for a single asset.
type Owner struct {
	StakeKey  StakeKey `json:"stakeKey"`
	Quantity  uint64   `json:"quantity"`
	Addresses []string `json:"addresses"`
}

// AssetInfo describes an asset's resolved identity. Decimals and Ticker
// come from the registry, falling back to on-chain metadata, falling back
// to zero/empty. Never mutated once resolved.
type AssetInfo struct {
	AssetID  AssetID `json:"assetId"`
	Fungible bool    `json:"fungible"`
	Decimals int     `json:"decimals"`
	Ticker   string  `json:"ticker"`
}

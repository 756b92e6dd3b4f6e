package ledger

// AssetHolder is one raw (address, quantity) tuple from the asset
// holder listing. Quantity is the upstream string representation.
type AssetHolder struct {
	Address  string `json:"address"`
	Quantity string `json:"quantity"`
}

// AddressInfo is the reverse resolution of a payment address
type AddressInfo struct {
	Address  string  `json:"address"`
	StakeKey *string `json:"stake_address"`
	IsScript bool    `json:"script"`
}

// Delegator is one delegator of a stake pool
type Delegator struct {
	Address   string `json:"address"`
	LiveStake string `json:"live_stake"`
}

// Transaction is a ledger transaction lookup result. A nil Block means
// the transaction has not been included in a block yet; Block presence
// is the sole finality signal.
type Transaction struct {
	Hash        string  `json:"hash"`
	Block       *string `json:"block"`
	BlockHeight *uint64 `json:"block_height"`
	BlockTime   *int64  `json:"block_time"`
	Slot        *uint64 `json:"slot"`
}

// Confirmed reports whether the transaction is included in a block
func (t *Transaction) Confirmed() bool {
	return t.Block != nil && *t.Block != ""
}

// UTXOAmount is one unit/quantity pair inside a transaction output
type UTXOAmount struct {
	Unit     string `json:"unit"`
	Quantity string `json:"quantity"`
}

// UTXOInput is a consumed output of a transaction
type UTXOInput struct {
	Address     string       `json:"address"`
	Amount      []UTXOAmount `json:"amount"`
	TxHash      string       `json:"tx_hash"`
	OutputIndex int          `json:"output_index"`
}

// UTXOOutput is a produced output of a transaction
type UTXOOutput struct {
	Address     string       `json:"address"`
	Amount      []UTXOAmount `json:"amount"`
	OutputIndex int          `json:"output_index"`
}

// TransactionUTXOs is the full UTXO breakdown of a transaction
type TransactionUTXOs struct {
	Hash    string       `json:"hash"`
	Inputs  []UTXOInput  `json:"inputs"`
	Outputs []UTXOOutput `json:"outputs"`
}

// EpochInfo holds epoch boundaries as reported by the upstream,
// second-grained unix timestamps
type EpochInfo struct {
	Epoch     uint64 `json:"epoch"`
	StartTime int64  `json:"start_time"`
	EndTime   int64  `json:"end_time"`
}

// assetDetails is the upstream asset lookup response. Metadata is the
// registry entry, OnchainMetadata the raw minting metadata; either may
// be absent.
type assetDetails struct {
	Asset    string `json:"asset"`
	Quantity string `json:"quantity"`
	Metadata *struct {
		Ticker   *string `json:"ticker"`
		Decimals *int    `json:"decimals"`
	} `json:"metadata"`
	OnchainMetadata *struct {
		Ticker   *string `json:"ticker"`
		Decimals *int    `json:"decimals"`
	} `json:"onchain_metadata"`
}

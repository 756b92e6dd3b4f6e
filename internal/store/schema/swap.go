package schema

import (
	"time"

	"gorm.io/datatypes"
)

// SwapState is the explicit lifecycle tag of a swap. It is persisted
// alongside the legacy nullable tx-hash columns so the two encodings
// can be cross-checked during migration.
type SwapState string

const (
	// SwapStateAwaitingDeposit means no deposit has been confirmed yet
	SwapStateAwaitingDeposit SwapState = "awaiting_deposit"
	// SwapStateDeposited means the counterparty's deposit is confirmed
	// but the withdrawal has not been issued
	SwapStateDeposited SwapState = "deposited"
	// SwapStateWithdrawn is terminal; the record persists
	SwapStateWithdrawn SwapState = "withdrawn"
)

// Swap represents the swaps table - one time-boxed two-sided escrow
// exchange, owned end-to-end by the escrow sweep (create through delete)
type Swap struct {
	// ID is the swap record UUID
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// State is the explicit lifecycle tag
	State SwapState `gorm:"column:state;not null;type:text;index:idx_swaps_state_created,priority:1"`
	// AssetID is the escrowed asset unit
	AssetID string `gorm:"column:asset_id;not null;type:text"`
	// CollectionID is the policy ID of the escrowed asset's collection
	CollectionID string `gorm:"column:collection_id;not null;type:text"`
	// EscrowAddress is the custodial address the deposit must pay
	EscrowAddress string `gorm:"column:escrow_address;not null;type:text"`
	// CounterpartyAddress receives the withdrawal
	CounterpartyAddress string `gorm:"column:counterparty_address;not null;type:text"`
	// ClaimedDepositTxHash is the deposit hash reported by the
	// counterparty, pending confirmation
	ClaimedDepositTxHash *string `gorm:"column:claimed_deposit_tx_hash;type:text"`
	// DepositTxHash is set once the deposit is confirmed on-chain
	DepositTxHash *string `gorm:"column:deposit_tx_hash;type:text"`
	// WithdrawTxHash is set once the withdrawal is submitted
	WithdrawTxHash *string `gorm:"column:withdraw_tx_hash;type:text"`
	// Counterpart holds the counterparty's side of the exchange
	Counterpart datatypes.JSON `gorm:"column:counterpart;type:jsonb"`
	// SettlingAt is the settlement lease timestamp; a claim older than
	// the lease window is considered abandoned and may be re-taken
	SettlingAt *time.Time `gorm:"column:settling_at"`
	// CreatedAt anchors the wait window
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();index:idx_swaps_state_created,priority:2"`
}

// TableName specifies the table name for the Swap model
func (Swap) TableName() string {
	return "swaps"
}

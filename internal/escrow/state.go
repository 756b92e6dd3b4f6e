package escrow

import (
	"fmt"

	"github.com/stakegate/ledgersync/internal/domain"
	"github.com/stakegate/ledgersync/internal/store/schema"
)

// Event is something that happened to a swap and may move it to a new state.
type Event string

const (
	// EventDepositConfirmed fires once the counterparty's deposit
	// transaction is confirmed and verified to pay the escrow address.
	EventDepositConfirmed Event = "deposit_confirmed"
	// EventWithdrawalSubmitted fires once the settlement service accepted
	// the withdrawal for the swap.
	EventWithdrawalSubmitted Event = "withdrawal_submitted"
	// EventExpired fires when a swap outlives its wait window without a
	// confirmed deposit.
	EventExpired Event = "expired"
)

// SwapStateExpired marks a swap scheduled for deletion. It is a transition
// result only and is never persisted.
const SwapStateExpired schema.SwapState = "expired"

// Transition returns the state a swap moves to when event fires in state.
// Any pairing not listed below returns domain.ErrInvalidTransition.
func Transition(state schema.SwapState, event Event) (schema.SwapState, error) {
	switch {
	case state == schema.SwapStateAwaitingDeposit && event == EventDepositConfirmed:
		return schema.SwapStateDeposited, nil
	case state == schema.SwapStateAwaitingDeposit && event == EventExpired:
		return SwapStateExpired, nil
	case state == schema.SwapStateDeposited && event == EventWithdrawalSubmitted:
		return schema.SwapStateWithdrawn, nil
	default:
		return state, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, state, event)
	}
}

// DeriveState reconstructs a swap's state from the legacy tx-hash columns.
// Rows written before the state column existed carry an empty state.
func DeriveState(depositTxHash, withdrawTxHash *string) schema.SwapState {
	switch {
	case withdrawTxHash != nil && *withdrawTxHash != "":
		return schema.SwapStateWithdrawn
	case depositTxHash != nil && *depositTxHash != "":
		return schema.SwapStateDeposited
	default:
		return schema.SwapStateAwaitingDeposit
	}
}

// EffectiveState prefers the persisted state and falls back to deriving it
// from the tx-hash columns for legacy rows.
func EffectiveState(s *schema.Swap) schema.SwapState {
	if s.State != "" {
		return s.State
	}
	return DeriveState(s.DepositTxHash, s.WithdrawTxHash)
}

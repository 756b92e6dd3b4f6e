package domain

import "time"

const (
	// Pagination constants
	DEFAULT_PAGE_SIZE = 100
	ORDER_ASC         = "asc"
	ORDER_DESC        = "desc"

	// Escrow constants
	SWAP_WAIT_WINDOW = 900000 * time.Millisecond

	// Ledger constants
	LOVELACE_UNIT = "lovelace"
)

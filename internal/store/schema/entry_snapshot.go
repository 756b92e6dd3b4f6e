package schema

import (
	"time"

	"gorm.io/datatypes"
)

// EntrySnapshotStatus tracks whether a snapshot still carries its detail
type EntrySnapshotStatus string

const (
	// EntrySnapshotStatusOpen means the detailed holder/unit lists are intact
	EntrySnapshotStatusOpen EntrySnapshotStatus = "open"
	// EntrySnapshotStatusFinalized means the detail has been truncated
	// and only TotalEntries survives
	EntrySnapshotStatusFinalized EntrySnapshotStatus = "finalized"
)

// EntrySnapshot represents the entry_snapshots table - the weighted
// participation list for one poll or giveaway. Finalization truncates
// the detail columns to free storage; individual entry attribution is
// no longer reconstructable afterwards.
type EntrySnapshot struct {
	// PollID identifies the poll or giveaway this snapshot belongs to
	PollID string `gorm:"column:poll_id;primaryKey;type:text"`
	// Status is open until finalization
	Status EntrySnapshotStatus `gorm:"column:status;not null;type:text"`
	// FungibleHolders is the raw fungible holder detail (null once finalized)
	FungibleHolders datatypes.JSON `gorm:"column:fungible_holders;type:jsonb"`
	// UsedUnits is the non-fungible unit dedup set (null once finalized)
	UsedUnits datatypes.JSON `gorm:"column:used_units;type:jsonb"`
	// Entries is the weighted entry list (null once finalized)
	Entries datatypes.JSON `gorm:"column:entries;type:jsonb"`
	// TotalEntries is the aggregate count preserved past finalization
	TotalEntries int64 `gorm:"column:total_entries;not null;default:0"`
	// CreatedAt is when the snapshot was taken
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// FinalizedAt is when the detail was truncated
	FinalizedAt *time.Time `gorm:"column:finalized_at"`
}

// TableName specifies the table name for the EntrySnapshot model
func (EntrySnapshot) TableName() string {
	return "entry_snapshots"
}

package schema

import "time"

// Epoch caches one epoch's boundaries. Rows are append-only: an expired
// row is superseded by inserting a fresh one, never updated in place.
// Timestamps are normalized to 13-digit millisecond width.
type Epoch struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Epoch     uint64    `gorm:"column:epoch;not null;index"`
	StartTime int64     `gorm:"column:start_time;not null"`
	EndTime   int64     `gorm:"column:end_time;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Epoch model
func (Epoch) TableName() string {
	return "epochs"
}

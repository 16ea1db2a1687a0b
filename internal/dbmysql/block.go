package dbmysql

import (
	"time"
)

// Block records that BlockerID refuses contact from BlockedID.
type Block struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	BlockerID string    `gorm:"column:blocker_id;type:varchar(64) COLLATE utf8mb4_bin;not null;index:idx_block_pair,unique" json:"blocker_id"`
	BlockedID string    `gorm:"column:blocked_id;type:varchar(64) COLLATE utf8mb4_bin;not null;index:idx_block_pair,unique" json:"blocked_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

package entity

import "time"

// BlockedPhone tracks no-shows per customer phone number. Once NoShowCount
// reaches the configured threshold the number is stamped blocked and new
// bookings are rejected before slot selection is honored.
type BlockedPhone struct {
	Phone       string     `gorm:"type:varchar(32);primaryKey" json:"phone"`
	NoShowCount int        `gorm:"not null;default:0" json:"no_show_count"`
	BlockedAt   *time.Time `json:"blocked_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BlockedPhone) TableName() string {
	return "blocked_phones"
}

// IsBlocked checks if the number has been auto-blocked.
func (b *BlockedPhone) IsBlocked() bool {
	return b.BlockedAt != nil
}

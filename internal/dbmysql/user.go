package dbmysql

import (
	"time"

	"gotravel/internal/chat/models"
)

// Account mirrors the identity service's account record. Chat reads it for
// display identity and never writes it outside of seeding.
type Account struct {
	ID          string    `gorm:"primaryKey;type:varchar(64) COLLATE utf8mb4_bin" json:"id"`
	Role        string    `gorm:"column:role;type:enum('traveler','guide','other');not null" json:"role"`
	DisplayName string    `gorm:"column:display_name;size:120" json:"display_name"`
	AvatarURL   string    `gorm:"column:avatar_url;size:512" json:"avatar_url"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (a *Account) ToModel() *models.Account {
	return &models.Account{
		ID:          a.ID,
		Role:        models.AccountRole(a.Role),
		DisplayName: a.DisplayName,
		AvatarURL:   a.AvatarURL,
	}
}

// GuideProfile is addressed by listing cards. AccountID is a plain indexed
// column with no foreign key.
type GuideProfile struct {
	ID        string    `gorm:"primaryKey;type:varchar(64) COLLATE utf8mb4_bin" json:"id"`
	AccountID string    `gorm:"column:account_id;type:varchar(64) COLLATE utf8mb4_bin;not null;index" json:"account_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (g *GuideProfile) ToModel() *models.GuideProfile {
	return &models.GuideProfile{ID: g.ID, AccountID: g.AccountID}
}

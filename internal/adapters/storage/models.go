package storage

import "time"

// SaveModel is the GORM model for the session_saves table
type SaveModel struct {
	ClientID    string    `gorm:"not null;default:''"`
	CreatedAt   time.Time
	Path        string    `gorm:"primaryKey"`
	SavedAt     time.Time `gorm:"not null;index:idx_saved_at"`
	Scope       string    `gorm:"not null;default:'local';check:scope IN ('local','global','both')"`
	Success     bool      `gorm:"not null;default:false"`
	UpdatedAt   time.Time
	WindowCount int       `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (SaveModel) TableName() string { return "session_saves" }

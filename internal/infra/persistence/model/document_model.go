package model

import (
	"time"

	"gorm.io/datatypes"
)

// DocumentModel is the GORM-specific struct for the 'documents' table.
// Every collection shares the table; Seq keeps insertion order.
type DocumentModel struct {
	Seq        int64             `gorm:"primaryKey;autoIncrement"`
	Collection string            `gorm:"type:varchar(128);not null;index"`
	Body       datatypes.JSONMap `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DocumentModel) TableName() string {
	return "documents"
}

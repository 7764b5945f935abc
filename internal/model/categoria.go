package model

import (
	"time"

	"github.com/google/uuid"
)

// Categoria is an open lookup set: products reference a category by name
// instead of a compiled-in enum. The default set is seeded at startup.
type Categoria struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

// TableName overrides GORM's default singular → plural logic for Portuguese names.
func (Categoria) TableName() string { return "categorias" }

package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Tag struct {
	bun.BaseModel `bun:"table:tags,alias:t"`

	ID        string    `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Name      string    `bun:",nullzero" json:"name"`
	Color     string    `bun:",nullzero" json:"color"`
}

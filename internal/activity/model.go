package activity

import "github.com/uptrace/bun"

type Activity struct {
	bun.BaseModel `bun:"table:activities,alias:a"`

	ID          int     `bun:"id,pk,autoincrement" json:"id"`
	Description string  `bun:"description,notnull" json:"description"`
	Cost        float64 `bun:"cost,notnull" json:"cost"`
}

// CreateActivityRequest is the request body for creating an activity
type CreateActivityRequest struct {
	Description string   `json:"description" validate:"required"`
	Cost        *float64 `json:"cost" validate:"required,gte=0"`
}

// UpdateActivityRequest replaces every mutable field of an activity
type UpdateActivityRequest struct {
	Description string   `json:"description" validate:"required"`
	Cost        *float64 `json:"cost" validate:"required,gte=0"`
}

package equipment

import "github.com/uptrace/bun"

// Equipment is an item rented out for one activity.
type Equipment struct {
	bun.BaseModel `bun:"table:equipment,alias:e"`

	ID          int     `bun:"id,pk,autoincrement" json:"id"`
	ActivityID  int     `bun:"activity_id,notnull" json:"activity_id"`
	Description string  `bun:"description,notnull" json:"description"`
	Cost        float64 `bun:"cost,notnull" json:"cost"`
}

func (*Equipment) ForeignKeys() []string {
	return []string{
		`("activity_id") REFERENCES "activities" ("id")`,
	}
}

type CreateEquipmentRequest struct {
	ActivityID  int      `json:"activity_id" validate:"required,gt=0"`
	Description string   `json:"description" validate:"required"`
	Cost        *float64 `json:"cost" validate:"required,gte=0"`
}

type UpdateEquipmentRequest struct {
	ActivityID  int      `json:"activity_id" validate:"required,gt=0"`
	Description string   `json:"description" validate:"required"`
	Cost        *float64 `json:"cost" validate:"required,gte=0"`
}

package instructor

import "github.com/uptrace/bun"

type Instructor struct {
	bun.BaseModel `bun:"table:instructors,alias:i"`

	CI      string  `bun:"ci,pk,type:char(11)" json:"ci"`
	Name    string  `bun:"name,notnull" json:"name"`
	Surname string  `bun:"surname,notnull" json:"surname"`
	Email   *string `bun:"email" json:"email"`
}

type CreateInstructorRequest struct {
	CI      string  `json:"ci" validate:"required,len=11"`
	Name    string  `json:"name" validate:"required"`
	Surname string  `json:"surname" validate:"required"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

// UpdateInstructorRequest carries the editable fields. The ci comes from the path.
type UpdateInstructorRequest struct {
	Name    string  `json:"name" validate:"required"`
	Surname string  `json:"surname" validate:"required"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

package student

import "github.com/uptrace/bun"

type Student struct {
	bun.BaseModel `bun:"table:students,alias:s"`

	CI        string `bun:"ci,pk,type:char(11)" json:"ci"`
	Name      string `bun:"name,notnull" json:"name"`
	Surname   string `bun:"surname,notnull" json:"surname"`
	Phone     string `bun:"phone,notnull" json:"phone"`
	BirthDate Date   `bun:"birth_date,type:date,notnull" json:"birth_date"`
	Email     string `bun:"email,notnull" json:"email"`
}

type CreateStudentRequest struct {
	CI        string `json:"ci" validate:"required,len=11"`
	Name      string `json:"name" validate:"required"`
	Surname   string `json:"surname" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Email     string `json:"email" validate:"required,email"`
}

// UpdateStudentRequest replaces every field except the ci, which is taken from the path.
type UpdateStudentRequest struct {
	Name      string `json:"name" validate:"required"`
	Surname   string `json:"surname" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Email     string `json:"email" validate:"required,email"`
}

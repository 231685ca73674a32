package auth

import "github.com/uptrace/bun"

// Credential holds the login secret of a student or instructor, keyed by ci.
type Credential struct {
	bun.BaseModel `bun:"table:credentials,alias:cr"`

	CI       string `bun:"ci,pk,type:char(11)" json:"ci"`
	Password string `bun:"password,notnull" json:"-"`
	Email    string `bun:"email,notnull" json:"email"`
}

type LoginRequest struct {
	Identity string `json:"identity" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Status string `json:"status"`
	Email  string `json:"email"`
}

type RegisterRequest struct {
	Identity string `json:"identity" validate:"required,len=11"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"required,email"`
}

type RegisterResponse struct {
	Identity string `json:"identity"`
	Email    string `json:"email"`
}

package model

// Department 部門，底下可有多位成員
type Department struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

package model

type EventType struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

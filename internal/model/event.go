package model

import "time"

// Event 活動。讀取時會帶上關聯的 EventType
type Event struct {
	ID          int       `json:"id" db:"id"`
	EventTypeID int       `json:"eventTypeId" db:"event_type_id"`
	Datetime    time.Time `json:"datetime" db:"datetime"`

	EventType *EventType `json:"eventType,omitempty" db:"-"`
}

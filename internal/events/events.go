package events

import "time"

type RecordSavedEvent struct {
	RecordID  string    `json:"record_id"`
	SessionID string    `json:"session_id"`
	Title     string    `json:"title"`
	Total     float64   `json:"total"`
	Tier      string    `json:"tier"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}

type RecordRemovedEvent struct {
	RecordID  string `json:"record_id"`
	SessionID string `json:"session_id"`
}

type SessionCreatedEvent struct {
	SessionID string `json:"session_id"`
}

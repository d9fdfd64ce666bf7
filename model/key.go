package model

// Key is a canonical lowercase key identifier such as "a", ";", "\n" or "arrowleft".
type Key string

type Binding struct {
	Major int
	Minor int
}

type EventType string

const (
	KeyDown EventType = "down"
	KeyUp   EventType = "up"
)

type KeyEvent struct {
	Type   EventType `json:"type"`
	Code   int       `json:"code"`
	Key    string    `json:"key"`
	Repeat bool      `json:"repeat"`
}

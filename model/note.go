package model

// Voice is the handle a voice backend hands out for a sounding pitch.
type Voice struct {
	ID    uint64  `json:"id"`
	Pitch int     `json:"pitch"`
	Gain  float64 `json:"gain"`
}

type ActiveNote struct {
	Key   Key   `json:"key"`
	Pitch int   `json:"pitch"`
	Voice Voice `json:"voice"`
}

type Modifiers struct {
	IsMinor        bool
	LeftHandOctave int
}

type Hint struct {
	Visible bool `json:"visible"`
	Index   int  `json:"index"`
	Minor   bool `json:"minor"`
}

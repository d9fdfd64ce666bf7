package model

type DirectionRequestBody struct {
	Direction int `json:"direction"`
}

type MinorRequestBody struct {
	Minor bool `json:"minor"`
}

// State is what a front end needs to draw the selector, the piano and the overlays.
type State struct {
	ID       string         `json:"id,omitempty"`
	Center   int            `json:"center"`
	Chord    string         `json:"chord"`
	Minor    bool           `json:"minor"`
	Octave   int            `json:"octave"`
	Hint     Hint           `json:"hint"`
	Piano    []int          `json:"piano"`
	Overlay  []Key          `json:"overlay"`
	Labels   map[Key]string `json:"labels"`
	Notes    []ActiveNote   `json:"notes"`
	Sounding string         `json:"sounding"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

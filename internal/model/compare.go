package model

// PhotoPair is one before/after match keyed by (position, state). Either
// side may be nil when the key exists in only one collection.
type PhotoPair struct {
	Position string  `json:"photo_position"`
	State    *string `json:"photo_state,omitempty"`
	Before   *Photo  `json:"before,omitempty"`
	After    *Photo  `json:"after,omitempty"`
}

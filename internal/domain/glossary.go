package domain

// GlossaryEntry pairs a term with its definition.
type GlossaryEntry struct {
	Term       string `json:"word"`
	Definition string `json:"definition"`
}

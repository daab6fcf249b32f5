package domain

// Receipt is the outcome of totalling a purchase list.
type Receipt struct {
	Items []string
	Total float64
}

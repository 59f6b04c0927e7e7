package models

// GeneratedLogo is one offered design option. Candidates are created in a
// single batch of five per request, in stable presentation order, and are
// immutable afterwards; they have no identity outside the owning request.
type GeneratedLogo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Style       string `json:"style"`
}

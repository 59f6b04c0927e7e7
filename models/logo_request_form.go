package models

// LogoRequestForm is the submission payload for a new logo request. The
// validate tags mirror the required/optional field contract enforced at the
// service boundary.
type LogoRequestForm struct {
	LogoName     string `json:"logoName" validate:"required"`
	Tagline      string `json:"tagline"`
	Description  string `json:"description" validate:"required"`
	BusinessName string `json:"businessName" validate:"required"`
	Industry     string `json:"industry" validate:"required"`
	Style        string `json:"style" validate:"required"`
	Color        string `json:"color"`
	Audience     string `json:"audience"`
	Requirements string `json:"requirements"`
}

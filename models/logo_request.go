package models

import "gorm.io/datatypes"

// LogoRequest represents one submitted brand-asset request. Optional form
// fields are stored as nullable text so their JSON representation is an
// explicit null rather than an omitted key. GeneratedLogos stays null while
// the request is pending and is populated exactly once by the generation
// step; records are never deleted and identifiers are never reused.
type LogoRequest struct {
	ID             int            `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	LogoName       string         `json:"logoName" db:"logo_name" gorm:"type:text;not null"`
	Tagline        *string        `json:"tagline" db:"tagline" gorm:"type:text"`
	Description    string         `json:"description" db:"description" gorm:"type:text;not null"`
	BusinessName   string         `json:"businessName" db:"business_name" gorm:"type:text;not null"`
	Industry       string         `json:"industry" db:"industry" gorm:"type:text;not null"`
	Style          string         `json:"style" db:"style" gorm:"type:text;not null"`
	Color          *string        `json:"color" db:"color" gorm:"type:text"`
	Audience       *string        `json:"audience" db:"audience" gorm:"type:text"`
	Requirements   *string        `json:"requirements" db:"requirements" gorm:"type:text"`
	GeneratedLogos datatypes.JSON `json:"generatedLogos" db:"generated_logos"`
	CreatedAt      string         `json:"createdAt" db:"created_at" gorm:"type:text;not null"`
}

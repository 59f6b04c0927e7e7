package models

// User is stored for completeness of the storage interface; no HTTP
// workflow consumes it yet.
type User struct {
	ID       int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Username string `json:"username" db:"username" gorm:"type:text;not null;unique"`
	Password string `json:"-" db:"password" gorm:"type:text;not null"`
}

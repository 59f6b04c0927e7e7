package database

import (
	"gorm.io/gorm"
)

type Database struct {
	logoRequestRepo *LogoRequestRepo
	userRepo        *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		logoRequestRepo: NewLogoRequestRepo(db),
		userRepo:        NewUserRepo(db),
	}
}

func (d Database) LogoRequestRepo() *LogoRequestRepo {
	return d.logoRequestRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

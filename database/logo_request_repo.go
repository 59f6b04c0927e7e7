package database

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/brandforge/logo-backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LogoRequestRepo struct {
	db *gorm.DB
}

func NewLogoRequestRepo(db *gorm.DB) *LogoRequestRepo {
	return &LogoRequestRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *LogoRequestRepo) GetDB() *gorm.DB {
	return r.db
}

// Add inserts a new pending request. The identifier is assigned by the
// store, strictly increasing from 1 for the process lifetime and never
// reused; CreatedAt is stamped here and never changes afterwards.
func (r *LogoRequestRepo) Add(request *models.LogoRequest) error {
	request.ID = 0
	request.GeneratedLogos = nil
	request.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return r.db.Create(request).Error
}

// FindByID returns the request with the given identifier, or (nil, nil)
// when no such record exists. An absent identifier is an expected outcome,
// not an error.
func (r *LogoRequestRepo) FindByID(id int) (*models.LogoRequest, error) {
	var request models.LogoRequest
	err := r.db.First(&request, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// UpdateResults replaces only the generatedLogos column of an existing
// request and returns the updated record. Returns (nil, nil) when the
// identifier is unknown.
func (r *LogoRequestRepo) UpdateResults(id int, logos []models.GeneratedLogo) (*models.LogoRequest, error) {
	existing, err := r.FindByID(id)
	if err != nil || existing == nil {
		return nil, err
	}

	encoded, err := json.Marshal(logos)
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.LogoRequest{}).
		Where("id = ?", id).
		Update("generated_logos", datatypes.JSON(encoded)).Error
	if err != nil {
		return nil, err
	}

	return r.FindByID(id)
}

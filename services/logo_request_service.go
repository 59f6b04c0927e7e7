package services

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brandforge/logo-backend/database"
	"github.com/brandforge/logo-backend/errs"
	"github.com/brandforge/logo-backend/models"
)

// requiredFieldMessages are the user-facing validation messages, keyed by
// JSON field name.
var requiredFieldMessages = map[string]string{
	"logoName":     "Logo name is required",
	"description":  "Description is required",
	"businessName": "Business name is required",
	"industry":     "Please select an industry",
	"style":        "Please select a logo style",
}

// LogoRequestService orchestrates one submission end to end: validate,
// persist pending, generate, persist complete. Generation never fails from
// the caller's point of view; a failing strategy degrades to the
// deterministic catalog output.
type LogoRequestService struct {
	repo      *database.LogoRequestRepo
	generator LogoGenerator
	fallback  *CatalogGenerator
	validate  *validator.Validate
	logger    zerolog.Logger
}

// NewLogoRequestService wires the active generator strategy; pass nil to
// use the catalog strategy directly.
func NewLogoRequestService(repo *database.LogoRequestRepo, generator LogoGenerator) *LogoRequestService {
	fallback := NewCatalogGenerator()
	if generator == nil {
		generator = fallback
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	logger := log.With().Str("serviceName", "logoRequestService").Logger()

	return &LogoRequestService{
		repo:      repo,
		generator: generator,
		fallback:  fallback,
		validate:  validate,
		logger:    logger,
	}
}

// Submit validates a submission, persists it as pending, generates the five
// candidates and returns the completed record. Validation failure leaves
// the store untouched.
func (s *LogoRequestService) Submit(ctx context.Context, form models.LogoRequestForm) (*models.LogoRequest, error) {
	if err := s.validate.Struct(form); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			field := fieldErrors[0].Field()
			message, ok := requiredFieldMessages[field]
			if !ok {
				message = field + " is invalid"
			}
			return nil, errs.NewValidationError(field, message)
		}
		return nil, errs.NewBadRequestError("invalid request data")
	}

	request := newPendingRequest(form)
	if err := s.repo.Add(request); err != nil {
		return nil, errs.NewDatabaseError("create", "logo request", err)
	}

	s.logger.Info().
		Int("requestID", request.ID).
		Str("businessName", form.BusinessName).
		Msg("Starting logo generation")

	logos, err := s.generator.GenerateLogos(ctx, form)
	if err != nil {
		// Generation must not fail once a record exists: degrade to the
		// deterministic output instead of surfacing a secondary failure.
		s.logger.Warn().Err(err).Int("requestID", request.ID).Msg("Generator failed, using catalog fallback")
		logos, _ = s.fallback.GenerateLogos(ctx, form)
	}

	updated, err := s.repo.UpdateResults(request.ID, logos)
	if err != nil {
		return nil, errs.NewDatabaseError("finalize", "logo request", err)
	}
	if updated == nil {
		return nil, errs.NewInternalError("request disappeared during generation", nil)
	}
	return updated, nil
}

// Fetch returns the request with the given identifier or a not-found error.
func (s *LogoRequestService) Fetch(id int) (*models.LogoRequest, error) {
	request, err := s.repo.FindByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "logo request", err)
	}
	if request == nil {
		return nil, errs.NewNotFoundError("logo request not found")
	}
	return request, nil
}

// newPendingRequest maps a validated form onto a storage record; optional
// fields normalize to explicit nulls.
func newPendingRequest(form models.LogoRequestForm) *models.LogoRequest {
	return &models.LogoRequest{
		LogoName:     form.LogoName,
		Tagline:      optionalText(form.Tagline),
		Description:  form.Description,
		BusinessName: form.BusinessName,
		Industry:     form.Industry,
		Style:        form.Style,
		Color:        optionalText(form.Color),
		Audience:     optionalText(form.Audience),
		Requirements: optionalText(form.Requirements),
	}
}

func optionalText(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

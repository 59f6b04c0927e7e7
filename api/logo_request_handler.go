package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brandforge/logo-backend/errs"
	"github.com/brandforge/logo-backend/models"
	"github.com/brandforge/logo-backend/services"
)

type logoRequestHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *services.LogoRequestService
}

func newLogoRequestHandler(service *services.LogoRequestService) logoRequestHandler {
	logger := log.With().Str("handlerName", "logoRequestHandler").Logger()

	return logoRequestHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// createLogoRequest accepts a submission and returns the completed record
// @Summary Create logo request
// @Description Validates a logo request form, stores it and returns the record with its five generated candidates
// @Tags LogoRequests
// @Accept json
// @Produce json
// @Param request body models.LogoRequestForm true "Logo request form"
// @Success 200 {object} models.LogoRequest "Completed request with generatedLogos"
// @Failure 400 {object} ErrorResponse "Bad Request - Malformed body or validation failure"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/logo-requests [post]
func (h logoRequestHandler) createLogoRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var form models.LogoRequestForm
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&form); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode logo request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		completed, err := h.service.Submit(r.Context(), form)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, completed)
	}
}

// getLogoRequest retrieves a specific logo request by ID
// @Summary Get logo request
// @Description Retrieves a logo request and its generated candidates by integer ID
// @Tags LogoRequests
// @Accept json
// @Produce json
// @Param logoRequestID path int true "Logo request ID"
// @Success 200 {object} models.LogoRequest "Logo request"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid logoRequestID"
// @Failure 404 {object} ErrorResponse "Not Found - Logo request not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/logo-requests/{logoRequestID} [get]
func (h logoRequestHandler) getLogoRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "logoRequestID")
		if idStr == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing logoRequestID"))
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id < 1 {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid logoRequestID"))
			return
		}

		request, err := h.service.Fetch(id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, request)
	}
}

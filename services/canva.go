package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/brandforge/logo-backend/config"
	"github.com/brandforge/logo-backend/errs"
	"github.com/brandforge/logo-backend/models"
)

const (
	canvaBaseURL       = "https://api.canva.com"
	canvaTokenURL      = canvaBaseURL + "/rest/v1/oauth/token"
	exportPollInterval = 2 * time.Second
	exportPollAttempts = 30
)

// fallbackImageURL stands in when an export never yields a usable URL.
const fallbackImageURL = "https://images.unsplash.com/photo-1611224923853-80b023f02d71?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=400"

type canvaDesign struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	Thumbnail *struct {
		URL string `json:"url"`
	} `json:"thumbnail,omitempty"`
}

type canvaExportStatus struct {
	Export struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		URL    string `json:"url"`
	} `json:"export"`
}

// CanvaGenerator drives the Canva Connect API behind the LogoGenerator
// contract. It is disabled by default: Connect design scopes are only
// granted through the user-consent authorization code flow, which this
// service does not drive, so token acquisition fails fast and the service
// layer falls back to the catalog strategy. The client-credentials config
// is kept wired for when that flow lands.
type CanvaGenerator struct {
	httpClient *http.Client
	tokens     *clientcredentials.Config
	policy     wellnessPolicy
	logger     zerolog.Logger
	authorized bool
}

// NewCanvaGenerator reads credentials from CANVA_CLIENT_ID and
// CANVA_CLIENT_SECRET, with development fallbacks so the inactive path can
// be exercised without configuration.
func NewCanvaGenerator(c map[string]string) *CanvaGenerator {
	logger := log.With().Str("serviceName", "canvaGenerator").Logger()

	return &CanvaGenerator{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens: &clientcredentials.Config{
			ClientID:     config.GetString(c, "CANVA_CLIENT_ID", "dev-canva-client"),
			ClientSecret: config.GetString(c, "CANVA_CLIENT_SECRET", "dev-canva-secret"),
			TokenURL:     canvaTokenURL,
		},
		policy: defaultWellnessPolicy,
		logger: logger,
	}
}

// accessToken exchanges client credentials for an API token. Until the
// authorization code flow is wired, the exchange is rejected up front.
func (g *CanvaGenerator) accessToken(ctx context.Context) (string, error) {
	if !g.authorized {
		return "", errs.NewDesignAPIAuthError("user authorization flow not configured")
	}

	token, err := g.tokens.Token(ctx)
	if err != nil {
		return "", errs.NewDesignAPIError("obtain access token", err)
	}
	return token.AccessToken, nil
}

func (g *CanvaGenerator) GenerateLogos(ctx context.Context, form models.LogoRequestForm) ([]models.GeneratedLogo, error) {
	g.logger.Info().Str("businessName", form.BusinessName).Msg("Generating logos via design API")

	token, err := g.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	labels := styleVariations[NormalizeStyle(form.Style)]
	wellness := g.policy.applies(Industry(form.Industry), form.LogoName)
	descriptions := contextualDescriptions(form, wellness)
	g.logger.Debug().Str("prompt", logoPrompt(form, g.policy)).Msg("design brief")

	slug := slugify(form.LogoName)
	logos := make([]models.GeneratedLogo, 0, candidateCount)
	for i := 0; i < candidateCount; i++ {
		title := fmt.Sprintf("%s - %s", form.LogoName, labels[i])

		design, err := g.createDesign(ctx, token, title)
		if err != nil {
			return nil, err
		}

		imageURL, err := g.exportDesign(ctx, token, design.ID)
		if err != nil {
			g.logger.Warn().Err(err).Str("designID", design.ID).Msg("Export failed, using fallback image")
			imageURL = fallbackImageURL
		}

		logos = append(logos, models.GeneratedLogo{
			ID:          fmt.Sprintf("ai-logo-%s-%d", slug, i+1),
			Title:       title,
			Description: descriptions[i],
			ImageURL:    imageURL,
			Style:       form.Style,
		})
	}
	return logos, nil
}

func (g *CanvaGenerator) createDesign(ctx context.Context, token, title string) (*canvaDesign, error) {
	payload, err := json.Marshal(map[string]string{
		"design_type": "Logo",
		"title":       title,
	})
	if err != nil {
		return nil, errs.NewDesignAPIError("encode design request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, canvaBaseURL+"/v1/designs", bytes.NewReader(payload))
	if err != nil {
		return nil, errs.NewDesignAPIError("build design request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewDesignAPIError("create design", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		g.logger.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("Design creation rejected")
		return nil, errs.NewDesignAPIError("create design", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var design canvaDesign
	if err := json.NewDecoder(resp.Body).Decode(&design); err != nil {
		return nil, errs.NewDesignAPIError("decode design response", err)
	}
	return &design, nil
}

// exportDesign requests a PNG export and polls for completion on a fixed
// interval with a bounded number of attempts.
func (g *CanvaGenerator) exportDesign(ctx context.Context, token, designID string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"design_id": designID,
		"format": map[string]string{
			"type":    "PNG",
			"quality": "standard",
		},
	})
	if err != nil {
		return "", errs.NewDesignAPIError("encode export request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, canvaBaseURL+"/v1/exports", bytes.NewReader(payload))
	if err != nil {
		return "", errs.NewDesignAPIError("build export request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", errs.NewDesignAPIError("request export", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.NewDesignAPIError("request export", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var status canvaExportStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return "", errs.NewDesignAPIError("decode export response", err)
	}
	exportID := status.Export.ID

	poll := func() (string, error) {
		statusReq, err := http.NewRequestWithContext(ctx, http.MethodGet, canvaBaseURL+"/v1/exports/"+exportID, nil)
		if err != nil {
			return "", backoff.Permanent(errs.NewDesignAPIError("build export status request", err))
		}
		statusReq.Header.Set("Authorization", "Bearer "+token)

		statusResp, err := g.httpClient.Do(statusReq)
		if err != nil {
			return "", err
		}
		defer statusResp.Body.Close()

		if statusResp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("export status returned %d", statusResp.StatusCode)
		}

		var current canvaExportStatus
		if err := json.NewDecoder(statusResp.Body).Decode(&current); err != nil {
			return "", err
		}

		switch {
		case current.Export.Status == "success" && current.Export.URL != "":
			return current.Export.URL, nil
		case current.Export.Status == "failed":
			return "", backoff.Permanent(errs.NewDesignAPIError("export design", errs.ErrExportFailed))
		default:
			return "", fmt.Errorf("export %s still %s", exportID, current.Export.Status)
		}
	}

	url, err := backoff.RetryWithData(poll, backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(exportPollInterval), exportPollAttempts), ctx))
	if err != nil {
		if errs.IsDesignAPIError(err) {
			return "", err
		}
		return "", errs.NewExportTimeoutError(exportPollAttempts)
	}
	return url, nil
}

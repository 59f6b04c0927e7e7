package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brandforge/logo-backend/database"
	"github.com/brandforge/logo-backend/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.LogoRequest{}, &models.User{}))

	server := httptest.NewServer(newRouter(database.New(db)))
	t.Cleanup(server.Close)
	return server
}

type logoRequestResponse struct {
	ID             int                    `json:"id"`
	LogoName       string                 `json:"logoName"`
	Tagline        *string                `json:"tagline"`
	Description    string                 `json:"description"`
	BusinessName   string                 `json:"businessName"`
	Industry       string                 `json:"industry"`
	Style          string                 `json:"style"`
	Color          *string                `json:"color"`
	GeneratedLogos []models.GeneratedLogo `json:"generatedLogos"`
	CreatedAt      string                 `json:"createdAt"`
}

func validSubmission() map[string]string {
	return map[string]string{
		"logoName":     "Acme",
		"description":  "A sharp brand for a sharp company",
		"businessName": "Acme Corp",
		"industry":     "technology",
		"style":        "modern",
	}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func TestCreateLogoRequest(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/logo-requests", validSubmission())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var created logoRequestResponse
	decodeInto(t, resp, &created)

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Acme", created.LogoName)
	assert.Nil(t, created.Tagline)
	assert.NotEmpty(t, created.CreatedAt)

	require.Len(t, created.GeneratedLogos, 5)
	for _, logo := range created.GeneratedLogos {
		assert.NotEmpty(t, logo.Title)
		assert.NotEmpty(t, logo.Description)
		assert.NotEmpty(t, logo.ImageURL)
		assert.Equal(t, "modern", logo.Style)
	}
	assert.Equal(t, "Acme - Modern Tech", created.GeneratedLogos[0].Title)
}

func TestCreateLogoRequest_ValidationFailure(t *testing.T) {
	server := newTestServer(t)

	submission := validSubmission()
	delete(submission, "logoName")

	resp := postJSON(t, server.URL+"/api/logo-requests", submission)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeInto(t, resp, &body)
	assert.Equal(t, "logoName", body["field"])
	assert.Equal(t, "Logo name is required", body["details"])

	// The failed submission must not create a record.
	getResp, err := http.Get(server.URL + "/api/logo-requests/1")
	require.NoError(t, err)
	defer getResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
}

func TestCreateLogoRequest_MalformedBody(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/logo-requests", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetLogoRequest(t *testing.T) {
	server := newTestServer(t)

	var created logoRequestResponse
	resp := postJSON(t, server.URL+"/api/logo-requests", validSubmission())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeInto(t, resp, &created)

	t.Run("returns the record from the submission response", func(t *testing.T) {
		getResp, err := http.Get(fmt.Sprintf("%s/api/logo-requests/%d", server.URL, created.ID))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, getResp.StatusCode)

		var fetched logoRequestResponse
		decodeInto(t, getResp, &fetched)
		assert.Equal(t, created, fetched)
	})

	t.Run("unknown identifier yields 404", func(t *testing.T) {
		getResp, err := http.Get(server.URL + "/api/logo-requests/999999")
		require.NoError(t, err)
		defer getResp.Body.Close()
		assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
	})

	t.Run("non-integer identifier yields 400", func(t *testing.T) {
		getResp, err := http.Get(server.URL + "/api/logo-requests/abc")
		require.NoError(t, err)
		defer getResp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, getResp.StatusCode)
	})
}

func TestIdenticalSubmissionsGetDistinctIdentifiers(t *testing.T) {
	server := newTestServer(t)

	var first, second logoRequestResponse

	resp := postJSON(t, server.URL+"/api/logo-requests", validSubmission())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeInto(t, resp, &first)

	resp = postJSON(t, server.URL+"/api/logo-requests", validSubmission())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeInto(t, resp, &second)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, first.GeneratedLogos, second.GeneratedLogos)
}

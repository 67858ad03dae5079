package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adunare/community-site-go/config"
	"github.com/adunare/community-site-go/models"
	"github.com/adunare/community-site-go/routes"
	"github.com/adunare/community-site-go/service"
	"github.com/adunare/community-site-go/store"
)

type testApp struct {
	router *gin.Engine
	svc    *service.Service
	cfg    *config.Config
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireHours: 1},
	}

	st := store.NewLocal(filepath.Join(t.TempDir(), "data.json"), nil, nil)
	svc := service.New(st)

	r := gin.New()
	routes.SetupRoutes(r, cfg, svc)

	return &testApp{router: r, svc: svc, cfg: cfg}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// register creates an account and returns its token and user.
func (a *testApp) register(t *testing.T, name, email string) (string, models.User) {
	t.Helper()

	w := a.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"name": name, "email": email, "password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token, resp.User
}

// registerAdmin registers an account and promotes it directly in the store.
func (a *testApp) registerAdmin(t *testing.T, email string) string {
	t.Helper()

	_, user := a.register(t, "Admin", email)
	require.NoError(t, a.svc.UpdateUser(context.Background(), user.ID, map[string]any{"role": "admin"}))

	// Re-login so the token carries the admin role.
	w := a.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": email, "password": "s3cret-pass"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func TestRegisterLoginAndMe(t *testing.T) {
	app := newTestApp(t)

	token, user := app.register(t, "Ana Pop", "ana@example.org")
	assert.Equal(t, models.RoleMember, user.Role)

	w := app.do(t, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ana@example.org")

	w = app.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "ana@example.org", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEventLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.registerAdmin(t, "admin@example.org")
	memberToken, _ := app.register(t, "Maria", "maria@example.org")

	// Members cannot create events.
	w := app.do(t, http.MethodPost, "/events", memberToken, gin.H{"title": "Nope"})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(t, http.MethodPost, "/events", adminToken, gin.H{
		"title": "Folk Night", "date": "2026-09-12", "time": "19:00",
		"location": "Hall", "type": "performance",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var event models.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	require.NotEmpty(t, event.ID)

	// RSVP toggle over HTTP.
	path := fmt.Sprintf("/events/%s/rsvp", event.ID)
	w = app.do(t, http.MethodPost, path, memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"attending":true`)

	w = app.do(t, http.MethodPost, path, memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"attending":false`)

	// Public listing needs no token.
	w = app.do(t, http.MethodGet, "/events", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Folk Night")

	w = app.do(t, http.MethodDelete, "/events/"+event.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Deleting again is still a success.
	w = app.do(t, http.MethodDelete, "/events/"+event.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEventListETag(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/events", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	etag := w.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.Header.Set("If-None-Match", etag)
	w2 := httptest.NewRecorder()
	app.router.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusNotModified, w2.Code)
}

func TestTestimonialModerationOverHTTP(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.registerAdmin(t, "admin@example.org")
	memberToken, _ := app.register(t, "Maria", "maria@example.org")

	w := app.do(t, http.MethodPost, "/testimonials", memberToken, gin.H{
		"author": "Maria", "role": "Member", "text": "Great event!",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Testimonial
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.False(t, created.Approved)

	// Hidden from the public until approved.
	w = app.do(t, http.MethodGet, "/testimonials", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Great event!")

	w = app.do(t, http.MethodPost, "/testimonials/"+created.ID+"/approval", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/testimonials", "", nil)
	assert.Contains(t, w.Body.String(), "Great event!")
}

func TestGalleryModerationViewOverHTTP(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.registerAdmin(t, "admin@example.org")
	memberToken, _ := app.register(t, "Maria", "maria@example.org")

	w := app.do(t, http.MethodPost, "/gallery", memberToken, gin.H{
		"url": "https://example.org/choir.jpg", "caption": "Choir rehearsal",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item models.GalleryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))

	// No approval flag yet, so the item is publicly visible.
	w = app.do(t, http.MethodGet, "/gallery", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Choir rehearsal")

	w = app.do(t, http.MethodPost, "/gallery/"+item.ID+"/approval", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Hidden from the public, still visible in the admin moderation view.
	w = app.do(t, http.MethodGet, "/gallery", "", nil)
	assert.NotContains(t, w.Body.String(), "Choir rehearsal")

	w = app.do(t, http.MethodGet, "/gallery?pending=1", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Choir rehearsal")

	// Members asking for the moderation view get the public listing.
	w = app.do(t, http.MethodGet, "/gallery?pending=1", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Choir rehearsal")
}

func TestContentSeedAndUpdateOverHTTP(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.registerAdmin(t, "admin@example.org")

	w := app.do(t, http.MethodGet, "/content", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hero_subtitle")

	w = app.do(t, http.MethodPut, "/content/hero_title", adminToken, gin.H{
		"text": gin.H{"en": "Welcome!", "ro": "Bine ați venit!", "fr": "Bienvenue !"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/content", "", nil)
	assert.Contains(t, w.Body.String(), "Welcome!")
}

func TestContactFormOverHTTP(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/contact", "", gin.H{
		"name": "Ana", "email": "ana@example.org", "message": "Hello!",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = app.do(t, http.MethodPost, "/contact", "", gin.H{"name": "Ana"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing fields are rejected")
}

func TestHealthReportsBackend(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"backend":"local"`)
}

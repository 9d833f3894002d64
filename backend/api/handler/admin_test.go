package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"standards-hub/backend/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func adminStatus(t *testing.T, router *gin.Engine, token string) bool {
	t.Helper()
	req, _ := http.NewRequest("GET", "/api/admin/status", nil)
	if token != "" {
		req.Header.Set(middleware.AdminTokenHeader, token)
	}
	resp := doRequest(router, req)
	assert.Equal(t, http.StatusOK, resp.Code)

	var result struct {
		IsAdmin bool `json:"isAdmin"`
	}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	return result.IsAdmin
}

func TestAdminLoginWrongPassword(t *testing.T) {
	router := setupCatalogRouter(t)

	body, _ := json.Marshal(gin.H{"password": "not-it"})
	req, _ := http.NewRequest("POST", "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := doRequest(router, req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "error")
}

func TestAdminLoginMissingPassword(t *testing.T) {
	router := setupCatalogRouter(t)

	req, _ := http.NewRequest("POST", "/api/admin/login", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := doRequest(router, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestAdminStatusLifecycle(t *testing.T) {
	router := setupCatalogRouter(t)

	assert.False(t, adminStatus(t, router, ""))
	assert.False(t, adminStatus(t, router, "fabricated-token"))

	token := loginAsAdmin(t, router)
	assert.True(t, adminStatus(t, router, token))

	req, _ := http.NewRequest("POST", "/api/admin/logout", nil)
	req.Header.Set(middleware.AdminTokenHeader, token)
	resp := doRequest(router, req)
	assert.Equal(t, http.StatusOK, resp.Code)

	assert.False(t, adminStatus(t, router, token))

	// Logging out an already-invalidated token still succeeds.
	req, _ = http.NewRequest("POST", "/api/admin/logout", nil)
	req.Header.Set(middleware.AdminTokenHeader, token)
	resp = doRequest(router, req)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestAdminErrorsLocalizedInArabic(t *testing.T) {
	router := setupCatalogRouter(t)

	body, _ := json.Marshal(gin.H{"password": "not-it"})
	req, _ := http.NewRequest("POST", "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "ar")
	resp := doRequest(router, req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "كلمة المرور")
}

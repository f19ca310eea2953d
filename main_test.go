package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestHealthCheck is a unit test for the healthCheck handler function
func TestHealthCheck(t *testing.T) {
	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Create a test context and response recorder
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	// Call the handler
	healthCheck(c)

	// Assert the status code
	assert.Equal(t, http.StatusOK, w.Code, "Expected status code 200")

	// Parse the response body
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err, "Response should be valid JSON")

	// Assert the response structure
	assert.Equal(t, true, response["success"], "Expected success to be true")
	assert.Equal(t, "Brand App is running", response["message"], "Expected correct message")
}

// TestSetupRouterRoutes verifies the full route table is registered
func TestSetupRouterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := setupRouter()

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /",
		"GET /how",
		"GET /packages",
		"GET /order",
		"GET /about",
		"POST /checkout",
		"GET /confirmation",
		"GET /admin",
		"GET /uploads/:filename",
		"GET /health",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "Route %s should be registered", route)
	}
}

// TestHealthEndpoint exercises /health through the router
func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := setupRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Brand App is running")
}

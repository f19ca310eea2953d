package controllers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/denavigator/Brand-app/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUploadTest(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	originalUploadDir := utils.UploadDir
	t.Cleanup(func() { utils.UploadDir = originalUploadDir })
	utils.UploadDir = t.TempDir()

	router := gin.New()
	router.GET("/uploads/:filename", GetUploadedImage)
	return router
}

func TestGetUploadedImage_Success(t *testing.T) {
	router := setupUploadTest(t)

	testContent := []byte("fake PNG content")
	testFilename := "1700000000000000000.png"
	err := os.WriteFile(filepath.Join(utils.UploadDir, testFilename), testContent, 0644)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/uploads/"+testFilename, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=86400", w.Header().Get("Cache-Control"))
	assert.Equal(t, testContent, w.Body.Bytes())
}

func TestGetUploadedImage_FileNotFound(t *testing.T) {
	router := setupUploadTest(t)

	req := httptest.NewRequest("GET", "/uploads/nonexistent.png", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "FILE_NOT_FOUND")
}

func TestGetUploadedImage_DirectoryTraversalBlocked(t *testing.T) {
	router := setupUploadTest(t)

	// Write a file outside the upload dir that must stay unreachable
	outside := filepath.Join(filepath.Dir(utils.UploadDir), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0644))

	req := httptest.NewRequest("GET", "/uploads/..%2Fsecret.txt", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_FILENAME")
}

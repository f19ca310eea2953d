package services

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// MockS3Service is a mock implementation of S3Interface for testing
type MockS3Service struct {
	mirrored map[string][]byte // map of object key to file content
	mu       sync.RWMutex
}

// NewMockS3Service creates a new mock S3 service
func NewMockS3Service() *MockS3Service {
	return &MockS3Service{
		mirrored: make(map[string][]byte),
	}
}

// SetAsMockForTesting sets this mock as the global S3 service instance for testing
func (m *MockS3Service) SetAsMockForTesting() {
	SetS3Service(m)
}

// MirrorFile simulates uploading a local file to S3
func (m *MockS3Service) MirrorFile(_ context.Context, localPath, key string) error {
	content, err := os.ReadFile(localPath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	m.mu.Lock()
	m.mirrored[key] = content
	m.mu.Unlock()
	return nil
}

// FileExists checks if an object exists in mock storage
func (m *MockS3Service) FileExists(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.mirrored[key]
	return exists
}

// MirroredFiles returns all mirrored objects (for testing assertions)
func (m *MockS3Service) MirroredFiles() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make(map[string][]byte, len(m.mirrored))
	for k, v := range m.mirrored {
		files[k] = v
	}
	return files
}

// Clear removes all objects from mock storage
func (m *MockS3Service) Clear() {
	m.mu.Lock()
	m.mirrored = make(map[string][]byte)
	m.mu.Unlock()
}

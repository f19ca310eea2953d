package services

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/disintegration/imaging"
)

// MockupGenerator produces preview images by compositing an uploaded logo
// onto a background template
type MockupGenerator interface {
	// GenerateMockup overlays the logo centered on a random template and
	// returns the generated file's name. An empty template directory is a
	// normal no-op and returns ("", nil). Any other failure returns a
	// non-nil error; callers are expected to log it and continue without
	// a mockup.
	GenerateMockup(logoPath string) (string, error)
}

var mockupServiceInstance MockupGenerator

// InitMockupService initializes the mockup service over the template and
// upload directories
func InitMockupService(templateDir, uploadDir string) MockupGenerator {
	mockupServiceInstance = NewMockupService(templateDir, uploadDir)
	return mockupServiceInstance
}

// GetMockupService returns the initialized mockup service instance
func GetMockupService() MockupGenerator {
	return mockupServiceInstance
}

// SetMockupService sets the mockup service instance (primarily for testing)
func SetMockupService(service MockupGenerator) {
	mockupServiceInstance = service
}

// MockupService implements MockupGenerator on the local filesystem
type MockupService struct {
	templateDir string
	uploadDir   string
	now         func() time.Time

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewMockupService creates a mockup service with a time-seeded random
// source and the wall clock
func NewMockupService(templateDir, uploadDir string) *MockupService {
	return NewMockupServiceWithRand(
		templateDir,
		uploadDir,
		rand.New(rand.NewSource(time.Now().UnixNano())),
		time.Now,
	)
}

// NewMockupServiceWithRand creates a mockup service with an explicit random
// source and clock, so tests can pin template selection and output names
func NewMockupServiceWithRand(templateDir, uploadDir string, rng *rand.Rand, now func() time.Time) *MockupService {
	return &MockupService{
		templateDir: templateDir,
		uploadDir:   uploadDir,
		rng:         rng,
		now:         now,
	}
}

// GenerateMockup picks one template uniformly at random, overlays the logo
// centered at full opacity and writes the result to a new uniquely named
// PNG in the upload directory
func (s *MockupService) GenerateMockup(logoPath string) (string, error) {
	template, err := s.pickTemplate()
	if err != nil {
		return "", err
	}
	if template == "" {
		// No templates installed; skipping is normal, not an error
		return "", nil
	}

	base, err := imaging.Open(filepath.Join(s.templateDir, template))
	if err != nil {
		return "", fmt.Errorf("failed to open template %s: %w", template, err)
	}

	logo, err := imaging.Open(logoPath)
	if err != nil {
		return "", fmt.Errorf("failed to open logo %s: %w", logoPath, err)
	}

	composite := imaging.OverlayCenter(base, logo, 1.0)

	mockupName := fmt.Sprintf("mockup-%d.png", s.now().UnixNano())
	if err := imaging.Save(composite, filepath.Join(s.uploadDir, mockupName)); err != nil {
		return "", fmt.Errorf("failed to save mockup: %w", err)
	}

	return mockupName, nil
}

// pickTemplate selects one template file uniformly at random, or "" when
// the template directory is empty or missing
func (s *MockupService) pickTemplate() (string, error) {
	entries, err := os.ReadDir(s.templateDir)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to list template directory: %w", err)
	}

	var templates []string
	for _, entry := range entries {
		if !entry.IsDir() {
			templates = append(templates, entry.Name())
		}
	}
	if len(templates) == 0 {
		return "", nil
	}

	s.mu.Lock()
	pick := templates[s.rng.Intn(len(templates))]
	s.mu.Unlock()
	return pick, nil
}

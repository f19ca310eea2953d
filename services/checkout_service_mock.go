package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/denavigator/Brand-app/models"
)

// MockSession records one payment session request made against the mock
type MockSession struct {
	OrderID     string
	Email       string
	PackageType string
	AmountCents int64
	Label       string
}

// MockCheckoutService is a mock implementation of CheckoutService for testing
type MockCheckoutService struct {
	sessions []MockSession
	failWith error
	mu       sync.RWMutex
}

// NewMockCheckoutService creates a new mock checkout service
func NewMockCheckoutService() *MockCheckoutService {
	return &MockCheckoutService{}
}

// SetAsMockForTesting sets this mock as the global checkout service instance for testing
func (m *MockCheckoutService) SetAsMockForTesting() {
	SetCheckoutService(m)
}

// FailWith makes every subsequent CreateSession call return err
func (m *MockCheckoutService) FailWith(err error) {
	m.mu.Lock()
	m.failWith = err
	m.mu.Unlock()
}

// CreateSession simulates creating a hosted payment session. The returned
// URL embeds the order id so tests can assert on the redirect target.
func (m *MockCheckoutService) CreateSession(_ context.Context, order *models.Order) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return "", m.failWith
	}

	m.sessions = append(m.sessions, MockSession{
		OrderID:     order.ID,
		Email:       order.Email,
		PackageType: order.PackageType,
		AmountCents: PriceForPackage(order.PackageType),
		Label:       PackageLabel(order.PackageType),
	})

	return fmt.Sprintf("https://checkout.stripe.test/c/pay/%s", order.ID), nil
}

// Sessions returns all recorded sessions (for testing assertions)
func (m *MockCheckoutService) Sessions() []MockSession {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sessions := make([]MockSession, len(m.sessions))
	copy(sessions, m.sessions)
	return sessions
}

// Clear removes all recorded sessions and resets the failure mode
func (m *MockCheckoutService) Clear() {
	m.mu.Lock()
	m.sessions = nil
	m.failWith = nil
	m.mu.Unlock()
}

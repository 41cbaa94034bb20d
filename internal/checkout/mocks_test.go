package checkout

import (
	"context"
	"sync"

	"github.com/sreerojavusa/Travelgear/internal/domain"
	"github.com/sreerojavusa/Travelgear/internal/events"
	"github.com/sreerojavusa/Travelgear/internal/payment"
)

type mockCartStore struct {
	m       sync.Mutex
	lines   []domain.CartLine
	cleared bool
	err     error
}

func (m *mockCartStore) Get(context.Context, string) ([]domain.CartLine, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.lines, nil
}

func (m *mockCartStore) Clear(context.Context, string) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.cleared = true
	m.lines = nil
	return nil
}

func (m *mockCartStore) wasCleared() bool {
	m.m.Lock()
	defer m.m.Unlock()
	return m.cleared
}

type mockCatalog struct {
	items map[string]*domain.Item
}

func (m *mockCatalog) GetItem(_ context.Context, id string) (*domain.Item, error) {
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, ErrInvalidSelection
}

type mockGateway struct {
	result   *payment.ChargeResult
	err      error
	requests []payment.ChargeRequest
}

func (m *mockGateway) Charge(_ context.Context, req payment.ChargeRequest) (*payment.ChargeResult, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type mockRecorder struct {
	saved []domain.Rental
	err   error
}

func (m *mockRecorder) Save(_ context.Context, rentals []domain.Rental) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, rentals...)
	return nil
}

type mockPublisher struct {
	published []events.RentalConfirmed
	err       error
}

func (m *mockPublisher) Publish(_ context.Context, event events.RentalConfirmed) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, event)
	return nil
}

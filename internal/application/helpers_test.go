// internal/application/helpers_test.go
package application

import (
	"context"
	"errors"
	"sync"

	"github.com/mahabubulhasibshawon/marketplace-admin/internal/domain"
)

type mockCache struct {
	get    func(ctx context.Context, key string) ([]byte, error)
	set    func(ctx context.Context, key string, value interface{}) error
	delete func(ctx context.Context, prefix string) error
	ping   func(ctx context.Context) error

	mu      sync.Mutex
	deleted []string
}

func newMissCache() *mockCache {
	return &mockCache{
		get:    func(ctx context.Context, key string) ([]byte, error) { return nil, errors.New("cache miss") },
		set:    func(ctx context.Context, key string, value interface{}) error { return nil },
		delete: func(ctx context.Context, prefix string) error { return nil },
		ping:   func(ctx context.Context) error { return nil },
	}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	return m.get(ctx, key)
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}) error {
	return m.set(ctx, key, value)
}

func (m *mockCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	m.mu.Lock()
	m.deleted = append(m.deleted, prefix)
	m.mu.Unlock()
	return m.delete(ctx, prefix)
}

func (m *mockCache) Ping(ctx context.Context) error {
	return m.ping(ctx)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

var testActor = Actor{AdminID: "admin-1", Role: domain.RoleAdmin}

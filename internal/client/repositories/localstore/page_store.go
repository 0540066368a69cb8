package localstore

import (
	"context"
	"time"
)

// PageStore exposes a Repository as the page-scoped substrate.
type PageStore struct {
	repo Repository
}

func NewPageStore(repo Repository) *PageStore {
	return &PageStore{repo: repo}
}

func (p *PageStore) Name() string { return "local" }

func (p *PageStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := p.repo.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	if v == nil {
		return "", false, nil
	}
	return string(v), true, nil
}

// Set stores value with no expiry; ttl is ignored.
func (p *PageStore) Set(ctx context.Context, key, value string, _ time.Duration) error {
	return p.repo.Set(ctx, key, []byte(value))
}

func (p *PageStore) Remove(ctx context.Context, key string) error {
	return p.repo.Delete(ctx, key)
}

package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	appErrors "github.com/noah-isme/college-admin-api/pkg/errors"
)

type fakeCacheRepo struct {
	mu          sync.Mutex
	values      map[string][]byte
	invalidated []string
	getErr      error
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{values: make(map[string][]byte)}
}

func (f *fakeCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return f.getErr
	}
	raw, ok := f.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[key] = raw
	return nil
}

func (f *fakeCacheRepo) DeleteByPattern(_ context.Context, pattern string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = append(f.invalidated, pattern)
	n := len(f.values)
	f.values = make(map[string][]byte)
	return n, nil
}

func newTestCache(repo *fakeCacheRepo) *CacheService {
	return NewCacheService(repo, nil, time.Minute, nil, true)
}

func strPtr(s string) *string { return &s }

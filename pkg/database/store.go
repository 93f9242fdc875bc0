package database

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	appErrors "github.com/noah-isme/college-admin-api/pkg/errors"
)

var errNoPool = errors.New("database pool not initialised")

// QueryObserver receives the duration of every scoped store call.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// Store hands out one pooled connection per operation.
type Store struct {
	db       *sqlx.DB
	timeout  time.Duration
	observer QueryObserver
}

// StoreOption customises a Store.
type StoreOption func(*Store)

// WithTimeout bounds every WithConn call.
func WithTimeout(d time.Duration) StoreOption {
	return func(s *Store) {
		s.timeout = d
	}
}

// WithObserver records query durations.
func WithObserver(o QueryObserver) StoreOption {
	return func(s *Store) {
		s.observer = o
	}
}

// NewStore wraps a pool.
func NewStore(db *sqlx.DB, opts ...StoreOption) *Store {
	s := &Store{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithConn acquires a dedicated connection, runs fn on it and releases it on
// every exit path. Returned errors are classified into appErrors kinds.
func (s *Store) WithConn(ctx context.Context, label string, fn func(ctx context.Context, conn *sqlx.Conn) error) error {
	if s == nil || s.db == nil {
		return appErrors.FromKind(appErrors.KindConnectionFailure, errNoPool)
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	if s.observer != nil {
		defer func() {
			s.observer.ObserveDBQuery(label, time.Since(start))
		}()
	}

	conn, err := s.db.Connx(ctx)
	if err != nil {
		return Classify(err)
	}
	defer conn.Close()

	return Classify(fn(ctx, conn))
}

// Ping checks that a connection can be established within the timeout.
func (s *Store) Ping(ctx context.Context) error {
	return s.WithConn(ctx, "ping", func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.PingContext(ctx)
	})
}

// Close releases the pool.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

package page

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"finitefield.org/dashpro-admin/internal/admin/observability"
	"finitefield.org/dashpro-admin/internal/admin/preferences"
	"finitefield.org/dashpro-admin/internal/admin/ui"
)

// ErrPageExpired is returned for instance ids the registry no longer holds.
var ErrPageExpired = errors.New("page: instance expired")

// DefaultIdleTTL is how long an untouched page stays live.
const DefaultIdleTTL = 30 * time.Minute

// DefaultSweepInterval is how often StartSweeping evicts idle pages.
const DefaultSweepInterval = time.Minute

// Registry holds live pages by instance id and evicts idle ones.
type Registry struct {
	factory *Factory
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time

	mu    sync.Mutex
	pages map[string]*Page
}

// RegistryOption customises a Registry.
type RegistryOption func(*Registry)

// WithIdleTTL overrides DefaultIdleTTL.
func WithIdleTTL(ttl time.Duration) RegistryOption {
	return func(r *Registry) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithClock overrides the wall clock used for eviction.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRegistry builds an empty registry around factory.
func NewRegistry(factory *Factory, opts ...RegistryOption) *Registry {
	r := &Registry{
		factory: factory,
		ttl:     DefaultIdleTTL,
		logger:  observability.OrNop(factory.Logger),
		now:     time.Now,
		pages:   make(map[string]*Page),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open renders a fresh page and registers it.
func (r *Registry) Open(ctx context.Context, name string, prefs *preferences.Active, opts RenderOptions) (*Page, error) {
	r.Sweep()
	p, err := r.factory.New(ctx, name, prefs, opts)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.pages[p.ID()] = p
	r.mu.Unlock()
	return p, nil
}

// Get returns the live page with id, provided it belongs to name. A page
// idle past the TTL is evicted here even if no sweep has run yet.
func (r *Registry) Get(name, id string) (*Page, error) {
	r.mu.Lock()
	p, ok := r.pages[id]
	if ok && p.LastUsed().Before(r.now().Add(-r.ttl)) {
		delete(r.pages, id)
		r.mu.Unlock()
		p.Close()
		return nil, ErrPageExpired
	}
	r.mu.Unlock()
	if !ok || p.Name() != name {
		return nil, ErrPageExpired
	}
	return p, nil
}

// Len reports how many pages are live.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}

// Sweep closes pages idle for longer than the TTL.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)
	r.mu.Lock()
	var stale []*Page
	for id, p := range r.pages {
		if p.LastUsed().Before(cutoff) {
			stale = append(stale, p)
			delete(r.pages, id)
		}
	}
	r.mu.Unlock()

	for _, p := range stale {
		p.Close()
	}
	if len(stale) > 0 {
		r.logger.Debug("evicted idle pages", zap.Int("count", len(stale)))
	}
	return len(stale)
}

// StartSweeping runs Sweep every interval on s until stop is called.
func (r *Registry) StartSweeping(s ui.Scheduler, interval time.Duration) (stop func()) {
	if s == nil {
		s = ui.SystemScheduler()
	}
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	var (
		mu      sync.Mutex
		stopped bool
		timer   ui.Timer
		tick    func()
	)
	tick = func() {
		r.Sweep()
		mu.Lock()
		defer mu.Unlock()
		if !stopped {
			timer = s.AfterFunc(interval, tick)
		}
	}
	mu.Lock()
	timer = s.AfterFunc(interval, tick)
	mu.Unlock()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		stopped = true
		timer.Stop()
	}
}

// Close releases every page.
func (r *Registry) Close() {
	r.mu.Lock()
	pages := r.pages
	r.pages = make(map[string]*Page)
	r.mu.Unlock()
	for _, p := range pages {
		p.Close()
	}
}

// DownloadStore keeps produced files for a short while under random ids.
type DownloadStore struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	files map[string]storedDownload
}

type storedDownload struct {
	file    ui.Download
	expires time.Time
}

// NewDownloadStore builds a store whose entries expire after ttl.
func NewDownloadStore(ttl time.Duration) *DownloadStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &DownloadStore{ttl: ttl, now: time.Now, files: make(map[string]storedDownload)}
}

// Put stores d and returns its id.
func (s *DownloadStore) Put(d ui.Download) string {
	id := ulid.Make().String()
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.files {
		if now.After(v.expires) {
			delete(s.files, k)
		}
	}
	s.files[id] = storedDownload{file: d, expires: now.Add(s.ttl)}
	return id
}

// Take returns and forgets the download with id.
func (s *DownloadStore) Take(id string) (ui.Download, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.files[id]
	if !ok {
		return ui.Download{}, false
	}
	delete(s.files, id)
	if s.now().After(v.expires) {
		return ui.Download{}, false
	}
	return v.file, true
}

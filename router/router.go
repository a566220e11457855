// SPDX-License-Identifier: MIT

package router

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bluele/gcache"

	"github.com/katalvlaran/metro/config"
	"github.com/katalvlaran/metro/fare"
	"github.com/katalvlaran/metro/loader"
	"github.com/katalvlaran/metro/network"
)

// ErrNilNetwork is returned by New for a nil network.
var ErrNilNetwork = errors.New("router: network is nil")

// Router answers route and fare queries over one network.
type Router struct {
	net      *network.Network
	cache    gcache.Cache // nil when caching is disabled
	logger   *slog.Logger
	ticket   fare.TicketType
	maxPaths int
}

type settings struct {
	logger    *slog.Logger
	cacheSize int
	ticket    fare.TicketType
	maxPaths  int
}

// Option configures a Router.
type Option func(*settings)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCacheSize sets the route cache capacity; n <= 0 disables caching.
func WithCacheSize(n int) Option {
	return func(s *settings) { s.cacheSize = n }
}

// WithDefaultTicket sets the ticket type used by Plan.
func WithDefaultTicket(t fare.TicketType) Option {
	return func(s *settings) { s.ticket = t }
}

// WithMaxPaths caps AllPaths results; 0 means unlimited.
func WithMaxPaths(n int) Option {
	return func(s *settings) { s.maxPaths = n }
}

// New wraps a built network.
func New(n *network.Network, opts ...Option) (*Router, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	s := settings{
		logger:    slog.Default(),
		cacheSize: config.DefaultCacheSize,
		ticket:    fare.SingleJourney,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if !s.ticket.Valid() {
		return nil, fmt.Errorf("router: default ticket: %w: %d", fare.ErrUnknownTicketType, int(s.ticket))
	}
	if s.maxPaths < 0 {
		return nil, fmt.Errorf("router: max paths cannot be negative (%d)", s.maxPaths)
	}

	r := &Router{
		net:      n,
		logger:   s.logger.With(slog.String("component", "router")),
		ticket:   s.ticket,
		maxPaths: s.maxPaths,
	}
	if s.cacheSize > 0 {
		r.cache = gcache.New(s.cacheSize).LRU().Build()
	}

	sum := n.Summary()
	r.logger.Info("network ready",
		slog.Int("stations", sum.Stations),
		slog.Int("lines", sum.Lines),
		slog.Int("segments", sum.Segments),
		slog.Int("transfers", sum.Transfers),
		slog.Int("cache_size", s.cacheSize),
	)

	return r, nil
}

// Open loads the topology named by cfg and returns a Router configured
// from it. Options given here override cfg.
func Open(cfg *config.Config, opts ...Option) (*Router, error) {
	if cfg == nil {
		return nil, errors.New("router: config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := []Option{
		WithCacheSize(cfg.CacheSize()),
		WithDefaultTicket(cfg.DefaultTicket()),
		WithMaxPaths(cfg.Routing.MaxPaths),
	}
	s := settings{logger: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}

	lopts := []loader.Option{
		loader.WithLogger(s.logger),
		loader.WithFormat(cfg.TopologyFormat()),
		loader.WithBuilderOptions(network.WithMergePolicy(cfg.MergePolicy())),
	}
	if cfg.Topology.Strict {
		lopts = append(lopts, loader.WithStrict())
	}
	n, st, err := loader.LoadFile(cfg.Topology.Path, lopts...)
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}
	if st.Skipped > 0 {
		s.logger.Warn("topology rows skipped",
			slog.String("path", cfg.Topology.Path),
			slog.Int("skipped", st.Skipped),
		)
	}

	return New(n, append(base, opts...)...)
}

// Network returns the underlying network.
func (r *Router) Network() *network.Network { return r.net }

// DefaultTicket returns the ticket type used by Plan.
func (r *Router) DefaultTicket() fare.TicketType { return r.ticket }

// cached returns the value for key, computing and storing it on a miss.
// Errors are never cached.
func (r *Router) cached(key string, compute func() (interface{}, error)) (interface{}, error) {
	if r.cache != nil {
		if v, err := r.cache.Get(key); err == nil {
			return v, nil
		}
		r.logger.Debug("cache miss", slog.String("key", key))
	}
	v, err := compute()
	if err != nil {
		return nil, err
	}
	if r.cache != nil {
		_ = r.cache.Set(key, v)
	}

	return v, nil
}

// Purge drops every cached result.
func (r *Router) Purge() {
	if r.cache != nil {
		r.cache.Purge()
	}
}

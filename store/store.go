// Package store caches decoded farbfeld images, or any value derived from
// them, in a pluggable byte store addressed by content digest.
//
// Components:
//   - Provider: byte store with TTL (ristretto, bigcache, redis).
//   - codec.Codec[V]: (de)serializes V <-> []byte.
//
// Keys are derived from content (ImageKey/BytesKey), so entries are
// immutable: a changed raster is a different key, never a stale value.
// Corrupt or undecodable entries found on read are deleted (self-heal) and
// reported through Hooks.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/unkn0wn-root/farbfeld"
	c "github.com/unkn0wn-root/farbfeld/codec"
	"github.com/unkn0wn-root/farbfeld/internal/digest"
)

// CostFunc reports the admission cost of an encoded entry to cost-aware
// providers (ristretto). The default charges 1 per entry.
type CostFunc func(key string, raw []byte) int64

// Cache is the high-level decoded-image cache API. V is the caller's value
// type; serialization is handled by a pluggable codec.Codec[V].
type Cache[V any] interface {
	Enabled() bool
	Close(context.Context) error

	// Get returns (value, true, nil) on hit and (zero, false, nil) on miss.
	// Undecodable entries count as misses and are removed.
	Get(ctx context.Context, key string) (v V, ok bool, err error)

	// Put stores value under key with the given TTL (0 => DefaultTTL).
	Put(ctx context.Context, key string, value V, ttl time.Duration) error

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error
}

// Options tune the cache. Namespace, Provider and Codec are required;
// everything else has a default.
type Options[V any] struct {
	// Required
	Namespace string // logical namespace to avoid collisions, e.g. "thumb", "frame"
	Provider  Provider
	Codec     c.Codec[V]

	Logger     Logger        // nil => NopLogger
	Hooks      Hooks         // nil => NopHooks
	DefaultTTL time.Duration // 0 => 10m
	CostFunc   CostFunc      // nil => 1 per entry
	Disabled   bool          // default false (enabled)
}

func New[V any](opts Options[V]) (Cache[V], error) {
	return newStore[V](opts)
}

// ImageKey derives the content key for an image: a short sha256 digest of
// its canonical farbfeld encoding. Identical rasters always map to the same
// key. Fails with the image's own validation error when it cannot be
// encoded.
func ImageKey(img farbfeld.Image) (string, error) {
	b, err := farbfeld.EncodeBytes(img)
	if err != nil {
		return "", err
	}
	return BytesKey(b), nil
}

// BytesKey derives the content key for an already-encoded farbfeld buffer.
// ImageKey(img) == BytesKey(EncodeBytes(img)) by construction.
func BytesKey(b []byte) string {
	return digest.Key("img", b)
}

type store[V any] struct {
	ns         string
	provider   Provider
	codec      c.Codec[V]
	log        Logger
	hooks      Hooks
	enabled    bool
	defaultTTL time.Duration
	cost       CostFunc
}

func newStore[V any](opts Options[V]) (*store[V], error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("store: provider is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("store: codec is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("store: namespace is required")
	}

	s := &store[V]{
		ns:       opts.Namespace,
		provider: opts.Provider,
		codec:    opts.Codec,
		enabled:  !opts.Disabled,
	}

	// defaults
	s.log = coalesce[Logger](opts.Logger, NopLogger{})
	s.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	s.defaultTTL = coalesce[time.Duration](opts.DefaultTTL, 10*time.Minute)

	if opts.CostFunc != nil {
		s.cost = opts.CostFunc
	} else {
		s.cost = func(_ string, _ []byte) int64 { return 1 }
	}

	return s, nil
}

func (s *store[V]) Enabled() bool { return s.enabled }

func (s *store[V]) Close(ctx context.Context) error {
	if s.provider != nil {
		return s.provider.Close(ctx)
	}
	return nil
}

func (s *store[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	if !s.enabled {
		return zero, false, nil
	}
	k := s.storageKey(key)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil || !ok {
		return zero, false, err
	}
	v, err := s.codec.Decode(raw)
	if err != nil {
		// entries are content-addressed; an undecodable one is garbage
		_ = s.provider.Del(ctx, k)
		s.hooks.SelfHeal(k, "value_decode")
		s.log.Debug("dropped undecodable entry", Fields{"key": key, "err": err})
		return zero, false, nil
	}
	return v, true, nil
}

func (s *store[V]) Put(ctx context.Context, key string, value V, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	raw, err := s.codec.Encode(value)
	if err != nil {
		return err
	}
	k := s.storageKey(key)
	ok, err := s.provider.Set(ctx, k, raw, s.cost(k, raw), ttl)
	if err != nil {
		return err
	}
	if !ok {
		s.hooks.SetRejected(k)
		s.log.Debug("Put rejected by provider (pressure)", Fields{"key": key})
	}
	return nil
}

func (s *store[V]) Del(ctx context.Context, key string) error {
	if !s.enabled {
		return nil
	}
	return s.provider.Del(ctx, s.storageKey(key))
}

func (s *store[V]) storageKey(userKey string) string {
	// isolate by namespace
	return "ff:" + s.ns + ":" + userKey
}

package store

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/unkn0wn-root/farbfeld"
	c "github.com/unkn0wn-root/farbfeld/codec"
)

type memEntry struct {
	v   []byte
	exp time.Time // zero => no TTL
}

type memProvider struct {
	m       map[string]memEntry
	lastTTL time.Duration
	reject  bool
}

var _ Provider = (*memProvider)(nil)

func newMemProvider() *memProvider { return &memProvider{m: make(map[string]memEntry)} }

func (p *memProvider) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := p.m[key]
	if !ok {
		return nil, false, nil
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		delete(p.m, key)
		return nil, false, nil
	}
	return e.v, true, nil
}

func (p *memProvider) Set(_ context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	p.lastTTL = ttl
	if p.reject {
		return false, nil
	}
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	p.m[key] = memEntry{v: value, exp: exp}
	return true, nil
}

func (p *memProvider) Del(_ context.Context, key string) error { delete(p.m, key); return nil }
func (p *memProvider) Close(_ context.Context) error           { return nil }

type recordingHooks struct {
	healed   []string
	rejected []string
}

func (h *recordingHooks) SelfHeal(key, _ string) { h.healed = append(h.healed, key) }
func (h *recordingHooks) SetRejected(key string) { h.rejected = append(h.rejected, key) }

var testImage = farbfeld.Image{
	{farbfeld.Pixel{1, 2, 3, 4}, farbfeld.Pixel{5, 6, 7, 8}},
	{farbfeld.Pixel{9, 10, 11, 12}, farbfeld.Pixel{13, 14, 15, 16}},
}

func newTestStore(t *testing.T, ns string, mp Provider, optsOpt func(*Options[farbfeld.Image])) Cache[farbfeld.Image] {
	t.Helper()
	opts := Options[farbfeld.Image]{
		Namespace: ns,
		Provider:  mp,
		Codec:     c.Farbfeld{},
	}
	if optsOpt != nil {
		optsOpt(&opts)
	}
	s, err := New[farbfeld.Image](opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func mustImageKey(t *testing.T, img farbfeld.Image) string {
	t.Helper()
	k, err := ImageKey(img)
	if err != nil {
		t.Fatalf("ImageKey: %v", err)
	}
	return k
}

func TestNewValidatesOptions(t *testing.T) {
	mp := newMemProvider()
	cases := []struct {
		name string
		opts Options[farbfeld.Image]
	}{
		{"missing provider", Options[farbfeld.Image]{Namespace: "x", Codec: c.Farbfeld{}}},
		{"missing codec", Options[farbfeld.Image]{Namespace: "x", Provider: mp}},
		{"missing namespace", Options[farbfeld.Image]{Provider: mp, Codec: c.Farbfeld{}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New[farbfeld.Image](tc.opts); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	s := newTestStore(t, "frame", mp, nil)
	defer s.Close(ctx)

	k := mustImageKey(t, testImage)

	if _, ok, err := s.Get(ctx, k); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
	if err := s.Put(ctx, k, testImage, 0); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := s.Get(ctx, k)
	if err != nil || !ok {
		t.Fatalf("Get after Put: ok=%v err=%v", ok, err)
	}
	if len(got) != 2 || got[1][1] != (farbfeld.Pixel{13, 14, 15, 16}) {
		t.Fatalf("image mismatch: %v", got)
	}

	if err := s.Del(ctx, k); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := s.Get(ctx, k); ok {
		t.Fatalf("expected miss after Del")
	}
}

func TestNamespaceIsolation(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	a := newTestStore(t, "a", mp, nil)
	b := newTestStore(t, "b", mp, nil)

	k := mustImageKey(t, testImage)
	if err := a.Put(ctx, k, testImage, 0); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, ok, _ := b.Get(ctx, k); ok {
		t.Fatalf("namespaces must not share entries")
	}
}

func TestDisabledStore(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	s := newTestStore(t, "frame", mp, func(o *Options[farbfeld.Image]) { o.Disabled = true })

	if s.Enabled() {
		t.Fatalf("store must report disabled")
	}
	k := mustImageKey(t, testImage)
	if err := s.Put(ctx, k, testImage, 0); err != nil {
		t.Fatalf("Put on disabled store must be a no-op: %v", err)
	}
	if len(mp.m) != 0 {
		t.Fatalf("disabled store must not touch the provider")
	}
	if _, ok, _ := s.Get(ctx, k); ok {
		t.Fatalf("disabled store must always miss")
	}
}

func TestSelfHealOnCorruptEntry(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	hooks := &recordingHooks{}
	s := newTestStore(t, "frame", mp, func(o *Options[farbfeld.Image]) { o.Hooks = hooks })

	// plant garbage directly under the storage key
	k := mustImageKey(t, testImage)
	storageKey := "ff:frame:" + k
	mp.m[storageKey] = memEntry{v: []byte("definitely not farbfeld")}

	if _, ok, err := s.Get(ctx, k); ok || err != nil {
		t.Fatalf("corrupt entry must read as a miss: ok=%v err=%v", ok, err)
	}
	if _, still := mp.m[storageKey]; still {
		t.Fatalf("corrupt entry must be deleted on read")
	}
	if len(hooks.healed) != 1 || hooks.healed[0] != storageKey {
		t.Fatalf("SelfHeal hook not recorded: %v", hooks.healed)
	}
}

func TestSetRejectedHook(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	mp.reject = true
	hooks := &recordingHooks{}
	s := newTestStore(t, "frame", mp, func(o *Options[farbfeld.Image]) { o.Hooks = hooks })

	k := mustImageKey(t, testImage)
	if err := s.Put(ctx, k, testImage, 0); err != nil {
		t.Fatalf("rejected Put is not an error: %v", err)
	}
	if len(hooks.rejected) != 1 {
		t.Fatalf("SetRejected hook not recorded: %v", hooks.rejected)
	}
}

func TestDefaultTTLApplied(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	s := newTestStore(t, "frame", mp, func(o *Options[farbfeld.Image]) { o.DefaultTTL = 42 * time.Second })

	k := mustImageKey(t, testImage)
	if err := s.Put(ctx, k, testImage, 0); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if mp.lastTTL != 42*time.Second {
		t.Fatalf("default TTL not applied: %v", mp.lastTTL)
	}
	if err := s.Put(ctx, k, testImage, time.Minute); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if mp.lastTTL != time.Minute {
		t.Fatalf("explicit TTL ignored: %v", mp.lastTTL)
	}
}

func TestPutPropagatesEncodeError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, "frame", newMemProvider(), nil)
	err := s.Put(ctx, "some-key", nil, 0)
	if !errors.Is(err, farbfeld.ErrNilImage) {
		t.Fatalf("got %v want ErrNilImage", err)
	}
}

func TestContentKeys(t *testing.T) {
	k1 := mustImageKey(t, testImage)
	k2 := mustImageKey(t, testImage)
	if k1 != k2 {
		t.Fatalf("identical images must produce identical keys: %s vs %s", k1, k2)
	}
	if !strings.HasPrefix(k1, "img:") || len(k1) != len("img:")+16 {
		t.Fatalf("unexpected key shape: %q", k1)
	}

	other := farbfeld.Image{{farbfeld.Pixel{0, 0, 0, 0}}}
	if mustImageKey(t, other) == k1 {
		t.Fatalf("different rasters must produce different keys")
	}

	b, err := farbfeld.EncodeBytes(testImage)
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}
	if BytesKey(b) != k1 {
		t.Fatalf("BytesKey must agree with ImageKey")
	}

	if _, err := ImageKey(nil); !errors.Is(err, farbfeld.ErrNilImage) {
		t.Fatalf("got %v want ErrNilImage", err)
	}
}

func TestBytesCodecStore(t *testing.T) {
	// caching raw encoded buffers without decoding them first
	ctx := context.Background()
	mp := newMemProvider()
	s, err := New[[]byte](Options[[]byte]{
		Namespace: "raw",
		Provider:  mp,
		Codec:     c.Bytes{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	raw, err := farbfeld.EncodeBytes(testImage)
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}
	k := BytesKey(raw)
	if err := s.Put(ctx, k, raw, 0); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := s.Get(ctx, k)
	if err != nil || !ok || !bytes.Equal(got, raw) {
		t.Fatalf("raw round trip failed: ok=%v err=%v", ok, err)
	}
}

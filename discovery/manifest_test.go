package discovery

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/tracerresolver/properties"
)

func writeManifest(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestParseManifest_YAML(t *testing.T) {
	m, err := ParseManifest([]byte(`
factory: [stdout, otlp, stdout]
resolver: otel-env
tracer: []
`), properties.FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, []string{"stdout", "otlp"}, m.Names(KindFactory))
	assert.Equal(t, []string{"otel-env"}, m.Names(KindResolver))
	assert.Empty(t, m.Names(KindTracer))
	assert.Empty(t, m.Names(KindConverter))
}

func TestParseManifest_JSON(t *testing.T) {
	m, err := ParseManifest([]byte(`{"converter": ["logging"]}`), properties.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"logging"}, m.Names(KindConverter))
}

func TestParseManifest_Errors(t *testing.T) {
	_, err := ParseManifest([]byte("widget: [a]"), properties.FormatYAML)
	assert.ErrorIs(t, err, ErrManifestParse)
	assert.ErrorIs(t, err, ErrInvalidKind)

	_, err = ParseManifest([]byte("factory: [1, 2]"), properties.FormatYAML)
	assert.ErrorIs(t, err, ErrManifestParse)

	_, err = ParseManifest([]byte("factory: {a: b}"), properties.FormatYAML)
	assert.ErrorIs(t, err, ErrManifestParse)

	_, err = ParseManifest([]byte("{"), properties.FormatJSON)
	assert.ErrorIs(t, err, ErrManifestParse)

	_, err = ParseManifest(nil, properties.Format("toml"))
	assert.ErrorIs(t, err, properties.ErrUnsupportedFormat)
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.yaml")
	writeManifest(t, path, "tracer: [noop]\n")

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"noop"}, m.Names(KindTracer))

	_, err = LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrManifestLoad)
}

func TestManifestDiscoverer_FiltersAndOrders(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(KindFactory, "a", ctor("a"))
	r.MustRegister(KindFactory, "b", ctor("b"))
	r.MustRegister(KindFactory, "c", ctor("c"))

	path := filepath.Join(t.TempDir(), "providers.yaml")
	writeManifest(t, path, "factory: [c, a]\n")

	d := NewManifestDiscoverer(r, path)

	assert.Equal(t, []string{"c", "a"}, ids(d.Discover(KindFactory)))
	assert.Empty(t, d.Discover(KindResolver))
	assert.Equal(t, path, d.Path())
}

func TestManifestDiscoverer_NoPathUsesWholeRegistry(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(KindTracer, "a", ctor("a"))
	r.MustRegister(KindTracer, "b", ctor("b"))

	d := NewManifestDiscoverer(r, "")

	assert.Equal(t, []string{"a", "b"}, ids(d.Discover(KindTracer)))
}

func TestManifestDiscoverer_UnreadableManifestYieldsNothing(t *testing.T) {
	log, logs := observed()
	r := NewRegistry()
	r.MustRegister(KindTracer, "a", ctor("a"))

	d := NewManifestDiscoverer(r, filepath.Join(t.TempDir(), "missing.yaml"), WithLogger(log), WithCache(0, 0))

	assert.Empty(t, d.Discover(KindTracer))
	assert.Empty(t, d.Discover(KindTracer))
	assert.Equal(t, 2, logs.FilterMessage("failed to read provider manifest").Len(), "failures are not cached")
}

func TestManifestDiscoverer_CacheAndPurge(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(KindFactory, "a", ctor("a"))
	r.MustRegister(KindFactory, "b", ctor("b"))

	path := filepath.Join(t.TempDir(), "providers.yaml")
	writeManifest(t, path, "factory: [a]\n")
	d := NewManifestDiscoverer(r, path, WithCache(4, 0))

	first := d.Discover(KindFactory)
	assert.Equal(t, []string{"a"}, ids(first))

	writeManifest(t, path, "factory: [b]\n")
	second := d.Discover(KindFactory)
	assert.Equal(t, []string{"a"}, ids(second), "names come from the cache")
	assert.NotSame(t, first[0].Instance, second[0].Instance, "instances are never cached")

	d.Purge()
	assert.Equal(t, []string{"b"}, ids(d.Discover(KindFactory)))
}

func TestManifestDiscoverer_ConcurrentFirstReaders(t *testing.T) {
	r := NewRegistry()
	var built atomic.Int32
	r.MustRegister(KindResolver, "a", func() any {
		built.Add(1)
		return &provider{id: "a"}
	})

	path := filepath.Join(t.TempDir(), "providers.yaml")
	writeManifest(t, path, "resolver: [a]\n")
	d := NewManifestDiscoverer(r, path, WithCache(4, 0))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, []string{"a"}, ids(d.Discover(KindResolver)))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(8), built.Load())
}

func TestWatch_PurgesOnChange(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(KindFactory, "a", ctor("a"))
	r.MustRegister(KindFactory, "b", ctor("b"))

	path := filepath.Join(t.TempDir(), "providers.yaml")
	writeManifest(t, path, "factory: [a]\n")
	d := NewManifestDiscoverer(r, path, WithCache(4, 0))
	require.Equal(t, []string{"a"}, ids(d.Discover(KindFactory)))

	changed := make(chan struct{}, 1)
	w, err := d.Watch(t.Context(), WithDebounce(10*time.Millisecond), WithOnChange(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}))
	require.NoError(t, err)
	defer func() { assert.NoError(t, w.Close()) }()

	writeManifest(t, path, "factory: [b]\n")

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("manifest change not observed")
	}
	assert.Equal(t, []string{"b"}, ids(d.Discover(KindFactory)))
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "providers.yaml")
	writeManifest(t, path, "factory: []\n")
	d := NewManifestDiscoverer(NewRegistry(), path, WithCache(4, 0))

	var calls atomic.Int32
	w, err := d.Watch(t.Context(), WithDebounce(10*time.Millisecond), WithOnChange(func() { calls.Add(1) }))
	require.NoError(t, err)

	writeManifest(t, filepath.Join(dir, "other.yaml"), "x: 1\n")
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, w.Close())
	assert.Zero(t, calls.Load())
}

func TestWatch_Errors(t *testing.T) {
	_, err := NewManifestDiscoverer(NewRegistry(), "").Watch(t.Context())
	assert.ErrorIs(t, err, ErrNoManifest)

	_, err = NewManifestDiscoverer(NewRegistry(), filepath.Join(t.TempDir(), "nope", "providers.yaml")).Watch(t.Context())
	assert.Error(t, err)
}

func TestWatch_StopsWhenContextEnds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.yaml")
	writeManifest(t, path, "factory: []\n")
	d := NewManifestDiscoverer(NewRegistry(), path, WithCache(4, 0))

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(t.Context())
	w, err := d.Watch(ctx, WithDebounce(10*time.Millisecond), WithOnChange(func() { calls.Add(1) }))
	require.NoError(t, err)

	cancel()
	select {
	case <-w.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}

	writeManifest(t, path, "factory: [a]\n")
	time.Sleep(100 * time.Millisecond)

	assert.Zero(t, calls.Load())
	assert.NoError(t, w.Close())
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.yaml")
	writeManifest(t, path, "factory: []\n")

	w, err := NewManifestDiscoverer(NewRegistry(), path).Watch(t.Context())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

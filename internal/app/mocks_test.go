package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cristianoliveira/cbd-helper/internal/host"
	"github.com/cristianoliveira/cbd-helper/internal/storage"
)

type mockTabs struct {
	mock.Mock
}

func (m *mockTabs) ActiveTab(ctx context.Context) (host.Tab, error) {
	args := m.Called(ctx)
	return args.Get(0).(host.Tab), args.Error(1)
}

func (m *mockTabs) CreateTab(ctx context.Context, url string, opts host.CreateTabOptions) (host.Tab, error) {
	args := m.Called(ctx, url, opts)
	return args.Get(0).(host.Tab), args.Error(1)
}

type mockNotifications struct {
	mock.Mock
}

func (m *mockNotifications) Create(ctx context.Context, id string, opts host.NotificationOptions) (string, error) {
	args := m.Called(ctx, id, opts)
	return args.String(0), args.Error(1)
}

// recordingStore wraps a memory store and logs writes to a shared journal.
type recordingStore struct {
	*storage.MemoryStore
	journal *[]string
	getErr  error
	setErr  error
}

func newRecordingStore(journal *[]string) *recordingStore {
	return &recordingStore{MemoryStore: storage.NewMemoryStore(), journal: journal}
}

func (s *recordingStore) Get(ctx context.Context, namespace string, keys ...string) (map[string]any, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.MemoryStore.Get(ctx, namespace, keys...)
}

func (s *recordingStore) Set(ctx context.Context, namespace string, values map[string]any) error {
	*s.journal = append(*s.journal, "set:"+namespace)
	if s.setErr != nil {
		return s.setErr
	}
	return s.MemoryStore.Set(ctx, namespace, values)
}

type fixedURLs string

func (f fixedURLs) ExtensionURL(path string) string { return string(f) + path }

package app

import (
	"context"
	"sync"

	"github.com/bft-labs/wallcycle/internal/domain"
	"github.com/bft-labs/wallcycle/internal/ports"
)

// mockLogger implements ports.Logger for testing.
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields ...ports.Field) {}
func (mockLogger) Info(msg string, fields ...ports.Field)  {}
func (mockLogger) Warn(msg string, fields ...ports.Field)  {}
func (mockLogger) Error(msg string, fields ...ports.Field) {}

// recordingLogger keeps every Info message.
type recordingLogger struct {
	mockLogger
	mu    sync.Mutex
	infos []string
}

func (l *recordingLogger) Info(msg string, fields ...ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Logged(msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.infos {
		if m == msg {
			return true
		}
	}
	return false
}

// fakeDisplay records apply calls and returns scripted probe/apply results.
// When follow is set, a successful apply becomes the next probe result.
type fakeDisplay struct {
	mu       sync.Mutex
	current  domain.ImagePath
	follow   bool
	applyErr error
	probes   int
	applied  []domain.ImagePath
	applyCh  chan domain.ImagePath
}

func (f *fakeDisplay) ProbeCurrent(ctx context.Context) domain.ImagePath {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.probes++
	return f.current
}

func (f *fakeDisplay) ApplyImage(ctx context.Context, image domain.ImagePath, transition domain.Transition) error {
	f.mu.Lock()
	f.applied = append(f.applied, image)
	err := f.applyErr
	if err == nil && f.follow {
		f.current = image
	}
	ch := f.applyCh
	f.mu.Unlock()

	if ch != nil {
		ch <- image
	}
	return err
}

func (f *fakeDisplay) Applied() []domain.ImagePath {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.ImagePath{}, f.applied...)
}

func (f *fakeDisplay) Probes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.probes
}

// recordingEmitter collects rotation results.
type recordingEmitter struct {
	mu      sync.Mutex
	results []CycleResult
}

func (e *recordingEmitter) OnRotation(result CycleResult) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.results = append(e.results, result)
}

func (e *recordingEmitter) Results() []CycleResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]CycleResult{}, e.results...)
}

func catalogOf(paths ...string) domain.Catalog {
	images := make([]domain.ImagePath, len(paths))
	for i, p := range paths {
		images[i] = domain.NewImagePath(p)
	}
	return domain.NewCatalog(images)
}

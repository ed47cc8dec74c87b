package tool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type captureRecorder struct {
	mu      sync.Mutex
	records []struct {
		Tool    string
		Outcome Kind
	}
}

func (c *captureRecorder) Record(tool string, outcome Kind, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, struct {
		Tool    string
		Outcome Kind
	}{tool, outcome})
}

func newEchoDispatcher(t *testing.T, usage UsageRecorder) *Dispatcher {
	t.Helper()
	r := NewRegistry()
	err := r.Register(Descriptor{
		Name:        "echo",
		Description: "Return x unchanged",
		Params:      []Param{{Name: "x", Type: TypeString, Required: true}},
		Handler: func(_ context.Context, args Args) (any, error) {
			return args.String("x"), nil
		},
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	return NewDispatcher(r, usage, quietLogger())
}

func TestDispatch_Success(t *testing.T) {
	t.Parallel()

	d := newEchoDispatcher(t, nil)
	res := d.Dispatch(context.Background(), Request{Tool: "echo", Args: Args{"x": "hello"}})

	if res.Status != StatusSuccess {
		t.Fatalf("expected success, got %q (%s)", res.Status, res.Error)
	}
	if res.Tool != "echo" {
		t.Errorf("expected tool echo, got %q", res.Tool)
	}
	if res.Result != "hello" {
		t.Errorf("expected result hello, got %v", res.Result)
	}
}

func TestDispatch_MissingToolName(t *testing.T) {
	t.Parallel()

	d := newEchoDispatcher(t, nil)
	res := d.Dispatch(context.Background(), Request{})

	if res.Status != StatusError {
		t.Fatalf("expected error envelope, got %q", res.Status)
	}
	if res.Tool != "unknown" {
		t.Errorf("expected tool field %q, got %q", "unknown", res.Tool)
	}
	if !strings.Contains(res.Error, "missing tool name") {
		t.Errorf("unexpected error message %q", res.Error)
	}
}

func TestDispatch_UnknownToolListsValidNames(t *testing.T) {
	t.Parallel()

	d := newEchoDispatcher(t, nil)
	res := d.Dispatch(context.Background(), Request{Tool: "does_not_exist"})

	if res.Status != StatusError {
		t.Fatalf("expected error envelope, got %q", res.Status)
	}
	if res.Tool != "does_not_exist" {
		t.Errorf("expected tool field preserved, got %q", res.Tool)
	}
	if !strings.Contains(res.Error, "not found") {
		t.Errorf("expected not-found message, got %q", res.Error)
	}
	if !strings.Contains(res.Error, "echo") {
		t.Errorf("expected valid names in message, got %q", res.Error)
	}
}

func TestDispatch_HandlerErrorIsolated(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	_ = r.Register(Descriptor{
		Name: "boom",
		Handler: func(_ context.Context, _ Args) (any, error) {
			return nil, errors.New("upstream exploded")
		},
	})
	d := NewDispatcher(r, nil, quietLogger())

	res := d.Dispatch(context.Background(), Request{Tool: "boom"})
	if res.Status != StatusError {
		t.Fatalf("expected error envelope, got %q", res.Status)
	}
	if res.Error == "" {
		t.Fatal("expected non-empty error message")
	}

	// The dispatcher must keep serving after a handler failure.
	res = d.Dispatch(context.Background(), Request{Tool: "boom"})
	if res.Status != StatusError {
		t.Fatalf("expected dispatcher to remain usable, got %q", res.Status)
	}
}

func TestDispatch_HandlerPanicIsolated(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	_ = r.Register(Descriptor{
		Name: "panic",
		Handler: func(_ context.Context, _ Args) (any, error) {
			panic("handler bug")
		},
	})
	d := NewDispatcher(r, nil, quietLogger())

	res := d.Dispatch(context.Background(), Request{Tool: "panic"})
	if res.Status != StatusError {
		t.Fatalf("expected error envelope after panic, got %q", res.Status)
	}
	if !strings.Contains(res.Error, "internal error") {
		t.Errorf("expected generic internal message, got %q", res.Error)
	}
}

func TestDispatch_ClassifiedErrorsSurfaceVerbatim(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	_ = r.Register(Descriptor{
		Name: "flaky_upstream",
		Handler: func(_ context.Context, _ Args) (any, error) {
			return nil, UpstreamError(503, "service unavailable")
		},
	})
	d := NewDispatcher(r, nil, quietLogger())

	res := d.Dispatch(context.Background(), Request{Tool: "flaky_upstream"})
	if !strings.Contains(res.Error, "service unavailable") {
		t.Errorf("expected classified message reported verbatim, got %q", res.Error)
	}
}

func TestDispatch_UsageRecordedBestEffort(t *testing.T) {
	t.Parallel()

	rec := &captureRecorder{}
	d := newEchoDispatcher(t, rec)

	d.Dispatch(context.Background(), Request{Tool: "echo", Args: Args{"x": "a"}})
	d.Dispatch(context.Background(), Request{Tool: "nope"})

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.records) != 2 {
		t.Fatalf("expected 2 usage records, got %d", len(rec.records))
	}
	if rec.records[0].Outcome != Kind(StatusSuccess) {
		t.Errorf("expected success outcome, got %q", rec.records[0].Outcome)
	}
	if rec.records[1].Outcome != KindUnknownTool {
		t.Errorf("expected unknown_tool outcome, got %q", rec.records[1].Outcome)
	}
}

func TestDispatch_ConcurrentIsolation(t *testing.T) {
	t.Parallel()

	const n = 100
	r := NewRegistry()
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("tool_%03d", i)
		want := fmt.Sprintf("result_%03d", i)
		_ = r.Register(Descriptor{
			Name: name,
			Handler: func(_ context.Context, _ Args) (any, error) {
				return want, nil
			},
		})
	}
	d := NewDispatcher(r, nil, quietLogger())

	var wg sync.WaitGroup
	results := make([]Result, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = d.Dispatch(context.Background(), Request{Tool: fmt.Sprintf("tool_%03d", i)})
		}(i)
	}
	wg.Wait()

	for i, res := range results {
		want := fmt.Sprintf("result_%03d", i)
		if res.Status != StatusSuccess {
			t.Errorf("call %d: expected success, got %q (%s)", i, res.Status, res.Error)
			continue
		}
		if res.Result != want {
			t.Errorf("call %d: cross-contaminated result %v, want %q", i, res.Result, want)
		}
	}
}

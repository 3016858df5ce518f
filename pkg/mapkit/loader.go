package mapkit

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"tripflow/pkg/utils"
)

// LoadState tracks the one-shot acquisition of the GL map capability.
type LoadState int

const (
	LoadNotStarted LoadState = iota
	LoadInFlight
	LoadReady
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadNotStarted:
		return "not_started"
	case LoadInFlight:
		return "in_flight"
	case LoadReady:
		return "ready"
	case LoadFailed:
		return "failed"
	}
	return "unknown"
}

const glScriptURL = "https://api.map.baidu.com/api?v=1.0&type=webgl&ak=%s"

// FetchFunc performs the underlying acquisition. Injectable for tests.
type FetchFunc func(ctx context.Context, url string) error

// Loader acquires the map capability once per process, keyed by the first
// credential it sees. Concurrent callers coalesce onto a single in-flight
// load and observe the same eventual outcome. Ready is permanent; Failed is
// terminal and never auto-retried.
type Loader struct {
	mu    sync.Mutex
	state LoadState
	err   error
	done  chan struct{}
	fetch FetchFunc
}

func NewLoader(fetch FetchFunc) *Loader {
	if fetch == nil {
		fetch = defaultFetch
	}
	return &Loader{state: LoadNotStarted, fetch: fetch}
}

func (l *Loader) State() LoadState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// EnsureLoaded resolves immediately when the capability is already present,
// joins the pending load when one is in flight, and starts the single
// acquisition otherwise. A credential differing from the one that loaded the
// capability is ignored: first credential wins for the process lifetime.
func (l *Loader) EnsureLoaded(ctx context.Context, credential string) error {
	if strings.TrimSpace(credential) == "" {
		return utils.ErrMissingCredential
	}

	l.mu.Lock()
	switch l.state {
	case LoadReady:
		l.mu.Unlock()
		return nil
	case LoadFailed:
		err := l.err
		l.mu.Unlock()
		return err
	case LoadInFlight:
		done := l.done
		l.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
		l.mu.Lock()
		err := l.err
		l.mu.Unlock()
		return err
	}

	// First caller starts the one acquisition. The fetch is detached from the
	// initiating request's context: once started it runs to completion or
	// failure, so one disconnecting client cannot latch Failed for everyone.
	l.state = LoadInFlight
	l.done = make(chan struct{})
	done := l.done
	l.mu.Unlock()

	err := l.fetch(context.WithoutCancel(ctx), fmt.Sprintf(glScriptURL, credential))

	l.mu.Lock()
	if err != nil {
		log.Printf("map capability acquisition failed: %v", err)
		l.state = LoadFailed
		l.err = fmt.Errorf("%w: %v", utils.ErrAcquisitionFailed, err)
	} else {
		l.state = LoadReady
		l.err = nil
	}
	close(done)
	err = l.err
	l.mu.Unlock()
	return err
}

func defaultFetch(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("script fetch returned status %d", resp.StatusCode)
	}
	return nil
}

package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// inflight lets each viewer have at most one outstanding fetch. A fetch for
// a different key cancels the viewer's previous one; callers asking for the
// same key join the outstanding call.
type inflight struct {
	mu      sync.Mutex
	group   singleflight.Group
	viewers map[string]*viewerFetch
	nextGen uint64
}

type viewerFetch struct {
	key        string
	callKey    string
	ctx        context.Context
	cancel     context.CancelFunc
	superseded atomic.Bool
}

func newInflight() *inflight {
	return &inflight{viewers: make(map[string]*viewerFetch)}
}

// run executes fn for viewer under a context that survives the caller
// leaving but is cancelled when the viewer moves on to another key
func (f *inflight) run(ctx context.Context, viewer, key string, fn func(ctx context.Context) (any, error)) (any, error) {
	fetch, result := f.start(ctx, viewer, key, fn)

	select {
	case res := <-result:
		if fetch.superseded.Load() {
			return nil, ErrSuperseded
		}
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// start joins the viewer's outstanding fetch for key or begins a new one.
// The singleflight call is made under f.mu, so a fetch still registered for
// the viewer has not returned yet and joining it is safe.
func (f *inflight) start(ctx context.Context, viewer, key string, fn func(ctx context.Context) (any, error)) (*viewerFetch, <-chan singleflight.Result) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if cur, ok := f.viewers[viewer]; ok {
		if cur.key == key {
			return cur, f.call(viewer, cur, fn)
		}
		cur.superseded.Store(true)
		cur.cancel()
	}

	f.nextGen++
	fetchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	fetch := &viewerFetch{
		key:     key,
		callKey: fmt.Sprintf("%s\x00%s\x00%d", viewer, key, f.nextGen),
		ctx:     fetchCtx,
		cancel:  cancel,
	}
	f.viewers[viewer] = fetch
	return fetch, f.call(viewer, fetch, fn)
}

func (f *inflight) call(viewer string, fetch *viewerFetch, fn func(ctx context.Context) (any, error)) <-chan singleflight.Result {
	return f.group.DoChan(fetch.callKey, func() (any, error) {
		defer f.release(viewer, fetch)
		return fn(fetch.ctx)
	})
}

func (f *inflight) release(viewer string, fetch *viewerFetch) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.viewers[viewer] == fetch {
		delete(f.viewers, viewer)
	}
	fetch.cancel()
}

func (f *inflight) outstanding() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.viewers)
}

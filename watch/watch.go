/*
Package watch broadcasts structural changes of an arbor tree to subscribers.

A Watcher observes a subtree and publishes every arbor.Mutation below its
root. Subscribers receive mutations on channels, in the order they happened:

	w := watch.New(root)
	defer w.Close()
	ch, _ := w.Subscribe(ctx, 16)
	go func() {
	    for m := range ch {
	        fmt.Printf("%s %v at %d\n", m.Kind, m.Child, m.Index)
	    }
	}()

Trees are not safe for concurrent mutation; a Watcher only moves the
notifications to other goroutines. Publishing blocks the mutating goroutine
while a subscriber's buffer is full, unless the Watcher is lossy.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package watch

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/guiguan/caster"
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

// ErrClosed is returned when subscribing to a closed watcher.
const ErrClosed = arbor.TreeError("watcher closed")

// Watcher publishes the mutations of a subtree.
type Watcher struct {
	root   arbor.Node
	cast   *caster.Caster // broadcaster for mutation events
	lossy  bool
	cancel func()
	once   sync.Once
	closed atomic.Bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// Lossy lets a watcher drop mutations for subscribers which do not keep up,
// instead of blocking the mutating goroutine.
func Lossy() Option {
	return func(w *Watcher) {
		w.lossy = true
	}
}

// New starts watching the subtree rooted at root.
func New(root arbor.Node, opts ...Option) *Watcher {
	w := &Watcher{
		root: root,
		cast: caster.New(nil),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.cancel = arbor.Observe(root, w.publish)
	return w
}

func (w *Watcher) publish(m arbor.Mutation) {
	var ok bool
	if w.lossy {
		ok = w.cast.TryPub(m)
	} else {
		ok = w.cast.Pub(m)
	}
	if !ok {
		tracer().Infof("watch: mutation %s of %v not published", m.Kind, arbor.Label(m.Child))
	}
}

// Subscribe returns a channel delivering mutations, buffered with capacity.
// The channel is closed when ctx is done or the watcher is closed.
func (w *Watcher) Subscribe(ctx context.Context, capacity uint) (<-chan arbor.Mutation, error) {
	if w.closed.Load() {
		return nil, ErrClosed
	}
	sub, ok := w.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrClosed
	}
	out := make(chan arbor.Mutation, capacity)
	go func() {
		defer close(out)
		for {
			select {
			case msg, ok := <-sub:
				if !ok {
					return
				}
				select {
				case out <- msg.(arbor.Mutation):
				case <-ctx.Done():
					w.cast.Unsub(sub)
					return
				}
			case <-ctx.Done():
				w.cast.Unsub(sub)
				return
			}
		}
	}()
	return out, nil
}

// Close stops watching and closes all subscriber channels. Close may be
// called more than once.
func (w *Watcher) Close() {
	w.once.Do(func() {
		w.closed.Store(true)
		w.cancel()
		w.cast.Close()
		tracer().Debugf("watch: stopped watching %s", arbor.Label(w.root))
	})
}

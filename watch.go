package octree

import (
	"context"

	"github.com/guiguan/caster"
)

// Trees stay single-writer containers: all mutation happens in the owning
// goroutine, and the broadcaster only fans finished mutations out to
// observers. Delivery is best-effort; a subscriber that cannot keep up
// loses events rather than stalling the writer.

// ErrWatchClosed signals that the mutation broadcaster has been shut down.
const ErrWatchClosed = OctreeError("mutation broadcaster has been closed")

// watchBuffer is the per-subscriber event channel capacity.
const watchBuffer = 16

// EventOp classifies a mutation event.
type EventOp uint8

// Mutation event kinds carried by Event.
const (
	EventInsert EventOp = iota // a value has been stored (Insert or Replace)
	EventDelete                // a value has been removed (Take or Delete)
)

// Event describes a single finished mutation of an octree.
type Event[T comparable] struct {
	Op      EventOp
	X, Y, Z int
	Value   T // the stored value for inserts, the removed value for deletes
}

// Watch subscribes to mutation events of the tree.
//
// The returned channel receives an Event for every value stored or removed
// after the subscription, until ctx is cancelled or CloseWatch is called.
// The channel is closed when the subscription ends.
func (oct *Octree[T]) Watch(ctx context.Context) (<-chan Event[T], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if oct.cast == nil {
		oct.cast = caster.New(nil) // we will broadcast mutation events to subscribers
	}
	src, ok := oct.cast.Sub(ctx, watchBuffer)
	if !ok {
		return nil, ErrWatchClosed
	}
	events := make(chan Event[T], watchBuffer)
	go func(src <-chan interface{}) {
		// The broadcaster closes src lazily, on the next publish after
		// cancellation; end the subscription on ctx directly.
		defer close(events)
		for {
			select {
			case m, ok := <-src:
				if !ok {
					return
				}
				event, ok := m.(Event[T])
				if !ok {
					tracer().Errorf("octree watch: unexpected event payload %T", m)
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}(src)
	return events, nil
}

// CloseWatch shuts down event broadcasting, closing all subscriptions.
//
// A tree that has never been watched is unaffected. Watch may be called
// again afterwards, starting a fresh broadcaster.
func (oct *Octree[T]) CloseWatch() {
	if oct.cast == nil {
		return
	}
	oct.cast.Close()
	oct.cast = nil
}

// publish broadcasts a mutation event to watchers, if there are any.
func (oct *Octree[T]) publish(op EventOp, loc *NodeLoc, value T) {
	if oct.cast == nil {
		return
	}
	oct.cast.TryPub(Event[T]{
		Op:    op,
		X:     loc.x,
		Y:     loc.y,
		Z:     loc.z,
		Value: value,
	})
}

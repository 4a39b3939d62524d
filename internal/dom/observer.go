package dom

import (
	"errors"

	"golang.org/x/net/html"

	"github.com/alexisbeaulieu97/surfaces/internal/ports"
)

type observer struct {
	id      int
	handler ports.MutationHandler
	queue   []ports.MutationRecord
	active  bool
}

// ObserveInsertions registers handler for insertions anywhere under the body.
// Records queue up until Flush.
func (d *Document) ObserveInsertions(handler ports.MutationHandler) (ports.Subscription, error) {
	if handler == nil {
		return nil, errors.New("dom: nil mutation handler")
	}
	d.nextID++
	obs := &observer{id: d.nextID, handler: handler, active: true}
	d.observers = append(d.observers, obs)

	return subscription{cancel: func() { d.disconnect(obs.id) }}, nil
}

// Flush delivers queued records, one batch per observer per round, until no
// records remain. Records queued by a handler go out in a later round. It returns
// the number of batches delivered. Nested calls from a handler are ignored.
func (d *Document) Flush() int {
	if d.flushing {
		return 0
	}
	d.flushing = true
	defer func() { d.flushing = false }()

	delivered := 0
	for {
		progressed := false
		for _, obs := range append([]*observer(nil), d.observers...) {
			if !obs.active || len(obs.queue) == 0 {
				continue
			}
			batch := obs.queue
			obs.queue = nil
			obs.handler(batch)
			delivered++
			progressed = true
		}
		if !progressed {
			return delivered
		}
	}
}

// Pending returns the number of queued records across observers.
func (d *Document) Pending() int {
	var n int
	for _, obs := range d.observers {
		n += len(obs.queue)
	}
	return n
}

func (d *Document) recordInsertion(parent *html.Node, added []*html.Node) {
	if len(d.observers) == 0 || len(added) == 0 || !d.underBody(parent) {
		return
	}

	nodes := make([]ports.Node, 0, len(added))
	for _, n := range added {
		nodes = append(nodes, wrap(n))
	}
	for _, obs := range d.observers {
		if obs.active {
			obs.queue = append(obs.queue, ports.MutationRecord{Added: nodes})
		}
	}
}

func (d *Document) underBody(n *html.Node) bool {
	body := d.body()
	if body == nil {
		return false
	}
	for p := n; p != nil; p = p.Parent {
		if p == body {
			return true
		}
	}
	return false
}

func (d *Document) disconnect(id int) {
	for i, obs := range d.observers {
		if obs.id == id {
			obs.active = false
			obs.queue = nil
			d.observers = append(d.observers[:i], d.observers[i+1:]...)
			return
		}
	}
}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

var _ ports.Notifier = (*Document)(nil)

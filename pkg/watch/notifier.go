package watch

import "sync"

type (
	// Notifier fans out table-change signals to subscribers. Repositories
	// publish after every successful mutation; services re-query on each
	// signal, so a subscription behaves as a pull-based live query.
	Notifier interface {
		// Subscribe registers for changes on one or more tables. Join
		// queries subscribe to every table they read from.
		Subscribe(tables ...string) *Subscription
		Publish(table string)
	}

	// Subscription is an explicit live-query handle. C carries at most one
	// pending signal; coalesced notifications are fine because the
	// subscriber re-queries the full snapshot anyway. Close is idempotent.
	Subscription struct {
		C chan struct{}

		once     sync.Once
		notifier *notifier
		tables   []string
	}

	notifier struct {
		mu   sync.RWMutex
		subs map[string]map[*Subscription]struct{}
	}
)

func NewNotifier() Notifier {
	return &notifier{subs: make(map[string]map[*Subscription]struct{})}
}

func (n *notifier) Subscribe(tables ...string) *Subscription {
	sub := &Subscription{
		C:        make(chan struct{}, 1),
		notifier: n,
		tables:   tables,
	}
	n.mu.Lock()
	for _, table := range tables {
		if n.subs[table] == nil {
			n.subs[table] = make(map[*Subscription]struct{})
		}
		n.subs[table][sub] = struct{}{}
	}
	n.mu.Unlock()
	return sub
}

func (n *notifier) Publish(table string) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for sub := range n.subs[table] {
		select {
		case sub.C <- struct{}{}:
		default:
		}
	}
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		n := s.notifier
		n.mu.Lock()
		for _, table := range s.tables {
			if set := n.subs[table]; set != nil {
				delete(set, s)
				if len(set) == 0 {
					delete(n.subs, table)
				}
			}
		}
		n.mu.Unlock()
	})
}

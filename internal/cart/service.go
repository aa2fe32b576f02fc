package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/seafood-house/pos-backend/internal/menu"
	"github.com/sirupsen/logrus"
)

var ErrUnknownItem = errors.New("item not in catalog")

// CatalogProvider supplies catalog snapshots for ordering sessions.
// *menu.Service satisfies it.
type CatalogProvider interface {
	Catalog(ctx context.Context) ([]menu.Item, error)
}

type session struct {
	cart    Cart
	catalog []menu.Item
	// appliedSeq guards snapshot installs: a fetch only lands if no newer
	// fetch has started since, so a slow stale response cannot clobber a
	// fresher one.
	startedSeq int
	appliedSeq int
}

// Service owns one ordering session per table: the cart plus the catalog
// snapshot taken at screen entry. The cart itself is a pure value; the
// mutex only protects the session map against concurrent HTTP handlers.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*session
	catalog  CatalogProvider
	log      *logrus.Logger
}

func NewService(catalog CatalogProvider, log *logrus.Logger) *Service {
	return &Service{
		sessions: make(map[string]*session),
		catalog:  catalog,
		log:      log,
	}
}

func (s *Service) session(table string) *session {
	if sess, ok := s.sessions[table]; ok {
		return sess
	}
	sess := &session{cart: New()}
	s.sessions[table] = sess
	return sess
}

// Open ensures a session exists for table and loads the initial catalog
// snapshot. Subsequent calls are cheap; use RefreshCatalog to force a
// refetch (e.g. on focus-regain).
func (s *Service) Open(ctx context.Context, table string) {
	s.mu.Lock()
	sess := s.session(table)
	fetched := sess.startedSeq > 0
	s.mu.Unlock()
	if !fetched {
		s.RefreshCatalog(ctx, table)
	}
}

// RefreshCatalog fetches a fresh snapshot. A failed fetch is logged and the
// previous snapshot (possibly empty) stays in place; no error reaches the
// ordering flow. A fetch that completes after a newer one started is
// discarded rather than applied.
func (s *Service) RefreshCatalog(ctx context.Context, table string) {
	s.mu.Lock()
	sess := s.session(table)
	sess.startedSeq++
	seq := sess.startedSeq
	s.mu.Unlock()

	items, err := s.catalog.Catalog(ctx)
	if err != nil {
		s.log.WithError(err).WithField("table", table).Warn("catalog fetch failed, keeping previous snapshot")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < sess.startedSeq {
		s.log.WithField("table", table).Debug("discarding superseded catalog fetch")
		return
	}
	if seq > sess.appliedSeq {
		sess.catalog = items
		sess.appliedSeq = seq
	}
}

// Snapshot returns the session's cart entries and catalog snapshot.
func (s *Service) Snapshot(table string) (entries []Entry, catalog []menu.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(table)
	catalog = make([]menu.Item, len(sess.catalog))
	copy(catalog, sess.catalog)
	return sess.cart.Entries(), catalog
}

// AddItem applies a signed quantity change for itemID: positive adds that
// many units, negative removes. The item must exist and be visible in the
// session's catalog snapshot for additions.
func (s *Service) AddItem(table, itemID string, qty int) ([]Entry, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(table)

	switch {
	case qty > 0:
		var item menu.Item
		found := false
		for _, it := range sess.catalog {
			if it.ID == itemID && !it.Hidden {
				item = it
				found = true
				break
			}
		}
		if !found {
			return nil, 0, ErrUnknownItem
		}
		for i := 0; i < qty; i++ {
			sess.cart = sess.cart.Add(item)
		}
	case qty < 0:
		for i := 0; i < -qty; i++ {
			sess.cart = sess.cart.RemoveOne(itemID)
		}
	}
	return sess.cart.Entries(), sess.cart.Total(), nil
}

// Entries returns the cart contents for table.
func (s *Service) Entries(table string) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(table).cart.Entries()
}

// Total returns the cart total for table.
func (s *Service) Total(table string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(table).cart.Total()
}

// Clear empties the cart for table, e.g. after a successful checkout.
func (s *Service) Clear(table string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(table)
	sess.cart = sess.cart.Clear()
}

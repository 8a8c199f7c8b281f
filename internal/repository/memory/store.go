// Package memory provides an in-process entity store with the same transactional guarantees as
// the Postgres repositories: every mutation runs under one lock, uniqueness and referential rules
// are checked and applied in the same critical section, and reads return copies.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"sportsessions/internal/domain"
)

type membershipKey struct {
	sessionID string
	playerID  string
}

// Store holds sports, sessions, memberships and users.
type Store struct {
	mu          sync.RWMutex
	sports      map[string]domain.Sport
	sessions    map[string]domain.Session
	memberships map[membershipKey]domain.Membership
	users       map[string]domain.User
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		sports:      make(map[string]domain.Sport),
		sessions:    make(map[string]domain.Session),
		memberships: make(map[membershipKey]domain.Membership),
		users:       make(map[string]domain.User),
	}
}

// Sports returns the store as a domain.SportRepository.
func (s *Store) Sports() domain.SportRepository { return sportRepository{s} }

// Sessions returns the store as a domain.SessionRepository.
func (s *Store) Sessions() domain.SessionRepository { return sessionRepository{s} }

// Memberships returns the store as a domain.MembershipRepository.
func (s *Store) Memberships() domain.MembershipRepository { return membershipRepository{s} }

// Users returns the store as a domain.UserRepository.
func (s *Store) Users() domain.UserRepository { return userRepository{s} }

// parseID mirrors the uuid column type of the Postgres schema.
func parseID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: malformed identifier", domain.ErrInvalidInput)
	}
	return nil
}

// view builds the enriched copy of a session. Callers hold at least the read lock.
func (s *Store) view(sess domain.Session) *domain.SessionView {
	return &domain.SessionView{
		Session:     sess,
		SportName:   s.sports[sess.SportID].Name,
		CreatorName: s.users[sess.CreatorID].Username,
	}
}

// collect returns the views of the sessions matching keep, ordered by date then id.
func (s *Store) collect(keep func(domain.Session) bool) []*domain.SessionView {
	views := make([]*domain.SessionView, 0)
	for _, sess := range s.sessions {
		if keep(sess) {
			views = append(views, s.view(sess))
		}
	}
	slices.SortFunc(views, func(a, b *domain.SessionView) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return views
}

type sportRepository struct{ s *Store }

func (r sportRepository) Create(_ context.Context, sport *domain.Sport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sport.ID = uuid.NewString()
	r.s.sports[sport.ID] = *sport
	return nil
}

func (r sportRepository) GetByID(_ context.Context, id string) (*domain.Sport, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sport, ok := r.s.sports[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &sport, nil
}

func (r sportRepository) List(_ context.Context) ([]*domain.Sport, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sports := make([]*domain.Sport, 0, len(r.s.sports))
	for _, sport := range r.s.sports {
		sports = append(sports, &sport)
	}
	slices.SortFunc(sports, func(a, b *domain.Sport) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return sports, nil
}

func (r sportRepository) Delete(_ context.Context, id string) error {
	if err := parseID(id); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sports[id]; !ok {
		return domain.ErrNotFound
	}
	for _, sess := range r.s.sessions {
		if sess.SportID == id {
			return fmt.Errorf("%w: sport is referenced by sessions", domain.ErrConflict)
		}
	}
	delete(r.s.sports, id)
	return nil
}

type sessionRepository struct{ s *Store }

func (r sessionRepository) Create(_ context.Context, sess *domain.Session) error {
	if err := parseID(sess.SportID); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sports[sess.SportID]; !ok {
		return fmt.Errorf("%w: sport %s", domain.ErrNotFound, sess.SportID)
	}
	sess.ID = uuid.NewString()
	sess.Date = domain.DateOf(sess.Date)
	r.s.sessions[sess.ID] = *sess
	return nil
}

func (r sessionRepository) GetByID(_ context.Context, id string) (*domain.SessionView, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sess, ok := r.s.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r.s.view(sess), nil
}

func (r sessionRepository) Update(_ context.Context, sess *domain.Session) error {
	if err := parseID(sess.ID); err != nil {
		return err
	}
	if err := parseID(sess.SportID); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.sessions[sess.ID]
	if !ok || current.CreatorID != sess.CreatorID {
		return domain.ErrNotFound
	}
	if _, ok := r.s.sports[sess.SportID]; !ok {
		return fmt.Errorf("%w: sport %s", domain.ErrNotFound, sess.SportID)
	}
	current.SportID = sess.SportID
	current.Date = domain.DateOf(sess.Date)
	current.Venue = sess.Venue
	current.UpdatedAt = sess.UpdatedAt
	r.s.sessions[sess.ID] = current
	sess.CreatedAt = current.CreatedAt
	return nil
}

func (r sessionRepository) Delete(_ context.Context, id, creatorID string) error {
	if err := parseID(id); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.sessions[id]
	if !ok || current.CreatorID != creatorID {
		return domain.ErrNotFound
	}
	for key := range r.s.memberships {
		if key.sessionID == id {
			delete(r.s.memberships, key)
		}
	}
	delete(r.s.sessions, id)
	return nil
}

func (r sessionRepository) List(_ context.Context, params domain.PaginationParams) ([]*domain.SessionView, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := r.s.collect(func(domain.Session) bool { return true })
	slices.SortStableFunc(all, func(a, b *domain.SessionView) int {
		return b.Date.Compare(a.Date)
	})
	start, end := params.Window(len(all))
	return all[start:end], len(all), nil
}

func (r sessionRepository) ListAvailableForPlayer(_ context.Context, playerID string, today time.Time) ([]*domain.SessionView, error) {
	today = domain.DateOf(today)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.collect(func(sess domain.Session) bool {
		if sess.Date.Before(today) || sess.CreatorID == playerID {
			return false
		}
		_, joined := r.s.memberships[membershipKey{sess.ID, playerID}]
		return !joined
	}), nil
}

func (r sessionRepository) ListJoinedByPlayer(_ context.Context, playerID string) ([]*domain.SessionView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.collect(func(sess domain.Session) bool {
		_, joined := r.s.memberships[membershipKey{sess.ID, playerID}]
		return joined
	}), nil
}

func (r sessionRepository) CountBySport(_ context.Context) ([]*domain.SportPopularity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	bySport := make(map[string]*domain.SportPopularity)
	for _, sess := range r.s.sessions {
		c, ok := bySport[sess.SportID]
		if !ok {
			c = &domain.SportPopularity{SportID: sess.SportID, SportName: r.s.sports[sess.SportID].Name}
			bySport[sess.SportID] = c
		}
		c.SessionCount++
	}
	counts := make([]*domain.SportPopularity, 0, len(bySport))
	for _, c := range bySport {
		counts = append(counts, c)
	}
	slices.SortFunc(counts, func(a, b *domain.SportPopularity) int {
		if c := cmp.Compare(b.SessionCount, a.SessionCount); c != 0 {
			return c
		}
		return cmp.Compare(a.SportName, b.SportName)
	})
	return counts, nil
}

type membershipRepository struct{ s *Store }

func (r membershipRepository) Create(_ context.Context, m *domain.Membership) error {
	if err := parseID(m.SessionID); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sessions[m.SessionID]; !ok {
		return fmt.Errorf("%w: session %s", domain.ErrNotFound, m.SessionID)
	}
	key := membershipKey{m.SessionID, m.PlayerID}
	if _, ok := r.s.memberships[key]; ok {
		return fmt.Errorf("%w: player already joined session", domain.ErrConflict)
	}
	r.s.memberships[key] = *m
	return nil
}

func (r membershipRepository) Delete(_ context.Context, sessionID, playerID string) error {
	if err := parseID(sessionID); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := membershipKey{sessionID, playerID}
	if _, ok := r.s.memberships[key]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.memberships, key)
	return nil
}

type userRepository struct{ s *Store }

func (r userRepository) Upsert(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if current, ok := r.s.users[u.ID]; ok {
		u.CreatedAt = current.CreatedAt
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r userRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

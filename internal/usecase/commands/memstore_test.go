//go:build unit

package commands

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"padel-club/internal/domain/court"
	"padel-club/internal/domain/recurrence"
	"padel-club/internal/domain/reservation"
	"padel-club/internal/domain/schedule"
	"padel-club/internal/domain/user"
	"padel-club/internal/infra"
	"padel-club/internal/pkg/clock"
	"padel-club/internal/usecase/queries"
	"padel-club/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgconn"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Tuesday 2025-06-03, mid morning in the club's zone.
var clubNow = time.Date(2025, 6, 3, 10, 0, 0, 0, time.FixedZone("ART", -3*60*60))

type fixture struct {
	store    *memStore
	clock    *clock.FixedClock
	calendar *shared.Calendar
	cache    *recordingCache
	pub      *recordingPublisher
	expander *Expander
}

func newFixture() *fixture {
	clk := clock.NewFixedClock(clubNow)
	f := &fixture{
		store: newMemStore(),
		clock: clk,
		calendar: &shared.Calendar{
			Window:       schedule.DefaultWindow(),
			Location:     clubNow.Location(),
			HorizonWeeks: 4,
			Clock:        clk,
		},
		cache: &recordingCache{},
		pub:   &recordingPublisher{},
	}
	f.expander = NewExpander(f.store, f.calendar, f.cache, f.pub, discard)
	return f
}

func notFound(what string) error {
	return infra.WrapRepoErr(discard, infra.KindNotFound, what+" not found", nil)
}

// memStore is an in-memory stand-in for the Postgres unit of work. Within
// runs transactions one at a time, which is what the advisory lock gives the
// real guard.
type memStore struct {
	mu           sync.Mutex
	nextID       int64
	now          time.Time
	courts       map[int64]*court.Court
	reservations map[int64]*reservation.Reservation
	rules        map[int64]*recurrence.Rule
	users        map[int64]*user.User

	listRulesErr error
	createErr    error
}

func newMemStore() *memStore {
	return &memStore{
		now:          time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC),
		courts:       map[int64]*court.Court{},
		reservations: map[int64]*reservation.Reservation{},
		rules:        map[int64]*recurrence.Rule{},
		users:        map[int64]*user.User{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, memTx{s})
}

func (s *memStore) addCourt(number int, active bool) int64 {
	id := s.id()
	s.courts[id] = court.ReconstructCourt(id, number, court.CategoryIndoor, "", active, s.now, s.now)
	return id
}

func (s *memStore) addUser(dni string, role user.Role, active bool, hash string) int64 {
	id := s.id()
	profile, _ := user.NewProfile("Ana", "Pérez", "")
	s.users[id] = user.ReconstructUser(id, user.ReconstructDNI(dni), user.ReconstructEmail(dni+"@club.test"),
		profile, hash, role, active, s.now, s.now)
	return id
}

func (s *memStore) confirmedOn(courtID int64, date string) []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*reservation.Reservation
	for _, r := range s.reservations {
		if r.CourtID() == courtID && r.Date().String() == date && r.Status() == reservation.StatusConfirmed {
			out = append(out, r)
		}
	}
	return out
}

func (s *memStore) forRule(ruleID int64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var dates []string
	for _, r := range s.reservations {
		if id := r.RecurringRuleID(); id != nil && *id == ruleID {
			dates = append(dates, r.Date().String())
		}
	}
	sort.Strings(dates)
	return dates
}

type memTx struct{ s *memStore }

func (t memTx) Courts() shared.CourtRepository             { return memCourts{t.s} }
func (t memTx) Reservations() shared.ReservationRepository { return memReservations{t.s} }
func (t memTx) Rules() shared.RecurringRuleRepository      { return memRules{t.s} }
func (t memTx) Users() shared.UserRepository               { return memUsers{t.s} }

type memCourts struct{ s *memStore }

func (r memCourts) duplicate(c *court.Court) error {
	for id, other := range r.s.courts {
		if id != c.ID() && other.Number() == c.Number() {
			return infra.WrapRepoErr(discard, infra.KindDuplicateKey, "duplicate court number",
				&pgconn.PgError{Code: "23505", ConstraintName: infra.IndexCourtNumber})
		}
	}
	return nil
}

func (r memCourts) Create(_ context.Context, c *court.Court) (int64, error) {
	if err := r.duplicate(c); err != nil {
		return 0, err
	}
	id := r.s.id()
	r.s.courts[id] = court.ReconstructCourt(id, c.Number(), c.Category(), c.Description(), c.IsActive(), r.s.now, r.s.now)
	return id, nil
}

func (r memCourts) Update(_ context.Context, c *court.Court) error {
	if _, ok := r.s.courts[c.ID()]; !ok {
		return notFound("court")
	}
	if err := r.duplicate(c); err != nil {
		return err
	}
	r.s.courts[c.ID()] = c
	return nil
}

func (r memCourts) FindByID(_ context.Context, id int64) (*court.Court, error) {
	c, ok := r.s.courts[id]
	if !ok {
		return nil, notFound("court")
	}
	return court.ReconstructCourt(c.ID(), c.Number(), c.Category(), c.Description(), c.IsActive(), c.CreatedAt(), c.UpdatedAt()), nil
}

type memReservations struct{ s *memStore }

func (r memReservations) LockSlot(context.Context, int64, schedule.Date, schedule.ClockTime) error {
	return nil
}

func (r memReservations) ConfirmedOwner(_ context.Context, courtID int64, date schedule.Date, start schedule.ClockTime) (int64, bool, error) {
	for _, res := range r.s.reservations {
		if res.CourtID() == courtID && res.Date().Equal(date) && res.Start().Equal(start) && res.Status().BlocksSlot() {
			return res.UserID(), true, nil
		}
	}
	return 0, false, nil
}

func (r memReservations) ExistsForRule(_ context.Context, ruleID int64, date schedule.Date) (bool, error) {
	for _, res := range r.s.reservations {
		if id := res.RecurringRuleID(); id != nil && *id == ruleID && res.Date().Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r memReservations) Create(_ context.Context, res *reservation.Reservation) (int64, error) {
	if r.s.createErr != nil {
		return 0, r.s.createErr
	}
	id := r.s.id()
	r.s.reservations[id] = reservation.ReconstructReservation(id, res.CourtID(), res.UserID(), res.Date(), res.Slot(),
		res.Status(), res.RecurringRuleID(), r.s.now, r.s.now)
	return id, nil
}

func (r memReservations) FindByID(_ context.Context, id int64) (*reservation.Reservation, error) {
	res, ok := r.s.reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	return reservation.ReconstructReservation(res.ID(), res.CourtID(), res.UserID(), res.Date(), res.Slot(),
		res.Status(), res.RecurringRuleID(), res.CreatedAt(), res.UpdatedAt()), nil
}

func (r memReservations) UpdateStatus(_ context.Context, id int64, status reservation.Status) error {
	res, ok := r.s.reservations[id]
	if !ok {
		return notFound("reservation")
	}
	r.s.reservations[id] = reservation.ReconstructReservation(res.ID(), res.CourtID(), res.UserID(), res.Date(), res.Slot(),
		status, res.RecurringRuleID(), res.CreatedAt(), r.s.now)
	return nil
}

type memRules struct{ s *memStore }

func (r memRules) Create(_ context.Context, rule *recurrence.Rule) (int64, error) {
	id := r.s.id()
	r.s.rules[id] = recurrence.ReconstructRule(id, rule.CourtID(), rule.UserID(), rule.Weekday(), rule.Slot(),
		rule.EffectiveFrom(), rule.EffectiveTo(), true, r.s.now, r.s.now)
	return id, nil
}

func (r memRules) FindByID(_ context.Context, id int64) (*recurrence.Rule, error) {
	rule, ok := r.s.rules[id]
	if !ok {
		return nil, notFound("rule")
	}
	return recurrence.ReconstructRule(rule.ID(), rule.CourtID(), rule.UserID(), rule.Weekday(), rule.Slot(),
		rule.EffectiveFrom(), rule.EffectiveTo(), rule.IsActive(), rule.CreatedAt(), rule.UpdatedAt()), nil
}

func (r memRules) Deactivate(_ context.Context, id int64) error {
	rule, ok := r.s.rules[id]
	if !ok {
		return notFound("rule")
	}
	r.s.rules[id] = recurrence.ReconstructRule(rule.ID(), rule.CourtID(), rule.UserID(), rule.Weekday(), rule.Slot(),
		rule.EffectiveFrom(), rule.EffectiveTo(), false, rule.CreatedAt(), r.s.now)
	return nil
}

func (r memRules) ListActive(context.Context) ([]*recurrence.Rule, error) {
	if r.s.listRulesErr != nil {
		return nil, r.s.listRulesErr
	}
	var out []*recurrence.Rule
	for _, rule := range r.s.rules {
		if rule.IsActive() {
			out = append(out, rule)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *user.User) (int64, error) {
	for _, other := range r.s.users {
		if other.DNI() == u.DNI() {
			return 0, infra.WrapRepoErr(discard, infra.KindDuplicateKey, "duplicate dni",
				&pgconn.PgError{Code: "23505", ConstraintName: infra.IndexUserDNI})
		}
	}
	id := r.s.id()
	r.s.users[id] = user.ReconstructUser(id, u.DNI(), u.Email(), u.Profile(), u.PasswordHash(), u.Role(), u.IsActive(), r.s.now, r.s.now)
	return id, nil
}

func (r memUsers) FindByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return u, nil
}

func (r memUsers) FindByDNI(_ context.Context, dni user.DNI) (*user.User, error) {
	for _, u := range r.s.users {
		if u.DNI() == dni {
			return u, nil
		}
	}
	return nil, notFound("user")
}

func (r memUsers) UpdateAccess(_ context.Context, u *user.User) error {
	r.s.users[u.ID()] = u
	return nil
}

func (r memUsers) UpdateLastLogin(context.Context, int64) error { return nil }

// memReads answers the read-back after a booking is created.
type memReads struct{ s *memStore }

func (r memReads) FindByID(_ context.Context, id int64) (*queries.ReservationView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res, ok := r.s.reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	return &queries.ReservationView{
		ID:              res.ID(),
		CourtID:         res.CourtID(),
		UserID:          res.UserID(),
		Date:            res.Date().String(),
		Start:           res.Start().String(),
		End:             res.End().String(),
		Status:          res.Status().String(),
		RecurringRuleID: res.RecurringRuleID(),
		CreatedAt:       res.CreatedAt(),
	}, nil
}

func (r memReads) ListByCourtAndDate(context.Context, int64, schedule.Date) ([]*queries.ReservationView, error) {
	return nil, nil
}

func (r memReads) ListByUser(context.Context, int64, queries.KeysetPage) ([]*queries.ReservationView, error) {
	return nil, nil
}

func (r memReads) List(context.Context, queries.ReservationFilter) ([]*queries.ReservationView, error) {
	return nil, nil
}

type memCourtReads struct{ s *memStore }

func (r memCourtReads) FindByID(_ context.Context, id int64) (*queries.CourtView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.courts[id]
	if !ok {
		return nil, notFound("court")
	}
	return &queries.CourtView{
		ID:          c.ID(),
		Number:      c.Number(),
		Category:    c.Category().String(),
		Description: c.Description(),
		Active:      c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}, nil
}

func (r memCourtReads) List(context.Context, bool) ([]*queries.CourtView, error) {
	return nil, nil
}

type invalidation struct {
	courtID int64
	date    string
}

type recordingCache struct {
	mu          sync.Mutex
	invalidated []invalidation
}

func (c *recordingCache) GetConfirmedStarts(context.Context, int64, schedule.Date) (shared.CachedStarts, error) {
	return shared.CachedStarts{}, nil
}

func (c *recordingCache) SetConfirmedStarts(context.Context, int64, schedule.Date, int64, []schedule.ClockTime) error {
	return nil
}

func (c *recordingCache) Invalidate(_ context.Context, courtID int64, date schedule.Date) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, invalidation{courtID, date.String()})
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	events []any
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	p.events = append(p.events, payload)
	return nil
}

func (p *recordingPublisher) count(key string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, k := range p.keys {
		if k == key {
			n++
		}
	}
	return n
}

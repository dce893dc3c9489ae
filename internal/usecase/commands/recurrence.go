package commands

//go:generate go run go.uber.org/mock/mockgen -source=recurrence.go -destination=../../../tests/mock/commands/mock_recurrence.go -package=mock_commands

import (
	"context"
	"log/slog"

	"padel-club/internal/domain/access"
	"padel-club/internal/domain/court"
	"padel-club/internal/domain/recurrence"
	"padel-club/internal/domain/schedule"
	"padel-club/internal/infra"
	"padel-club/internal/pkg/errs"
	"padel-club/internal/usecase/queries"
	"padel-club/internal/usecase/shared"
)

var ErrRuleNotFound = errs.NotFound("recurring reservation")

type CreateRuleInput struct {
	CourtID int64
	Weekday int
	Start   schedule.ClockTime
	// End is optional; when present it must match the slot length.
	End           *schedule.ClockTime
	EffectiveFrom schedule.Date
	EffectiveTo   *schedule.Date
}

type CreateRuleResult struct {
	Rule      *queries.RuleView `json:"reservaRecurrente"`
	Expansion *SweepReport      `json:"materializacion"`
}

type RecurrenceCommands interface {
	Create(ctx context.Context, actor access.Actor, in CreateRuleInput) (*CreateRuleResult, error)
	Cancel(ctx context.Context, actor access.Actor, id int64) error
	Sweep(ctx context.Context, actor access.Actor) (*SweepReport, error)
}

type recurrenceCommandsImpl struct {
	uow       shared.UnitOfWork
	expander  *Expander
	calendar  *shared.Calendar
	publisher shared.EventPublisher
	logger    *slog.Logger
}

func NewRecurrenceCommands(
	uow shared.UnitOfWork,
	expander *Expander,
	calendar *shared.Calendar,
	publisher shared.EventPublisher,
	logger *slog.Logger,
) RecurrenceCommands {
	return &recurrenceCommandsImpl{
		uow:       uow,
		expander:  expander,
		calendar:  calendar,
		publisher: publisher,
		logger:    logger,
	}
}

// Create persists the rule and materializes its occurrences inside the
// horizon right away. Conflicting occurrences are reported, not returned as
// errors.
func (c *recurrenceCommandsImpl) Create(ctx context.Context, actor access.Actor, in CreateRuleInput) (*CreateRuleResult, error) {
	if err := access.Admit(actor); err != nil {
		return nil, err
	}

	now := c.calendar.Now()
	rule, err := recurrence.NewRule(c.calendar.Window, now.Date, recurrence.Params{
		CourtID:       in.CourtID,
		UserID:        actor.UserID,
		Weekday:       in.Weekday,
		Start:         in.Start,
		EffectiveFrom: in.EffectiveFrom,
		EffectiveTo:   in.EffectiveTo,
	})
	if err != nil {
		return nil, err
	}
	if end := rule.Slot().End; in.End != nil && !in.End.Equal(end) {
		return nil, errs.NewInvalidSlot(in.Start.String()+"-"+in.End.String(), "slot must end at "+end.String())
	}

	var (
		id          int64
		courtNumber int
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ct, err := tx.Courts().FindByID(ctx, in.CourtID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrCourtNotFound
			}
			return err
		}
		if err := ct.EnsureBookable(); err != nil {
			return err
		}
		courtNumber = ct.Number()
		id, err = tx.Rules().Create(ctx, rule)
		return err
	})
	if err != nil {
		return nil, err
	}

	createdAt := c.calendar.Clock.Now()
	saved := recurrence.ReconstructRule(id, rule.CourtID(), rule.UserID(), rule.Weekday(), rule.Slot(),
		rule.EffectiveFrom(), rule.EffectiveTo(), true, createdAt, createdAt)

	report := &SweepReport{}
	c.expander.expand(ctx, saved, now, report)

	publish(ctx, c.logger, c.publisher, shared.EventRecurrenceCreated, ruleEvent(saved))
	c.logger.Info("recurring reservation created",
		"rule_id", id, "court_id", saved.CourtID(), "user_id", saved.UserID(),
		"weekday", int(saved.Weekday()), "start", saved.Slot().Start.String(),
		"materialized", report.Created, "conflicts", report.Conflicts)

	return &CreateRuleResult{Rule: ruleView(saved, courtNumber), Expansion: report}, nil
}

// Cancel stops future materialization. Bookings already created are kept.
func (c *recurrenceCommandsImpl) Cancel(ctx context.Context, actor access.Actor, id int64) error {
	var canceled *recurrence.Rule
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rule, err := tx.Rules().FindByID(ctx, id)
		found := true
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			found = false
		}
		var owner int64
		if found {
			owner = rule.UserID()
		}
		if err := access.AuthorizeOwned(actor, owner, found); err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				return ErrRuleNotFound
			}
			return err
		}
		if err := rule.Cancel(); err != nil {
			return err
		}
		if err := tx.Rules().Deactivate(ctx, id); err != nil {
			return err
		}
		canceled = rule
		return nil
	})
	if err != nil {
		return err
	}

	publish(ctx, c.logger, c.publisher, shared.EventRecurrenceCanceled, ruleEvent(canceled))
	c.logger.Info("recurring reservation canceled", "rule_id", id, "actor_id", actor.UserID)
	return nil
}

func (c *recurrenceCommandsImpl) Sweep(ctx context.Context, actor access.Actor) (*SweepReport, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}
	return c.expander.Sweep(ctx)
}

func ruleEvent(r *recurrence.Rule) shared.RuleEvent {
	return shared.RuleEvent{
		RuleID:  r.ID(),
		CourtID: r.CourtID(),
		UserID:  r.UserID(),
		Weekday: int(r.Weekday()),
	}
}

func ruleView(r *recurrence.Rule, courtNumber int) *queries.RuleView {
	v := &queries.RuleView{
		ID:            r.ID(),
		CourtID:       r.CourtID(),
		CourtNumber:   courtNumber,
		UserID:        r.UserID(),
		Weekday:       int(r.Weekday()),
		Start:         r.Slot().Start.String(),
		End:           r.Slot().End.String(),
		EffectiveFrom: r.EffectiveFrom().String(),
		Active:        r.IsActive(),
		CreatedAt:     r.CreatedAt(),
	}
	if to := r.EffectiveTo(); to != nil {
		s := to.String()
		v.EffectiveTo = &s
	}
	return v
}

// courtUnavailable reports occurrences that can never be booked while the
// court stays as it is.
func courtUnavailable(err error) bool {
	return errs.Is(err, court.ErrCourtInactive) || errs.Is(err, queries.ErrCourtNotFound)
}

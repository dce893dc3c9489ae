package commands

import (
	"context"
	"log/slog"

	"padel-club/internal/domain/recurrence"
	"padel-club/internal/domain/reservation"
	"padel-club/internal/domain/schedule"
	"padel-club/internal/infra"
	"padel-club/internal/pkg/errs"
	"padel-club/internal/pkg/metrics"
	"padel-club/internal/pkg/obs"
	"padel-club/internal/usecase/queries"
	"padel-club/internal/usecase/shared"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// errAlreadyMaterialized aborts an occurrence transaction whose insert lost
// the race on the (rule, date) index.
var errAlreadyMaterialized = errs.New("occurrence already materialized")

// errOccurrenceStarted ends the transaction of an occurrence for today whose
// start time has gone by without it being booked.
var errOccurrenceStarted = errs.New("occurrence already started")

type SweepReport struct {
	Rules     int           `json:"reglas"`
	Created   int           `json:"creadas"`
	Existing  int           `json:"existentes"`
	Conflicts int           `json:"conflictos"`
	Skipped   int           `json:"omitidas"`
	Failures  []RuleFailure `json:"fallas,omitempty"`
}

type RuleFailure struct {
	RuleID int64  `json:"idReservaRecurrente"`
	Date   string `json:"fecha"`
	Error  string `json:"error"`
}

type occurrenceOutcome int

const (
	occurrenceCreated occurrenceOutcome = iota
	occurrenceExisting
	// today's occurrence started before it was materialized; not booked
	occurrencePassed
)

// Expander turns active recurring rules into concrete bookings within the
// horizon. Each occurrence runs the conflict guard in its own transaction so
// one taken slot never rolls back its siblings.
type Expander struct {
	uow       shared.UnitOfWork
	calendar  *shared.Calendar
	cache     shared.AvailabilityCache
	publisher shared.EventPublisher
	logger    *slog.Logger
}

func NewExpander(
	uow shared.UnitOfWork,
	calendar *shared.Calendar,
	cache shared.AvailabilityCache,
	publisher shared.EventPublisher,
	logger *slog.Logger,
) *Expander {
	return &Expander{
		uow:       uow,
		calendar:  calendar,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// Sweep expands every active rule. It fails only when the rules cannot be
// listed; per-rule problems land in the report.
func (e *Expander) Sweep(ctx context.Context) (*SweepReport, error) {
	ctx, span := obs.Tracer().Start(ctx, "recurrence.sweep")
	defer span.End()

	var rules []*recurrence.Rule
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		rules, err = tx.Rules().ListActive(ctx)
		return err
	})
	if err != nil {
		metrics.IncSweep(metrics.SweepFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "list active rules")
		return nil, errs.Wrap(err, "failed to list active recurring reservations")
	}

	now := e.calendar.Now()
	report := &SweepReport{}
	for _, rule := range rules {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		e.expand(ctx, rule, now, report)
	}

	metrics.IncSweep(metrics.SweepOK)
	span.SetAttributes(
		attribute.Int("sweep.rules", report.Rules),
		attribute.Int("sweep.created", report.Created),
		attribute.Int("sweep.conflicts", report.Conflicts),
	)
	publish(ctx, e.logger, e.publisher, shared.EventRecurrenceSweepDone, report)
	e.logger.Info("recurrence sweep finished",
		"rules", report.Rules, "created", report.Created, "existing", report.Existing,
		"conflicts", report.Conflicts, "skipped", report.Skipped, "failures", len(report.Failures))
	return report, nil
}

func (e *Expander) expand(ctx context.Context, rule *recurrence.Rule, now schedule.Instant, report *SweepReport) {
	report.Rules++
	for _, date := range rule.Occurrences(now.Date, e.calendar.HorizonEnd(now.Date)) {
		outcome, err := e.materialize(ctx, rule, now, date)
		switch {
		case err == nil:
			switch outcome {
			case occurrenceCreated:
				report.Created++
			case occurrenceExisting:
				report.Existing++
			}
		case errs.Is(err, errs.ErrSlotOccupied):
			report.Conflicts++
			e.conflict(ctx, rule, date)
		case courtUnavailable(err):
			report.Skipped++
			e.logger.Info("recurring reservation skipped: court not bookable",
				"rule_id", rule.ID(), "court_id", rule.CourtID())
			return
		default:
			metrics.IncBooking(metrics.SourceRecurrence, metrics.OutcomeFailed)
			report.Failures = append(report.Failures, RuleFailure{
				RuleID: rule.ID(), Date: date.String(), Error: err.Error(),
			})
			e.logger.Error("failed to materialize recurring reservation",
				"rule_id", rule.ID(), "date", date.String(), "error", err)
			return
		}
	}
}

func (e *Expander) materialize(ctx context.Context, rule *recurrence.Rule, now schedule.Instant, date schedule.Date) (occurrenceOutcome, error) {
	ruleID := rule.ID()
	res, err := reservation.NewReservation(e.calendar.Window, now, reservation.Request{
		CourtID:         rule.CourtID(),
		UserID:          rule.UserID(),
		Date:            date,
		Start:           rule.Slot().Start,
		RecurringRuleID: &ruleID,
	})
	started := errs.Is(err, reservation.ErrSlotStarted)
	if err != nil && !started {
		return 0, err
	}

	var (
		id       int64
		existing bool
	)
	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing = false
		done, err := tx.Reservations().ExistsForRule(ctx, ruleID, date)
		if err != nil {
			return err
		}
		if done {
			existing = true
			return nil
		}
		if started {
			return errOccurrenceStarted
		}

		ct, err := tx.Courts().FindByID(ctx, rule.CourtID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrCourtNotFound
			}
			return err
		}
		if err := ct.EnsureBookable(); err != nil {
			return err
		}

		id, err = bookSlot(ctx, tx, res)
		switch {
		case err == nil:
			return nil
		case infra.IsDuplicateOn(err, infra.IndexRuleDate):
			return errAlreadyMaterialized
		case heldBy(err, rule.UserID()):
			// the player already booked this occurrence by hand
			existing = true
			return nil
		}
		return err
	})
	if errs.Is(err, errAlreadyMaterialized) {
		return occurrenceExisting, nil
	}
	if errs.Is(err, errOccurrenceStarted) {
		return occurrencePassed, nil
	}
	if err != nil {
		return 0, err
	}
	if existing {
		return occurrenceExisting, nil
	}

	metrics.IncBooking(metrics.SourceRecurrence, metrics.OutcomeCreated)
	invalidate(ctx, e.logger, e.cache, res.CourtID(), res.Date())
	publish(ctx, e.logger, e.publisher, shared.EventBookingCreated, bookingEvent(id, res, res.Status()))
	return occurrenceCreated, nil
}

func (e *Expander) conflict(ctx context.Context, rule *recurrence.Rule, date schedule.Date) {
	metrics.IncRecurrenceConflict()
	metrics.IncBooking(metrics.SourceRecurrence, metrics.OutcomeConflict)
	e.logger.Warn("recurring reservation conflict: slot already booked",
		"rule_id", rule.ID(), "court_id", rule.CourtID(), "user_id", rule.UserID(),
		"date", date.String(), "start", rule.Slot().Start.String())
	publish(ctx, e.logger, e.publisher, shared.EventRecurrenceConflict, shared.RecurrenceConflictEvent{
		RuleID:  rule.ID(),
		CourtID: rule.CourtID(),
		UserID:  rule.UserID(),
		Date:    date.String(),
		Start:   rule.Slot().Start.String(),
	})
}

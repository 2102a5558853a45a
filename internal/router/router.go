// Package router turns parsed intents into persisted log entries. It owns the
// confirmation gate, the audit trail, and the recompute that follows every
// successful write.
package router

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"momentum/internal/intent"
	"momentum/internal/momentum"
	"momentum/internal/store"
)

// #region result

// Decision is what the router did with one intent.
type Decision string

const (
	DecisionApplied      Decision = "applied"
	DecisionRejected     Decision = "rejected"
	DecisionUnrecognized Decision = "unrecognized"
)

// Result reports one dispatch. Snapshot is set only when the write succeeded
// and the day was recomputed.
type Result struct {
	Decision Decision           `json:"decision"`
	Reason   string             `json:"reason,omitempty"`
	Snapshot *momentum.Snapshot `json:"snapshot,omitempty"`
}

// #endregion

// #region router

// Router applies intents against the store and recomputes momentum.
type Router struct {
	store  *store.Store
	engine *momentum.Engine
	logger *zap.Logger
}

// New builds a Router. A nil logger is replaced with a no-op one.
func New(s *store.Store, engine *momentum.Engine, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{store: s, engine: engine, logger: logger}
}

// #endregion

// #region dispatch

// Dispatch applies one intent for a date. Intents that require confirmation
// are rejected unless confirmed is true; rejection is not an error. Every
// dispatch that reaches a decision leaves exactly one audit row; an applied
// write is recorded even when the recompute after it fails.
func (r *Router) Dispatch(ctx context.Context, date string, it intent.Intent, confirmed bool) (Result, error) {
	if it.Domain == intent.DomainUnknown {
		res := Result{Decision: DecisionUnrecognized, Reason: "no matcher recognized the utterance"}
		return res, r.audit(ctx, it, res)
	}

	if it.RequiresConfirmation && !confirmed {
		res := Result{Decision: DecisionRejected, Reason: "confirmation required"}
		r.logger.Info("intent held for confirmation",
			zap.String("domain", string(it.Domain)),
			zap.Float64("confidence", it.Confidence))
		return res, r.audit(ctx, it, res)
	}

	if err := r.apply(ctx, date, it); err != nil {
		return Result{}, fmt.Errorf("apply %s: %w", it.Domain, err)
	}

	snap, err := r.engine.Compute(ctx, date)
	if err != nil {
		// The write already landed; the trail still records it as applied.
		if auditErr := r.audit(ctx, it, Result{Decision: DecisionApplied, Reason: "recompute failed"}); auditErr != nil {
			r.logger.Warn("audit write failed", zap.Error(auditErr))
		}
		return Result{}, fmt.Errorf("recompute %s: %w", date, err)
	}

	res := Result{Decision: DecisionApplied, Snapshot: &snap}
	r.logger.Info("intent applied",
		zap.String("domain", string(it.Domain)),
		zap.String("date", date),
		zap.Int("score", snap.Score))
	return res, r.audit(ctx, it, res)
}

// apply persists the intent's payload. Hydration contributes to logs but not
// to the momentum breakdown; it is stored for trend review all the same.
func (r *Router) apply(ctx context.Context, date string, it intent.Intent) error {
	switch it.Domain {
	case intent.DomainHydrationAdd:
		_, err := r.store.AddHydration(ctx, date, it.Hydration.AmountML)
		return err

	case intent.DomainSleepLog:
		return r.store.UpsertSleep(ctx, date, it.Sleep.Hours, it.Sleep.Quality)

	case intent.DomainStepsUpdate:
		return r.store.UpsertSteps(ctx, date, it.Steps.Count)

	case intent.DomainTaskCreate:
		_, err := r.store.AddTask(ctx, date, it.Task.Title, it.Task.Priority)
		return err

	case intent.DomainFinanceExpense:
		_, err := r.store.AddTransaction(ctx, store.Transaction{
			Date:        date,
			Amount:      it.Expense.Amount,
			Description: it.Expense.Description,
			Category:    it.Expense.Category,
		})
		return err

	case intent.DomainFinanceGoalAdd:
		goal, found, err := r.store.FindGoal(ctx, it.GoalAdd.GoalQuery)
		if err != nil {
			return err
		}
		if !found {
			// First mention of a goal name creates it with no target yet.
			id, err := r.store.CreateGoal(ctx, it.GoalAdd.GoalQuery, 0)
			if err != nil {
				return err
			}
			return r.store.ContributeToGoal(ctx, id, it.GoalAdd.Amount)
		}
		return r.store.ContributeToGoal(ctx, goal.ID, it.GoalAdd.Amount)

	case intent.DomainNutritionAdd:
		_, err := r.store.AddNutrition(ctx, store.NutritionEntry{
			Date:     date,
			Label:    it.Nutrition.Label,
			Calories: it.Nutrition.Calories,
			Protein:  it.Nutrition.Protein,
			Carbs:    it.Nutrition.Carbs,
			Fat:      it.Nutrition.Fat,
			Fiber:    it.Nutrition.Fiber,
		})
		return err
	}
	return fmt.Errorf("no handler for domain %s", it.Domain)
}

// audit records the decision. An audit failure surfaces as an error even when
// the write itself succeeded.
func (r *Router) audit(ctx context.Context, it intent.Intent, res Result) error {
	return r.store.RecordIntent(ctx, store.AuditEntry{
		Transcript: it.RawTranscript,
		Domain:     string(it.Domain),
		Confidence: it.Confidence,
		Decision:   string(res.Decision),
		Reason:     res.Reason,
	})
}

// #endregion

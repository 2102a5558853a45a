package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// #region stopwords

// goalStopwords are filler tokens ignored when matching a spoken goal name
// against stored goals ("add $50 to my vacation fund" → "vacation").
var goalStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "my": true, "our": true,
	"to": true, "for": true, "into": true, "fund": true, "goal": true,
	"savings": true, "account": true,
}

// #endregion

// #region crud

// CreateGoal inserts a savings goal.
func (s *Store) CreateGoal(ctx context.Context, name string, target float64) (string, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO finance_goals (id, name, target, saved, created_at) VALUES (?, ?, ?, 0, ?)`,
		id, name, target, now(),
	)
	if err != nil {
		return "", fmt.Errorf("insert goal: %w", err)
	}
	return id, nil
}

// ContributeToGoal adds an amount to a goal's running total.
func (s *Store) ContributeToGoal(ctx context.Context, id string, amount float64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE finance_goals SET saved = saved + ? WHERE id = ?`, amount, id)
	if err != nil {
		return fmt.Errorf("contribute to goal %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("goal %s not found", id)
	}
	return nil
}

// ListGoals returns all savings goals.
func (s *Store) ListGoals(ctx context.Context) ([]Goal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, target, saved, created_at FROM finance_goals ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		var g Goal
		var created string
		if err := rows.Scan(&g.ID, &g.Name, &g.Target, &g.Saved, &created); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		g.CreatedAt = parseTime(created)
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// #endregion

// #region fuzzy-lookup

// FindGoal resolves a free-text goal reference against stored goal names by
// stopword-stripped token overlap. found=false means nothing plausible
// matched, which is not an error.
func (s *Store) FindGoal(ctx context.Context, query string) (Goal, bool, error) {
	goals, err := s.ListGoals(ctx)
	if err != nil {
		return Goal{}, false, err
	}

	queryTokens := goalTokens(query)
	if len(queryTokens) == 0 {
		return Goal{}, false, nil
	}

	var best Goal
	bestScore := 0
	for _, g := range goals {
		score := overlap(queryTokens, goalTokens(g.Name))
		if score > bestScore {
			best = g
			bestScore = score
		}
	}
	if bestScore == 0 {
		return Goal{}, false, nil
	}
	return best, true, nil
}

// goalTokens lowercases, splits, and drops stopwords.
func goalTokens(text string) []string {
	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tok = strings.Trim(tok, ".,!?")
		if tok == "" || goalStopwords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// overlap counts shared tokens between two token lists.
func overlap(a, b []string) int {
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	n := 0
	for _, t := range b {
		if set[t] {
			n++
		}
	}
	return n
}

// #endregion

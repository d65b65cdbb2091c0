package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/username/fintrack/src/logger"
	"github.com/username/fintrack/src/models"
	"github.com/username/fintrack/src/processors"
	"github.com/username/fintrack/src/security/validation"
)

const cashflowColumns = `id, user_id, type, category, amount, description, date, is_recurring,
	recurrence_frequency, tags, created_at, updated_at`

type cashflowServiceImpl struct {
	db        *sql.DB
	processor processors.CashflowProcessor
}

func NewCashflowService(db *sql.DB, processor processors.CashflowProcessor) CashflowService {
	return &cashflowServiceImpl{db: db, processor: processor}
}

func scanCashflow(row rowScanner) (models.CashflowEntry, error) {
	var (
		e    models.CashflowEntry
		tags string
	)
	err := row.Scan(&e.ID, &e.UserID, &e.Type, &e.Category, &e.Amount, &e.Description, &e.Date, &e.IsRecurring,
		&e.RecurrenceFrequency, &tags, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return e, err
	}
	e.Tags = []string{}
	if tags != "" {
		if err := json.Unmarshal([]byte(tags), &e.Tags); err != nil {
			return e, fmt.Errorf("decoding tags of cashflow %d: %w", e.ID, err)
		}
	}
	return e, nil
}

func encodeTags(tags []string) (string, error) {
	b, err := json.Marshal(validation.CleanTags(tags))
	if err != nil {
		return "", fmt.Errorf("encoding tags: %w", err)
	}
	return string(b), nil
}

// recurrence applies the rule that a frequency is required for recurring
// entries and cleared for the rest.
func recurrence(isRecurring bool, frequency string) (string, error) {
	if !isRecurring {
		return "", nil
	}
	if frequency == "" {
		return "", validation.NewError("recurrence_frequency", "is required when is_recurring is true")
	}
	return frequency, nil
}

func filterClause(userID int64, f models.CashflowFilter) (string, []interface{}) {
	where := []string{"user_id = ?"}
	args := []interface{}{userID}
	if f.Type != "" {
		where = append(where, "type = ?")
		args = append(args, f.Type)
	}
	if f.Category != "" {
		where = append(where, "category = ? COLLATE NOCASE")
		args = append(args, f.Category)
	}
	if f.StartDate != "" {
		where = append(where, "date >= ?")
		args = append(args, f.StartDate)
	}
	if f.EndDate != "" {
		where = append(where, "date <= ?")
		args = append(args, f.EndDate)
	}
	return strings.Join(where, " AND "), args
}

func (s *cashflowServiceImpl) List(ctx context.Context, userID int64, filter models.CashflowFilter) ([]models.CashflowEntry, error) {
	where, args := filterClause(userID, filter)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+cashflowColumns+` FROM cashflow WHERE `+where+` ORDER BY date DESC, id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying cashflow: %w", err)
	}
	defer rows.Close()

	entries := []models.CashflowEntry{}
	for rows.Next() {
		entry, err := scanCashflow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning cashflow row: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *cashflowServiceImpl) Get(ctx context.Context, userID, id int64) (*models.CashflowEntry, error) {
	entry, err := scanCashflow(s.db.QueryRowContext(ctx,
		`SELECT `+cashflowColumns+` FROM cashflow WHERE id = ? AND user_id = ?`, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading cashflow %d: %w", id, err)
	}
	return &entry, nil
}

func (s *cashflowServiceImpl) Create(ctx context.Context, userID int64, req models.CreateCashflowRequest) (*models.CashflowEntry, error) {
	if req.Amount == nil {
		return nil, validation.NewError("amount", "is required")
	}
	frequency, err := recurrence(req.IsRecurring, req.RecurrenceFrequency)
	if err != nil {
		return nil, err
	}
	tags, err := encodeTags(req.Tags)
	if err != nil {
		return nil, err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO cashflow (user_id, type, category, amount, description, date, is_recurring, recurrence_frequency, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, req.Type, validation.CleanText(req.Category), *req.Amount, validation.CleanText(req.Description),
		req.Date, req.IsRecurring, frequency, tags)
	if err != nil {
		return nil, fmt.Errorf("inserting cashflow: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new cashflow id: %w", err)
	}
	logger.FromContext(ctx).Info("Cashflow entry created", "userID", userID, "cashflowID", id, "type", req.Type)
	return s.Get(ctx, userID, id)
}

func (s *cashflowServiceImpl) Update(ctx context.Context, userID, id int64, req models.UpdateCashflowRequest) (*models.CashflowEntry, error) {
	existing, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	var b updateBuilder
	if req.Type != nil {
		b.set("type", *req.Type)
	}
	if req.Category != nil {
		b.set("category", validation.CleanText(*req.Category))
	}
	if req.Amount != nil {
		b.set("amount", *req.Amount)
	}
	if req.Description != nil {
		b.set("description", validation.CleanText(*req.Description))
	}
	if req.Date != nil {
		b.set("date", *req.Date)
	}
	if req.Tags != nil {
		tags, err := encodeTags(*req.Tags)
		if err != nil {
			return nil, err
		}
		b.set("tags", tags)
	}

	if req.IsRecurring != nil || req.RecurrenceFrequency != nil {
		isRecurring := existing.IsRecurring
		if req.IsRecurring != nil {
			isRecurring = *req.IsRecurring
		}
		frequency := string(existing.RecurrenceFrequency)
		if req.RecurrenceFrequency != nil {
			if !isRecurring && *req.RecurrenceFrequency != "" {
				return nil, validation.NewError("recurrence_frequency", "requires is_recurring to be true")
			}
			frequency = *req.RecurrenceFrequency
		}
		frequency, err = recurrence(isRecurring, frequency)
		if err != nil {
			return nil, err
		}
		b.set("is_recurring", isRecurring)
		b.set("recurrence_frequency", frequency)
	}

	if err := b.exec(ctx, s.db, "cashflow", id, userID); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

func (s *cashflowServiceImpl) Delete(ctx context.Context, userID, id int64) error {
	if err := deleteRow(ctx, s.db, "cashflow", id, userID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Cashflow entry deleted", "userID", userID, "cashflowID", id)
	return nil
}

func (s *cashflowServiceImpl) Summary(ctx context.Context, userID int64, filter models.CashflowFilter) (*models.CashflowSummary, error) {
	entries, err := s.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	summary := s.processor.Summarize(entries)
	return &summary, nil
}

func (s *cashflowServiceImpl) Categories(ctx context.Context, userID int64) (*models.CashflowCategories, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT type, category FROM cashflow WHERE user_id = ? ORDER BY category COLLATE NOCASE ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying cashflow categories: %w", err)
	}
	defer rows.Close()

	out := &models.CashflowCategories{Income: []string{}, Expense: []string{}}
	for rows.Next() {
		var (
			kind     models.CashflowType
			category string
		)
		if err := rows.Scan(&kind, &category); err != nil {
			return nil, fmt.Errorf("scanning cashflow category: %w", err)
		}
		switch kind {
		case models.Income:
			out.Income = append(out.Income, category)
		case models.Expense:
			out.Expense = append(out.Expense, category)
		}
	}
	return out, rows.Err()
}

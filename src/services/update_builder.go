package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// updateBuilder collects the SET clauses of a partial update.
type updateBuilder struct {
	sets []string
	args []interface{}
}

func (b *updateBuilder) set(column string, value interface{}) {
	b.sets = append(b.sets, column+" = ?")
	b.args = append(b.args, value)
}

func (b *updateBuilder) empty() bool { return len(b.sets) == 0 }

// exec updates the row with the given id owned by userID. Column names are
// always literals from this package, never user input.
func (b *updateBuilder) exec(ctx context.Context, db *sql.DB, table string, id, userID int64) error {
	if b.empty() {
		return ErrNoFieldsToUpdate
	}
	query := fmt.Sprintf("UPDATE %s SET %s, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND user_id = ?",
		table, strings.Join(b.sets, ", "))
	args := append(b.args, id, userID)

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating %s %d: %w", table, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected for %s %d: %w", table, id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// deleteRow hard-deletes the row with the given id owned by userID.
func deleteRow(ctx context.Context, db *sql.DB, table string, id, userID int64) error {
	res, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ? AND user_id = ?", table), id, userID)
	if err != nil {
		return fmt.Errorf("deleting %s %d: %w", table, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected for %s %d: %w", table, id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

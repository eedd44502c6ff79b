package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// ProcCaller executes a named stored procedure with positional parameters and
// returns its row-sets. Repositories depend on this interface rather than on
// the concrete DB so the procedure contract stays decoupled from connection
// lifecycle concerns.
type ProcCaller interface {
	CallProc(ctx context.Context, proc string, args ...any) (*sql.Rows, error)
}

// CallProc invokes a set-returning procedure. Callers own the returned rows
// and advance result sets with rows.NextResultSet for procedures that return
// more than one.
func (db *DB) CallProc(ctx context.Context, proc string, args ...any) (*sql.Rows, error) {
	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf("SELECT * FROM %s(%s)", proc, strings.Join(placeholders, ", "))

	db.logger.Debugw("calling stored procedure", "proc", proc, "args", len(args))
	return db.DB.QueryContext(ctx, query, args...)
}

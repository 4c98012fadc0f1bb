package quota

import (
	"database/sql"
	"time"
)

// Gate decides whether an account may still record billable clicks, and
// credits usage when it may. Both operations delegate to the data
// service and are assumed atomic there; this package never does a
// read-modify-write of its own.
type Gate interface {
	MayRecordBillableClick(accountID string) (bool, error)
	IncrementUsage(accountID string) error
}

type SQLGate struct {
	db *sql.DB
}

func NewSQLGate(db *sql.DB) *SQLGate {
	return &SQLGate{db: db}
}

// MayRecordBillableClick answers the quota question for one account.
// A click_limit of 0 means unlimited. An unknown account is denied
// rather than billed blind.
func (g *SQLGate) MayRecordBillableClick(accountID string) (bool, error) {
	var allowed bool
	query := "SELECT click_limit = 0 OR clicks_used < click_limit FROM accounts WHERE id = ?"
	err := g.db.QueryRow(query, accountID).Scan(&allowed)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return allowed, nil
}

// IncrementUsage adds one billable click. The single UPDATE is the
// atomicity boundary; concurrent redirects for a popular link all land
// on this statement.
func (g *SQLGate) IncrementUsage(accountID string) error {
	query := "UPDATE accounts SET clicks_used = clicks_used + 1, updated_at = ? WHERE id = ?"
	_, err := g.db.Exec(query, time.Now().Unix(), accountID)
	return err
}

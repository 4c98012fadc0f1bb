package repositories

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"smartlink/internal/platform/models"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(account *models.Account) error {
	if account.ID == "" {
		account.ID = "acct_" + uuid.New().String()
	}
	now := time.Now().Unix()
	account.CreatedAt = now
	account.UpdatedAt = now

	query := `
		INSERT INTO accounts (id, name, plan, click_limit, clicks_used, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, account.ID, account.Name, account.Plan,
		account.ClickLimit, account.ClicksUsed, account.CreatedAt, account.UpdatedAt)
	return err
}

func (r *AccountRepository) GetByID(id string) (*models.Account, error) {
	query := `SELECT id, name, plan, click_limit, clicks_used, created_at, updated_at FROM accounts WHERE id = ?`
	row := r.db.QueryRow(query, id)

	var a models.Account
	err := row.Scan(&a.ID, &a.Name, &a.Plan, &a.ClickLimit, &a.ClicksUsed, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ResetAllUsage zeroes every usage counter; the worker runs this at
// billing-period rollover.
func (r *AccountRepository) ResetAllUsage() (int64, error) {
	res, err := r.db.Exec(`UPDATE accounts SET clicks_used = 0, updated_at = ? WHERE clicks_used > 0`, time.Now().Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

package links

import (
	"context"
	"database/sql"
	"time"

	"smartlink/internal/engine/platforms"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const linkColumns = `id, account_id, destination_url, android_uri, ios_uri,
	       platform, short_code, is_active, deleted_at, created_at, updated_at`

func (r *Repository) Create(link *Link) error {
	query := `
		INSERT INTO links (
			id, account_id, destination_url, android_uri, ios_uri,
			platform, short_code, is_active, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		link.ID,
		link.AccountID,
		link.DestinationURL,
		link.AndroidURI,
		link.IOSURI,
		string(link.Platform),
		link.ShortCode,
		link.IsActive,
		link.CreatedAt,
		link.UpdatedAt,
	)

	return err
}

// GetActiveByCode is the redirect-path point lookup: exactly one row
// per (platform, short_code) among non-deleted links, and only active
// ones qualify. Takes a context so the handler's redirect deadline
// bounds it.
func (r *Repository) GetActiveByCode(ctx context.Context, platform platforms.Platform, code string) (*Link, error) {
	query := `
		SELECT ` + linkColumns + `
		FROM links
		WHERE platform = ? AND short_code = ? AND is_active = 1 AND deleted_at IS NULL
	`
	row := r.db.QueryRowContext(ctx, query, string(platform), code)
	link, err := scanLink(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return link, err
}

func (r *Repository) GetByID(id string) (*Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE id = ? AND deleted_at IS NULL`
	link, err := scanLink(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return link, err
}

// ExistsByCode checks code availability scoped to a platform.
// Soft-deleted rows still reserve their code so a reissued link can
// never alias old click history.
func (r *Repository) ExistsByCode(platform platforms.Platform, code string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM links WHERE platform = ? AND short_code = ?)"
	err := r.db.QueryRow(query, string(platform), code).Scan(&exists)
	return exists, err
}

func (r *Repository) ListByAccount(accountID string, limit, offset int) ([]*Link, error) {
	query := `
		SELECT ` + linkColumns + `
		FROM links
		WHERE account_id = ? AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`
	rows, err := r.db.Query(query, accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Link
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, link)
	}
	return out, rows.Err()
}

func (r *Repository) SetActive(id string, active bool) error {
	query := "UPDATE links SET is_active = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL"
	_, err := r.db.Exec(query, active, time.Now().Unix(), id)
	return err
}

// SoftDelete marks the row deleted without removing it; click history
// keeps pointing at a real link id.
func (r *Repository) SoftDelete(id string) error {
	now := time.Now().Unix()
	query := "UPDATE links SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL"
	_, err := r.db.Exec(query, now, now, id)
	return err
}

func scanLink(s interface {
	Scan(dest ...interface{}) error
}) (*Link, error) {
	var link Link
	var platform string
	var androidURI, iosURI sql.NullString
	var deletedAt sql.NullInt64

	err := s.Scan(
		&link.ID,
		&link.AccountID,
		&link.DestinationURL,
		&androidURI,
		&iosURI,
		&platform,
		&link.ShortCode,
		&link.IsActive,
		&deletedAt,
		&link.CreatedAt,
		&link.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	link.Platform = platforms.Platform(platform)
	if androidURI.Valid {
		val := androidURI.String
		link.AndroidURI = &val
	}
	if iosURI.Valid {
		val := iosURI.String
		link.IOSURI = &val
	}
	if deletedAt.Valid {
		val := deletedAt.Int64
		link.DeletedAt = &val
	}

	return &link, nil
}

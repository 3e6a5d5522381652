package auth

import (
	"context"
	"database/sql"
)

var _ Directory = (*PGDirectory)(nil)

// PGDirectory implements Directory backed by PostgreSQL. It is the swap-in
// replacement for the static demo table; the session store's state machine
// is unchanged by the switch.
type PGDirectory struct {
	db *sql.DB
}

func NewPGDirectory(db *sql.DB) *PGDirectory {
	return &PGDirectory{db: db}
}

// Lookup finds the credential registered under email. The comparison is
// exact and case-sensitive, matching the static directory.
func (d *PGDirectory) Lookup(ctx context.Context, email string) (Credential, error) {
	row := d.db.QueryRowContext(ctx,
		`select c.email, c.password_hash, u.id, u.email, u.name, u.role, coalesce(u.avatar, '')
		   from credentials c
		   join users u on u.id = c.user_id
		  where c.email = $1`, email)

	var (
		rec  Credential
		role string
	)
	if err := row.Scan(
		&rec.Email, &rec.PasswordHash,
		&rec.User.ID, &rec.User.Email, &rec.User.Name, &role, &rec.User.Avatar,
	); err != nil {
		if err == sql.ErrNoRows {
			return Credential{}, ErrNotFound
		}
		return Credential{}, err
	}
	parsed, err := ParseRole(role)
	if err != nil {
		return Credential{}, err
	}
	rec.User.Role = parsed
	return rec, nil
}

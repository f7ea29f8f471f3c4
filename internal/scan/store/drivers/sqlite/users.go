package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/dietlens/platescan/internal/scan/domain"
	"github.com/dietlens/platescan/internal/scan/store"
)

type usersRepo struct {
	db dbtx
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (username, name, password_hash, profile_picture, created_at, updated_at)
		VALUES (?, ?, ?, NULL, ?, ?)`,
		u.Username, u.Name, u.PasswordHash, now, now,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT username, name, password_hash, profile_picture, created_at, updated_at
		FROM users
		WHERE username = ?`,
		username,
	)

	var u domain.User
	var picture sql.NullString
	err := row.Scan(&u.Username, &u.Name, &u.PasswordHash, &picture, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.ProfilePicture = mapNullString(picture)

	return u, nil
}

func (r *usersRepo) UpdateProfilePicture(ctx context.Context, username, ref string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET profile_picture = ?, updated_at = ?
		WHERE username = ?`,
		ref, time.Now().UTC(), username,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

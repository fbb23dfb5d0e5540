package sqlite

import (
	"context"
	"database/sql"

	"github.com/colorpal/colorpal-server/internal/domain"
	"github.com/colorpal/colorpal-server/internal/store"
)

const userColumns = `id, created_at, updated_at, email, password_hash, name, image, role, last_login_at`

func scanUser(row scanner) (*domain.User, error) {
	var (
		u         domain.User
		createdAt string
		updatedAt string
		image     sql.NullString
		role      string
		lastLogin sql.NullString
	)
	if err := row.Scan(&u.ID, &createdAt, &updatedAt, &u.Email, &u.PasswordHash, &u.Name, &image, &role, &lastLogin); err != nil {
		return nil, err
	}

	var err error
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if u.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		if u.LastLoginAt, err = parseTime(lastLogin.String); err != nil {
			return nil, err
		}
	}
	u.Image = image.String
	u.Role = domain.Role(role)
	return &u, nil
}

// CreateUser inserts a user. Emails are unique case-insensitively.
func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, created_at, updated_at, email, email_lower, password_hash, name, image, role, last_login_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, formatTime(u.CreatedAt), formatTime(u.UpdatedAt),
		u.Email, domain.NormalizeEmail(u.Email), u.PasswordHash,
		u.Name, nullString(u.Image), string(u.Role), nullTime(u.LastLoginAt),
	)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

// GetUser loads a user with its friend and follow lists.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return u, s.loadRelations(ctx, u)
}

// GetUserByEmail looks a user up by email, ignoring case.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email_lower = ?`, domain.NormalizeEmail(email)))
	if err != nil {
		return nil, notFound(err)
	}
	return u, s.loadRelations(ctx, u)
}

// GetUsersByIDs returns the users that exist among ids, without relation
// lists, in name order.
func (s *Store) GetUsersByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	in, args := inClause(ids)
	return s.queryUsers(ctx, `SELECT `+userColumns+` FROM users WHERE id IN (`+in+`) ORDER BY name, id`, args...)
}

// ListUsers returns every user, without relation lists.
func (s *Store) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.queryUsers(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
}

// CountUsers returns the number of registered users.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

// UpdateUser writes the profile fields of u. Relation lists are ignored.
func (s *Store) UpdateUser(ctx context.Context, u *domain.User) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users SET updated_at = ?, email = ?, email_lower = ?, password_hash = ?,
			name = ?, image = ?, role = ?, last_login_at = ?
		WHERE id = ?`,
		formatTime(u.UpdatedAt), u.Email, domain.NormalizeEmail(u.Email), u.PasswordHash,
		u.Name, nullString(u.Image), string(u.Role), nullTime(u.LastLoginAt), u.ID,
	)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return expectOne(res, err)
}

func (s *Store) queryUsers(ctx context.Context, query string, args ...any) ([]*domain.User, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) loadRelations(ctx context.Context, u *domain.User) error {
	var err error
	if u.FriendIDs, err = s.queryIDs(ctx, `SELECT friend_id FROM friendships WHERE user_id = ? ORDER BY created_at`, u.ID); err != nil {
		return err
	}
	if u.FollowerIDs, err = s.queryIDs(ctx, `SELECT follower_id FROM follows WHERE following_id = ? ORDER BY created_at`, u.ID); err != nil {
		return err
	}
	u.FollowingIDs, err = s.queryIDs(ctx, `SELECT following_id FROM follows WHERE follower_id = ? ORDER BY created_at`, u.ID)
	return err
}

// queryIDs collects a single string column. The result is never nil.
func (s *Store) queryIDs(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

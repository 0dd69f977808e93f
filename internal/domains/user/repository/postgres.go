package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodee-backend/internal/domains/user"
	"foodee-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

const selectUser = `
	SELECT u.id, u.username, u.email, u.password_hash, u.full_name, u.address,
	       u.phone_number, u.enabled, u.created_at, u.updated_at,
	       COALESCE(array_agg(r.role ORDER BY r.role) FILTER (WHERE r.role IS NOT NULL), '{}')
	FROM users u
	LEFT JOIN user_roles r ON r.user_id = u.id
`

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.Address,
		&u.PhoneNumber, &u.Enabled, &u.CreatedAt, &u.UpdatedAt, &u.Roles,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// mapUniqueError chuyển unique violation sang domain error theo tên constraint
func mapUniqueError(err error) error {
	if !database.IsUniqueViolation(err) {
		return err
	}
	switch database.ConstraintName(err) {
	case "users_username_key":
		return user.ErrUsernameExists.Wrap(err)
	case "users_email_key":
		return user.ErrEmailExists.Wrap(err)
	}
	return err
}

func (r *postgresRepository) findOne(ctx context.Context, where string, arg any) (*user.User, error) {
	query := selectUser + " WHERE " + where + " GROUP BY u.id"

	u, err := scanUser(database.Conn(ctx, r.pool).QueryRow(ctx, query, arg))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, full_name, address, phone_number, enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := database.Conn(ctx, r.pool).QueryRow(ctx, query,
		u.Username, u.Email, u.PasswordHash, u.FullName, u.Address, u.PhoneNumber, u.Enabled,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", mapUniqueError(err))
	}

	return r.SetRoles(ctx, u.ID, u.Roles)
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	return r.findOne(ctx, "u.id = $1", id)
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.findOne(ctx, "u.username = $1", username)
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, "LOWER(u.email) = LOWER($1)", email)
}

func (r *postgresRepository) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	return r.findOne(ctx, "(u.username = $1 OR LOWER(u.email) = LOWER($1))", login)
}

func (r *postgresRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET email = $2, full_name = $3, address = $4, phone_number = $5,
		    enabled = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := database.Conn(ctx, r.pool).QueryRow(ctx, query,
		u.ID, u.Email, u.FullName, u.Address, u.PhoneNumber, u.Enabled,
	).Scan(&u.UpdatedAt)
	if err != nil {
		if database.IsNoRows(err) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("update user: %w", mapUniqueError(err))
	}
	return nil
}

func (r *postgresRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`,
		userID, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) SetRoles(ctx context.Context, userID int64, roles []string) error {
	conn := database.Conn(ctx, r.pool)

	if _, err := conn.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear roles: %w", err)
	}
	if len(roles) == 0 {
		return nil
	}

	_, err := conn.Exec(ctx,
		`INSERT INTO user_roles (user_id, role) SELECT $1, unnest($2::text[]) ON CONFLICT DO NOTHING`,
		userID, roles,
	)
	if err != nil {
		return fmt.Errorf("insert roles: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, selectUser+" GROUP BY u.id ORDER BY u.id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *postgresRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

// ========================================
// PASSWORD RESET TOKENS
// ========================================

type resetTokenRepository struct {
	pool *pgxpool.Pool
}

func NewResetTokenRepository(pool *pgxpool.Pool) user.ResetTokenRepository {
	return &resetTokenRepository{pool: pool}
}

func (r *resetTokenRepository) Create(ctx context.Context, t *user.PasswordResetToken) error {
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO password_reset_tokens (token, user_id, expires_at, used)
		 VALUES ($1, $2, $3, $4) RETURNING created_at`,
		t.Token, t.UserID, t.ExpiresAt, t.Used,
	).Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert reset token: %w", err)
	}
	return nil
}

func (r *resetTokenRepository) FindByToken(ctx context.Context, token string) (*user.PasswordResetToken, error) {
	var t user.PasswordResetToken
	err := database.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT token, user_id, expires_at, used, created_at FROM password_reset_tokens WHERE token = $1`,
		token,
	).Scan(&t.Token, &t.UserID, &t.ExpiresAt, &t.Used, &t.CreatedAt)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, user.ErrInvalidResetToken
		}
		return nil, fmt.Errorf("query reset token: %w", err)
	}
	return &t, nil
}

func (r *resetTokenRepository) MarkUsed(ctx context.Context, token string) error {
	_, err := database.Conn(ctx, r.pool).Exec(ctx,
		`UPDATE password_reset_tokens SET used = TRUE WHERE token = $1`, token,
	)
	if err != nil {
		return fmt.Errorf("mark token used: %w", err)
	}
	return nil
}

func (r *resetTokenRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := database.Conn(ctx, r.pool).Exec(ctx,
		`DELETE FROM password_reset_tokens WHERE used = TRUE OR expires_at < $1`, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}

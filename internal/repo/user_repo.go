package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/MaxFerr/hair-cut-api/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewUserRepo(pool *pgxpool.Pool, timeout time.Duration) *UserRepo {
	return &UserRepo{pool: pool, timeout: timeout}
}

// CreateWithCredential inserts the login row and the users row in one
// transaction, so a failure on either side leaves nothing behind. A unique
// violation on the email surfaces as ErrDuplicate.
func (r *UserRepo) CreateWithCredential(ctx context.Context, email, name, passwordHash string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin register: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		INSERT INTO login (email, password)
		VALUES ($1, $2)
	`, email, passwordHash); err != nil {
		return nil, fmt.Errorf("insert login: %w", translate(err))
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO users (email, name, joined)
		VALUES ($1, $2, NOW())
		RETURNING m_user_id, email, name, joined
	`, email, name)

	var user models.User
	if err := row.Scan(&user.ID, &user.Email, &user.Name, &user.Joined); err != nil {
		return nil, fmt.Errorf("insert user: %w", translate(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit register: %w", err)
	}
	return &user, nil
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT m_user_id, email, name, joined
		FROM users
		WHERE email = $1
	`, email)

	var user models.User
	if err := row.Scan(&user.ID, &user.Email, &user.Name, &user.Joined); err != nil {
		return nil, fmt.Errorf("get user by email: %w", translate(err))
	}
	return &user, nil
}

func (r *UserRepo) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}

func (r *UserRepo) GetCredentialByEmail(ctx context.Context, email string) (*models.Credential, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT email, password, resetpasstoken, resetpassexpires
		FROM login
		WHERE email = $1
	`, email)

	var cred models.Credential
	if err := row.Scan(&cred.Email, &cred.PasswordHash, &cred.ResetToken, &cred.ResetExpires); err != nil {
		return nil, fmt.Errorf("get credential by email: %w", translate(err))
	}
	return &cred, nil
}

func (r *UserRepo) GetCredentialByResetToken(ctx context.Context, token string) (*models.Credential, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		SELECT email, password, resetpasstoken, resetpassexpires
		FROM login
		WHERE resetpasstoken = $1
	`, token)

	var cred models.Credential
	if err := row.Scan(&cred.Email, &cred.PasswordHash, &cred.ResetToken, &cred.ResetExpires); err != nil {
		return nil, fmt.Errorf("get credential by reset token: %w", translate(err))
	}
	return &cred, nil
}

func (r *UserRepo) SetResetToken(ctx context.Context, email, token string, expires time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd, err := r.pool.Exec(ctx, `
		UPDATE login
		SET resetpasstoken = $1, resetpassexpires = $2
		WHERE email = $3
	`, token, expires, email)
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("set reset token: %w", ErrNotFound)
	}
	return nil
}

// UpdatePasswordByResetToken stores the new hash and clears both reset fields
// in a single statement keyed on the token, which is what makes the token
// single-use. Returns the email of the updated credential.
func (r *UserRepo) UpdatePasswordByResetToken(ctx context.Context, token, passwordHash string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.pool.QueryRow(ctx, `
		UPDATE login
		SET password = $1, resetpasstoken = NULL, resetpassexpires = NULL
		WHERE resetpasstoken = $2
		RETURNING email
	`, passwordHash, token)

	var email string
	if err := row.Scan(&email); err != nil {
		return "", fmt.Errorf("update password by reset token: %w", translate(err))
	}
	return email, nil
}

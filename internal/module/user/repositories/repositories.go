package repositories

import (
	"context"
	"database/sql"
	"time"

	"marketplace-service/internal/module/user/models/entity"
	"marketplace-service/internal/pkg/database"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	// accounts
	FindByID(ctx context.Context, id int64) (entity.User, error)
	FindByEmail(ctx context.Context, email string) (entity.User, error)
	EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error)
	InsertUser(ctx context.Context, user entity.User) (entity.User, error)
	IsActive(ctx context.Context, id int64) (bool, error)
	// google
	LinkGoogle(ctx context.Context, id int64, googleID string, avatar string) error
	// password reset
	SetResetCode(ctx context.Context, id int64, hash string, expiresAt time.Time) error
	ClearResetCode(ctx context.Context, id int64) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
	// profile
	UpdateProfile(ctx context.Context, user entity.User) (entity.User, error)
	UpdateAvatar(ctx context.Context, id int64, avatar sql.NullString) error
	// provider
	InsertProviderProfile(ctx context.Context, userID int64) error
	FindProviderProfile(ctx context.Context, userID int64) (entity.ProviderProfile, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

const userColumns = `id, name, email, phone, password, google_id, is_google_account, role, status, avatar,
	reset_code_hash, reset_code_expires_at, created_at, updated_at`

func (r *repositories) FindByID(ctx context.Context, id int64) (entity.User, error) {
	var user entity.User
	err := database.Conn(ctx, r.db).GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return entity.User{}, database.Translate(err, "user not found", "error find user")
	}
	return user, nil
}

func (r *repositories) FindByEmail(ctx context.Context, email string) (entity.User, error) {
	var user entity.User
	err := database.Conn(ctx, r.db).GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if err != nil {
		return entity.User{}, database.Translate(err, "user not found", "error find user")
	}
	return user, nil
}

func (r *repositories) EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error) {
	var taken bool
	err := database.Conn(ctx, r.db).GetContext(ctx, &taken,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`, email, exceptID)
	if err != nil {
		r.log.Error(ctx, "error check email", err)
		return false, errors.InternalServerError("error check email")
	}
	return taken, nil
}

func (r *repositories) InsertUser(ctx context.Context, user entity.User) (entity.User, error) {
	query := `INSERT INTO users (name, email, phone, password, google_id, is_google_account, role, avatar)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns
	var out entity.User
	err := database.Conn(ctx, r.db).QueryRowxContext(ctx, query,
		user.Name, user.Email, user.Phone, user.Password, user.GoogleID, user.IsGoogleAccount, user.Role, user.Avatar,
	).StructScan(&out)
	if err != nil {
		if _, ok := database.IsUniqueViolation(err); ok {
			return entity.User{}, errors.Conflict("email already in use")
		}
		r.log.Error(ctx, "error insert user", err)
		return entity.User{}, errors.InternalServerError("error insert user")
	}
	return out, nil
}

func (r *repositories) IsActive(ctx context.Context, id int64) (bool, error) {
	var status string
	err := database.Conn(ctx, r.db).GetContext(ctx, &status, `SELECT status FROM users WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		r.log.Error(ctx, "error check user status", err)
		return false, errors.InternalServerError("error check user status")
	}
	return status == entity.StatusActive, nil
}

func (r *repositories) LinkGoogle(ctx context.Context, id int64, googleID string, avatar string) error {
	_, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE users SET is_google_account = TRUE, google_id = COALESCE(NULLIF($1, ''), google_id),
			avatar = NULLIF($2, ''), updated_at = NOW()
		WHERE id = $3`, googleID, avatar, id)
	if err != nil {
		r.log.Error(ctx, "error link google account", err)
		return errors.InternalServerError("error link google account")
	}
	return nil
}

func (r *repositories) SetResetCode(ctx context.Context, id int64, hash string, expiresAt time.Time) error {
	_, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE users SET reset_code_hash = $1, reset_code_expires_at = $2 WHERE id = $3`, hash, expiresAt, id)
	if err != nil {
		r.log.Error(ctx, "error set reset code", err)
		return errors.InternalServerError("error set reset code")
	}
	return nil
}

func (r *repositories) ClearResetCode(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE users SET reset_code_hash = NULL, reset_code_expires_at = NULL WHERE id = $1`, id)
	if err != nil {
		r.log.Error(ctx, "error clear reset code", err)
		return errors.InternalServerError("error clear reset code")
	}
	return nil
}

// UpdatePassword also consumes any pending reset code.
func (r *repositories) UpdatePassword(ctx context.Context, id int64, hash string) error {
	_, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE users SET password = $1, reset_code_hash = NULL, reset_code_expires_at = NULL, updated_at = NOW()
		WHERE id = $2`, hash, id)
	if err != nil {
		r.log.Error(ctx, "error update password", err)
		return errors.InternalServerError("error update password")
	}
	return nil
}

func (r *repositories) UpdateProfile(ctx context.Context, user entity.User) (entity.User, error) {
	query := `UPDATE users SET name = $1, email = $2, phone = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + userColumns
	var out entity.User
	err := database.Conn(ctx, r.db).QueryRowxContext(ctx, query, user.Name, user.Email, user.Phone, user.ID).StructScan(&out)
	if err != nil {
		if _, ok := database.IsUniqueViolation(err); ok {
			return entity.User{}, errors.Conflict("email already in use")
		}
		r.log.Error(ctx, "error update profile", err)
		return entity.User{}, database.Translate(err, "user not found", "error update profile")
	}
	return out, nil
}

func (r *repositories) UpdateAvatar(ctx context.Context, id int64, avatar sql.NullString) error {
	_, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE users SET avatar = $1, updated_at = NOW() WHERE id = $2`, avatar, id)
	if err != nil {
		r.log.Error(ctx, "error update avatar", err)
		return errors.InternalServerError("error update avatar")
	}
	return nil
}

func (r *repositories) InsertProviderProfile(ctx context.Context, userID int64) error {
	_, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO provider_profiles (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		r.log.Error(ctx, "error insert provider profile", err)
		return errors.InternalServerError("error insert provider profile")
	}
	return nil
}

func (r *repositories) FindProviderProfile(ctx context.Context, userID int64) (entity.ProviderProfile, error) {
	var p entity.ProviderProfile
	err := database.Conn(ctx, r.db).GetContext(ctx, &p,
		`SELECT id, user_id, bio, specialty, address, formatted_address, latitude, longitude, verified
		FROM provider_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return entity.ProviderProfile{}, database.Translate(err, "provider profile not found", "error find provider profile")
	}
	return p, nil
}

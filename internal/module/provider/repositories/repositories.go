package repositories

import (
	"context"
	"database/sql"

	"marketplace-service/internal/module/provider/models/entity"
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
	// profile
	FindProfile(ctx context.Context, userID int64) (entity.Profile, error)
	UpdateContact(ctx context.Context, userID int64, name string, phone sql.NullString) error
	UpsertDetails(ctx context.Context, userID int64, details entity.Details) error
	UpsertLocation(ctx context.Context, userID int64, loc entity.Location) error
	FindProviderID(ctx context.Context, userID int64) (int64, error)
	EnsureProviderID(ctx context.Context, userID int64) (int64, error)
	// documents
	InsertDocument(ctx context.Context, doc entity.Document) (entity.Document, error)
	FindDocuments(ctx context.Context, providerID int64) ([]entity.Document, error)
	DeleteDocument(ctx context.Context, id, providerID int64) (string, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

func (r *repositories) FindProfile(ctx context.Context, userID int64) (entity.Profile, error) {
	query := `SELECT u.id AS user_id, u.name, u.email, u.phone, u.avatar, u.status,
			p.id AS provider_id, p.bio, p.specialty, p.address, p.formatted_address,
			p.latitude, p.longitude, p.verified
		FROM users u
		LEFT JOIN provider_profiles p ON p.user_id = u.id
		WHERE u.id = $1 AND u.role = 'provider'`
	var p entity.Profile
	if err := database.Conn(ctx, r.db).GetContext(ctx, &p, query, userID); err != nil {
		return entity.Profile{}, database.Translate(err, "provider not found", "error find provider")
	}
	return p, nil
}

func (r *repositories) UpdateContact(ctx context.Context, userID int64, name string, phone sql.NullString) error {
	_, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE users SET name = $1, phone = $2, updated_at = NOW() WHERE id = $3`, name, phone, userID)
	if err != nil {
		r.log.Error(ctx, "error update provider contact", err)
		return errors.InternalServerError("error update provider contact")
	}
	return nil
}

func (r *repositories) UpsertDetails(ctx context.Context, userID int64, d entity.Details) error {
	_, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO provider_profiles (user_id, bio, specialty, address, formatted_address)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			bio = EXCLUDED.bio,
			specialty = EXCLUDED.specialty,
			address = EXCLUDED.address,
			formatted_address = EXCLUDED.formatted_address,
			updated_at = NOW()`,
		userID, d.Bio, d.Specialty, d.Address, d.FormattedAddress)
	if err != nil {
		r.log.Error(ctx, "error upsert provider profile", err)
		return errors.InternalServerError("error update provider profile")
	}
	return nil
}

func (r *repositories) UpsertLocation(ctx context.Context, userID int64, loc entity.Location) error {
	_, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO provider_profiles (user_id, latitude, longitude, address, formatted_address)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			address = COALESCE(EXCLUDED.address, provider_profiles.address),
			formatted_address = COALESCE(EXCLUDED.formatted_address, provider_profiles.formatted_address),
			updated_at = NOW()`,
		userID, loc.Latitude, loc.Longitude, loc.Address, loc.FormattedAddress)
	if err != nil {
		r.log.Error(ctx, "error upsert provider location", err)
		return errors.InternalServerError("error update location")
	}
	return nil
}

func (r *repositories) FindProviderID(ctx context.Context, userID int64) (int64, error) {
	var id int64
	err := database.Conn(ctx, r.db).GetContext(ctx, &id, `SELECT id FROM provider_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return 0, database.Translate(err, "provider profile not found", "error find provider profile")
	}
	return id, nil
}

// EnsureProviderID returns the profile id, creating an empty profile first if needed.
func (r *repositories) EnsureProviderID(ctx context.Context, userID int64) (int64, error) {
	var id int64
	err := database.Conn(ctx, r.db).GetContext(ctx, &id,
		`INSERT INTO provider_profiles (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id`, userID)
	if err != nil {
		r.log.Error(ctx, "error ensure provider profile", err)
		return 0, errors.InternalServerError("error create provider profile")
	}
	return id, nil
}

func (r *repositories) InsertDocument(ctx context.Context, doc entity.Document) (entity.Document, error) {
	var out entity.Document
	err := database.Conn(ctx, r.db).QueryRowxContext(ctx,
		`INSERT INTO documents (provider_id, type, file_url, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, provider_id, type, file_url, status, created_at`,
		doc.ProviderID, doc.Type, doc.FileURL, doc.Status,
	).StructScan(&out)
	if err != nil {
		r.log.Error(ctx, "error insert document", err)
		return entity.Document{}, errors.InternalServerError("error insert document")
	}
	return out, nil
}

func (r *repositories) FindDocuments(ctx context.Context, providerID int64) ([]entity.Document, error) {
	docs := []entity.Document{}
	err := database.Conn(ctx, r.db).SelectContext(ctx, &docs,
		`SELECT id, provider_id, type, file_url, status, created_at
		FROM documents WHERE provider_id = $1
		ORDER BY created_at DESC`, providerID)
	if err != nil {
		r.log.Error(ctx, "error find documents", err)
		return nil, errors.InternalServerError("error find documents")
	}
	return docs, nil
}

// DeleteDocument removes a document owned by providerID and returns its file url.
func (r *repositories) DeleteDocument(ctx context.Context, id, providerID int64) (string, error) {
	var url string
	err := database.Conn(ctx, r.db).GetContext(ctx, &url,
		`DELETE FROM documents WHERE id = $1 AND provider_id = $2 RETURNING file_url`, id, providerID)
	if err != nil {
		return "", database.Translate(err, "document not found", "error delete document")
	}
	return url, nil
}

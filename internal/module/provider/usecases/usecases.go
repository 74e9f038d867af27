package usecases

import (
	"context"
	"database/sql"
	"mime/multipart"

	"marketplace-service/internal/module/provider/models/entity"
	"marketplace-service/internal/module/provider/models/request"
	"marketplace-service/internal/module/provider/models/response"
	"marketplace-service/internal/module/provider/repositories"
	"marketplace-service/internal/pkg/database"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/log"
	"marketplace-service/internal/pkg/storage"

	"go.elastic.co/apm"
)

const defaultDocumentType = "document"

type usecase struct {
	repo    repositories.Repositories
	tx      database.Transactor
	storage storage.Storage
	log     log.Logger
}

type Usecase interface {
	// profile
	GetProfile(ctx context.Context, userID int64) (response.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, req *request.UpdateProfile) (response.Profile, error)
	UpdateLocation(ctx context.Context, userID int64, req *request.UpdateLocation) (response.Profile, error)
	VerificationStatus(ctx context.Context, userID int64) (response.Verification, error)
	// documents
	UploadDocument(ctx context.Context, userID int64, docType string, file *multipart.FileHeader) (response.Document, error)
	ListDocuments(ctx context.Context, userID int64) ([]response.Document, error)
	DeleteDocument(ctx context.Context, userID, documentID int64) error
}

func New(repo repositories.Repositories, tx database.Transactor, store storage.Storage, log log.Logger) Usecase {
	return &usecase{
		repo:    repo,
		tx:      tx,
		storage: store,
		log:     log,
	}
}

func (u *usecase) GetProfile(ctx context.Context, userID int64) (response.Profile, error) {
	span, ctx := apm.StartSpan(ctx, "provider.GetProfile", "usecase")
	defer span.End()

	p, err := u.repo.FindProfile(ctx, userID)
	if err != nil {
		return response.Profile{}, err
	}
	return toProfile(p), nil
}

func (u *usecase) UpdateProfile(ctx context.Context, userID int64, req *request.UpdateProfile) (response.Profile, error) {
	span, ctx := apm.StartSpan(ctx, "provider.UpdateProfile", "usecase")
	defer span.End()

	var updated entity.Profile
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := u.repo.FindProfile(ctx, userID)
		if err != nil {
			return err
		}

		if req.Name != nil || req.Phone != nil {
			name, phone := p.Name, p.Phone
			if req.Name != nil {
				name = *req.Name
			}
			if req.Phone != nil {
				phone = nullString(*req.Phone)
			}
			if err := u.repo.UpdateContact(ctx, userID, name, phone); err != nil {
				return err
			}
		}

		details := entity.Details{
			Bio:              merge(p.Bio, req.Bio),
			Specialty:        merge(p.Specialty, req.Specialty),
			Address:          merge(p.Address, req.Address),
			FormattedAddress: merge(p.FormattedAddress, req.FormattedAddress),
		}
		if err := u.repo.UpsertDetails(ctx, userID, details); err != nil {
			return err
		}

		updated, err = u.repo.FindProfile(ctx, userID)
		return err
	})
	if err != nil {
		return response.Profile{}, err
	}
	return toProfile(updated), nil
}

func (u *usecase) UpdateLocation(ctx context.Context, userID int64, req *request.UpdateLocation) (response.Profile, error) {
	span, ctx := apm.StartSpan(ctx, "provider.UpdateLocation", "usecase")
	defer span.End()

	if _, err := u.repo.FindProfile(ctx, userID); err != nil {
		return response.Profile{}, err
	}

	err := u.repo.UpsertLocation(ctx, userID, entity.Location{
		Latitude:         *req.Latitude,
		Longitude:        *req.Longitude,
		Address:          nullString(req.Address),
		FormattedAddress: nullString(req.FormattedAddress),
	})
	if err != nil {
		return response.Profile{}, err
	}

	p, err := u.repo.FindProfile(ctx, userID)
	if err != nil {
		return response.Profile{}, err
	}
	return toProfile(p), nil
}

func (u *usecase) VerificationStatus(ctx context.Context, userID int64) (response.Verification, error) {
	span, ctx := apm.StartSpan(ctx, "provider.VerificationStatus", "usecase")
	defer span.End()

	p, err := u.repo.FindProfile(ctx, userID)
	if err != nil {
		return response.Verification{}, err
	}
	if !p.ProviderID.Valid {
		return response.Verification{}, errors.NotFound("provider profile not found")
	}
	return response.Verification{Verified: p.Verified.Bool}, nil
}

func (u *usecase) UploadDocument(ctx context.Context, userID int64, docType string, file *multipart.FileHeader) (response.Document, error) {
	span, ctx := apm.StartSpan(ctx, "provider.UploadDocument", "usecase")
	defer span.End()

	if docType == "" {
		docType = defaultDocumentType
	}

	providerID, err := u.repo.EnsureProviderID(ctx, userID)
	if err != nil {
		return response.Document{}, err
	}

	url, err := u.storage.Store(ctx, storage.KindDocument, file)
	if err != nil {
		return response.Document{}, err
	}

	doc, err := u.repo.InsertDocument(ctx, entity.Document{
		ProviderID: providerID,
		Type:       docType,
		FileURL:    url,
		Status:     entity.DocumentPending,
	})
	if err != nil {
		if derr := u.storage.Delete(ctx, url); derr != nil {
			u.log.Warn(ctx, "error remove orphan document", derr)
		}
		return response.Document{}, err
	}
	return toDocument(doc), nil
}

func (u *usecase) ListDocuments(ctx context.Context, userID int64) ([]response.Document, error) {
	span, ctx := apm.StartSpan(ctx, "provider.ListDocuments", "usecase")
	defer span.End()

	providerID, err := u.repo.FindProviderID(ctx, userID)
	if errors.Is(err, errors.KindNotFound) {
		return []response.Document{}, nil
	}
	if err != nil {
		return nil, err
	}

	docs, err := u.repo.FindDocuments(ctx, providerID)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Document, 0, len(docs))
	for _, d := range docs {
		resp = append(resp, toDocument(d))
	}
	return resp, nil
}

func (u *usecase) DeleteDocument(ctx context.Context, userID, documentID int64) error {
	span, ctx := apm.StartSpan(ctx, "provider.DeleteDocument", "usecase")
	defer span.End()

	providerID, err := u.repo.FindProviderID(ctx, userID)
	if err != nil {
		return err
	}

	url, err := u.repo.DeleteDocument(ctx, documentID, providerID)
	if err != nil {
		return err
	}

	if err := u.storage.Delete(ctx, url); err != nil {
		u.log.Warn(ctx, "error remove document file", err)
	}
	return nil
}

func merge(current sql.NullString, next *string) sql.NullString {
	if next == nil {
		return current
	}
	return nullString(*next)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toProfile(p entity.Profile) response.Profile {
	resp := response.Profile{
		ID:               p.UserID,
		Name:             p.Name,
		Email:            p.Email,
		Phone:            p.Phone.String,
		Avatar:           p.Avatar.String,
		Status:           p.Status,
		Bio:              p.Bio.String,
		Specialty:        p.Specialty.String,
		Address:          p.Address.String,
		FormattedAddress: p.FormattedAddress.String,
		Verified:         p.Verified.Bool,
	}
	if p.ProviderID.Valid {
		resp.ProviderID = &p.ProviderID.Int64
	}
	if p.Latitude.Valid {
		resp.Latitude = &p.Latitude.Float64
	}
	if p.Longitude.Valid {
		resp.Longitude = &p.Longitude.Float64
	}
	return resp
}

func toDocument(d entity.Document) response.Document {
	return response.Document{
		ID:         d.ID,
		ProviderID: d.ProviderID,
		Type:       d.Type,
		FileURL:    d.FileURL,
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
	}
}

package usecases

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"fmt"
	"math/big"
	"mime/multipart"
	"time"

	"marketplace-service/internal/module/user/models/entity"
	"marketplace-service/internal/module/user/models/request"
	"marketplace-service/internal/module/user/models/response"
	"marketplace-service/internal/module/user/repositories"
	"marketplace-service/internal/pkg/database"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/google"
	"marketplace-service/internal/pkg/log"
	"marketplace-service/internal/pkg/mailer"
	"marketplace-service/internal/pkg/storage"
	"marketplace-service/internal/pkg/token"

	"go.elastic.co/apm"
	"golang.org/x/crypto/bcrypt"
)

type Options struct {
	ResetTTL time.Duration
}

type usecase struct {
	repo     repositories.Repositories
	tx       database.Transactor
	tokens   *token.Manager
	verifier google.Verifier
	mailer   mailer.Mailer
	storage  storage.Storage
	log      log.Logger
	opts     Options
	now      func() time.Time
}

type Usecase interface {
	// auth
	RegisterClient(ctx context.Context, req *request.Register) (response.Auth, error)
	RegisterProvider(ctx context.Context, req *request.Register) (response.Auth, error)
	Login(ctx context.Context, req *request.Login) (response.Auth, error)
	GoogleLogin(ctx context.Context, req *request.GoogleLogin) (response.Auth, error)
	ForgotPassword(ctx context.Context, req *request.ForgotPassword) error
	ResetPassword(ctx context.Context, req *request.ResetPassword) error
	// profile
	Me(ctx context.Context, userID int64) (response.User, error)
	UpdateProfile(ctx context.Context, userID int64, req *request.UpdateProfile) (response.User, error)
	UploadAvatar(ctx context.Context, userID int64, file *multipart.FileHeader) (response.Avatar, error)
	DeleteAvatar(ctx context.Context, userID int64) error
}

func New(repo repositories.Repositories, tx database.Transactor, tokens *token.Manager, verifier google.Verifier, mail mailer.Mailer, store storage.Storage, log log.Logger, opts Options) Usecase {
	if opts.ResetTTL <= 0 {
		opts.ResetTTL = time.Hour
	}
	return &usecase{
		repo:     repo,
		tx:       tx,
		tokens:   tokens,
		verifier: verifier,
		mailer:   mail,
		storage:  store,
		log:      log,
		opts:     opts,
		now:      time.Now,
	}
}

func (u *usecase) RegisterClient(ctx context.Context, req *request.Register) (response.Auth, error) {
	span, ctx := apm.StartSpan(ctx, "user.RegisterClient", "usecase")
	defer span.End()

	return u.register(ctx, req, entity.RoleClient)
}

func (u *usecase) RegisterProvider(ctx context.Context, req *request.Register) (response.Auth, error) {
	span, ctx := apm.StartSpan(ctx, "user.RegisterProvider", "usecase")
	defer span.End()

	return u.register(ctx, req, entity.RoleProvider)
}

func (u *usecase) register(ctx context.Context, req *request.Register, role string) (response.Auth, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Error(ctx, "error hash password", err)
		return response.Auth{}, errors.InternalServerError("error hash password")
	}

	var user entity.User
	err = u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err = u.repo.InsertUser(ctx, entity.User{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    nullString(req.Phone),
			Password: sql.NullString{String: string(hash), Valid: true},
			Role:     role,
		})
		if err != nil {
			return err
		}
		if role == entity.RoleProvider {
			return u.repo.InsertProviderProfile(ctx, user.ID)
		}
		return nil
	})
	if err != nil {
		return response.Auth{}, err
	}

	return u.authenticate(ctx, user)
}

func (u *usecase) Login(ctx context.Context, req *request.Login) (response.Auth, error) {
	span, ctx := apm.StartSpan(ctx, "user.Login", "usecase")
	defer span.End()

	user, err := u.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return response.Auth{}, err
	}
	if user.IsGoogleAccount {
		return response.Auth{}, errors.Forbidden("this account uses Google sign-in")
	}
	if !user.Password.Valid || bcrypt.CompareHashAndPassword([]byte(user.Password.String), []byte(req.Password)) != nil {
		return response.Auth{}, errors.UnauthorizedError("wrong password")
	}
	if user.Status != entity.StatusActive {
		return response.Auth{}, errors.Forbidden("account suspended")
	}

	return u.authenticate(ctx, user)
}

func (u *usecase) GoogleLogin(ctx context.Context, req *request.GoogleLogin) (response.Auth, error) {
	span, ctx := apm.StartSpan(ctx, "user.GoogleLogin", "usecase")
	defer span.End()

	profile, err := u.verifier.Verify(ctx, req.Token)
	if err != nil {
		u.log.Warn(ctx, "google token rejected", err)
		return response.Auth{}, errors.UnauthorizedError("invalid google token")
	}
	if profile.Email == "" {
		return response.Auth{}, errors.UnauthorizedError("google account has no email")
	}

	user, err := u.repo.FindByEmail(ctx, profile.Email)
	switch {
	case errors.Is(err, errors.KindNotFound):
		user, err = u.repo.InsertUser(ctx, entity.User{
			Name:            profile.Name,
			Email:           profile.Email,
			GoogleID:        nullString(profile.Subject),
			IsGoogleAccount: true,
			Role:            entity.RoleClient,
			Avatar:          nullString(profile.Picture),
		})
		if err != nil {
			return response.Auth{}, err
		}
	case err != nil:
		return response.Auth{}, err
	case !user.IsGoogleAccount || user.Avatar.String != profile.Picture:
		if err := u.repo.LinkGoogle(ctx, user.ID, profile.Subject, profile.Picture); err != nil {
			return response.Auth{}, err
		}
		user.IsGoogleAccount = true
		user.Avatar = nullString(profile.Picture)
	}

	if user.Status != entity.StatusActive && user.Status != "" {
		return response.Auth{}, errors.Forbidden("account suspended")
	}

	return u.authenticate(ctx, user)
}

func (u *usecase) authenticate(ctx context.Context, user entity.User) (response.Auth, error) {
	tokenStr, err := u.tokens.Issue(user.ID, user.Role, user.Email)
	if err != nil {
		u.log.Error(ctx, "error issue token", err)
		return response.Auth{}, errors.InternalServerError("error issue token")
	}

	resp := response.Auth{Token: tokenStr, User: toUser(user)}
	if user.Role == entity.RoleProvider {
		profile, err := u.repo.FindProviderProfile(ctx, user.ID)
		switch {
		case err == nil:
			resp.User.ProviderProfile = toProviderProfile(profile)
		case !errors.Is(err, errors.KindNotFound):
			return response.Auth{}, err
		}
	}
	return resp, nil
}

// ForgotPassword answers the same way whether or not the email is known.
func (u *usecase) ForgotPassword(ctx context.Context, req *request.ForgotPassword) error {
	span, ctx := apm.StartSpan(ctx, "user.ForgotPassword", "usecase")
	defer span.End()

	user, err := u.repo.FindByEmail(ctx, req.Email)
	if errors.Is(err, errors.KindNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	code, err := resetCode()
	if err != nil {
		u.log.Error(ctx, "error generate reset code", err)
		return errors.InternalServerError("error generate reset code")
	}

	if err := u.repo.SetResetCode(ctx, user.ID, digest(user.ID, code), u.now().Add(u.opts.ResetTTL)); err != nil {
		return err
	}

	body := fmt.Sprintf(`<p>Hello %s,</p>
<p>Your password reset code is: <strong>%s</strong></p>
<p>It expires in %s.</p>
<p>If you did not request it, ignore this email.</p>`, user.Name, code, u.opts.ResetTTL)

	// the stored code stays valid when the mail does not go out
	if err := u.mailer.Send(ctx, user.Email, "Password reset code", body); err != nil {
		u.log.Error(ctx, fmt.Sprintf("error send reset code to user %d", user.ID), err)
	}
	return nil
}

func (u *usecase) ResetPassword(ctx context.Context, req *request.ResetPassword) error {
	span, ctx := apm.StartSpan(ctx, "user.ResetPassword", "usecase")
	defer span.End()

	user, err := u.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	stored := []byte(user.ResetCodeHash.String)
	given := []byte(digest(user.ID, req.Code))
	if !user.ResetCodeValid(u.now()) || subtle.ConstantTimeCompare(stored, given) != 1 {
		if err := u.repo.ClearResetCode(ctx, user.ID); err != nil {
			u.log.Warn(ctx, "error clear reset code", err)
		}
		return errors.ValidationError("invalid or expired code")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		u.log.Error(ctx, "error hash password", err)
		return errors.InternalServerError("error hash password")
	}

	return u.repo.UpdatePassword(ctx, user.ID, string(hash))
}

func (u *usecase) Me(ctx context.Context, userID int64) (response.User, error) {
	span, ctx := apm.StartSpan(ctx, "user.Me", "usecase")
	defer span.End()

	user, err := u.repo.FindByID(ctx, userID)
	if err != nil {
		return response.User{}, err
	}
	return toUser(user), nil
}

func (u *usecase) UpdateProfile(ctx context.Context, userID int64, req *request.UpdateProfile) (response.User, error) {
	span, ctx := apm.StartSpan(ctx, "user.UpdateProfile", "usecase")
	defer span.End()

	user, err := u.repo.FindByID(ctx, userID)
	if err != nil {
		return response.User{}, err
	}

	if req.Email != "" && req.Email != user.Email {
		taken, err := u.repo.EmailTaken(ctx, req.Email, userID)
		if err != nil {
			return response.User{}, err
		}
		if taken {
			return response.User{}, errors.Conflict("email already in use")
		}
		user.Email = req.Email
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = nullString(req.Phone)
	}

	updated, err := u.repo.UpdateProfile(ctx, user)
	if err != nil {
		return response.User{}, err
	}
	return toUser(updated), nil
}

func (u *usecase) UploadAvatar(ctx context.Context, userID int64, file *multipart.FileHeader) (response.Avatar, error) {
	span, ctx := apm.StartSpan(ctx, "user.UploadAvatar", "usecase")
	defer span.End()

	user, err := u.repo.FindByID(ctx, userID)
	if err != nil {
		return response.Avatar{}, err
	}

	url, err := u.storage.Store(ctx, storage.KindAvatar, file)
	if err != nil {
		return response.Avatar{}, err
	}

	if err := u.repo.UpdateAvatar(ctx, userID, nullString(url)); err != nil {
		if derr := u.storage.Delete(ctx, url); derr != nil {
			u.log.Warn(ctx, "error remove orphan avatar", derr)
		}
		return response.Avatar{}, err
	}

	if user.Avatar.Valid && user.Avatar.String != url {
		if err := u.storage.Delete(ctx, user.Avatar.String); err != nil {
			u.log.Warn(ctx, "error remove previous avatar", err)
		}
	}

	return response.Avatar{Avatar: url}, nil
}

func (u *usecase) DeleteAvatar(ctx context.Context, userID int64) error {
	span, ctx := apm.StartSpan(ctx, "user.DeleteAvatar", "usecase")
	defer span.End()

	user, err := u.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.Avatar.Valid || user.Avatar.String == "" {
		return errors.BadRequest("no avatar to delete")
	}

	if err := u.repo.UpdateAvatar(ctx, userID, sql.NullString{}); err != nil {
		return err
	}
	if err := u.storage.Delete(ctx, user.Avatar.String); err != nil {
		u.log.Warn(ctx, "error remove avatar file", err)
	}
	return nil
}

func resetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func digest(userID int64, code string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d:%s", userID, code)))
	return hex.EncodeToString(sum[:])
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toUser(user entity.User) response.User {
	resp := response.User{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Phone:           user.Phone.String,
		Avatar:          user.Avatar.String,
		Role:            user.Role,
		Status:          user.Status,
		IsGoogleAccount: user.IsGoogleAccount,
	}
	if !user.CreatedAt.IsZero() {
		resp.CreatedAt = user.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func toProviderProfile(p entity.ProviderProfile) *response.ProviderProfile {
	resp := &response.ProviderProfile{
		ID:               p.ID,
		Bio:              p.Bio.String,
		Specialty:        p.Specialty.String,
		Address:          p.Address.String,
		FormattedAddress: p.FormattedAddress.String,
		Verified:         p.Verified,
	}
	if p.Latitude.Valid {
		resp.Latitude = &p.Latitude.Float64
	}
	if p.Longitude.Valid {
		resp.Longitude = &p.Longitude.Float64
	}
	return resp
}

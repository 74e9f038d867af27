package google

import (
	"context"
	"fmt"
	"net/http"

	"marketplace-service/config"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/log"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
	"google.golang.org/api/idtoken"
)

type Profile struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type Verifier interface {
	// Verify accepts either a Google ID token or an OAuth access token.
	Verify(ctx context.Context, token string) (Profile, error)
}

type verifier struct {
	cfg        *config.GoogleConfig
	httpClient *circuit.HTTPClient
	log        log.Logger
	validate   func(ctx context.Context, token string, audience string) (*idtoken.Payload, error)
}

func NewVerifier(cfg *config.GoogleConfig, httpClient *circuit.HTTPClient, logger log.Logger) Verifier {
	return &verifier{
		cfg:        cfg,
		httpClient: httpClient,
		log:        logger,
		validate:   idtoken.Validate,
	}
}

func (v *verifier) Verify(ctx context.Context, token string) (Profile, error) {
	payload, err := v.validate(ctx, token, v.cfg.ClientID)
	if err == nil {
		return checkProfile(profileFromClaims(payload), isTrue(payload.Claims["email_verified"]))
	}
	v.log.Info(ctx, "google id token rejected, trying access token", err)

	return v.userInfo(ctx, token)
}

func (v *verifier) userInfo(ctx context.Context, accessToken string) (Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.cfg.UserInfoURL, nil)
	if err != nil {
		return Profile{}, errors.InternalServerError("error build google request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.log.Error(ctx, "error call google userinfo", err)
		return Profile{}, errors.UnauthorizedError("invalid google token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Profile{}, errors.UnauthorizedError(fmt.Sprintf("google rejected token: %d", resp.StatusCode))
	}

	var info struct {
		Profile
		EmailVerified interface{} `json:"email_verified"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return Profile{}, errors.UnauthorizedError("invalid google userinfo response")
	}
	return checkProfile(info.Profile, isTrue(info.EmailVerified))
}

// checkProfile applies the same acceptance rules to both token kinds.
func checkProfile(p Profile, emailVerified bool) (Profile, error) {
	if p.Email == "" || p.Subject == "" {
		return Profile{}, errors.UnauthorizedError("google profile has no email")
	}
	if !emailVerified {
		return Profile{}, errors.UnauthorizedError("google email is not verified")
	}
	return p, nil
}

// isTrue reads email_verified, which Google sends as a bool or as "true".
func isTrue(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	default:
		return false
	}
}

func profileFromClaims(payload *idtoken.Payload) Profile {
	str := func(key string) string {
		s, _ := payload.Claims[key].(string)
		return s
	}
	return Profile{
		Subject: payload.Subject,
		Email:   str("email"),
		Name:    str("name"),
		Picture: str("picture"),
	}
}

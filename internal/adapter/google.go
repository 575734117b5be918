package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-auth/internal/config"
	"github.com/MKhiriev/go-course-auth/internal/logger"
	"github.com/MKhiriev/go-course-auth/internal/utils"
	"github.com/MKhiriev/go-course-auth/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// googleUserInfo is the subset of the OpenID Connect userinfo response we use.
type googleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

// GoogleProvider implements [IdentityProvider] for Google accounts.
type GoogleProvider struct {
	oauth       *oauth2.Config
	client      *utils.HTTPClient
	userInfoURL string
}

// NewGoogleProvider creates a provider requesting the openid, email and
// profile scopes. Outbound calls are bounded by cfg.RequestTimeout.
func NewGoogleProvider(cfg config.Adapter) *GoogleProvider {
	return newGoogleProvider(cfg, google.Endpoint, googleUserInfoURL)
}

func newGoogleProvider(cfg config.Adapter, endpoint oauth2.Endpoint, userInfoURL string) *GoogleProvider {
	client := utils.NewHTTPClient(cfg.RequestTimeout)

	return &GoogleProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Endpoint:     endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
		client:      client,
		userInfoURL: userInfoURL,
	}
}

func (g *GoogleProvider) AuthCodeURL(state string) string {
	return g.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (g *GoogleProvider) Exchange(ctx context.Context, code string) (models.ExternalIdentity, error) {
	log := logger.FromContext(ctx)

	// token endpoint calls share the resty transport and its timeout
	ctx = context.WithValue(ctx, oauth2.HTTPClient, g.client.GetClient())

	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "*GoogleProvider.Exchange").Msg("error exchanging authorization code")
		return models.ExternalIdentity{}, fmt.Errorf("%w: %w", ErrExchangeFailed, err)
	}

	var info googleUserInfo
	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(&info).
		Get(g.userInfoURL)
	if err != nil {
		log.Err(err).Str("func", "*GoogleProvider.Exchange").Msg("error fetching user info")
		return models.ExternalIdentity{}, fmt.Errorf("%w: %w", ErrBadGateway, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*GoogleProvider.Exchange").Int("status", resp.StatusCode()).Msg("user info request rejected")
		return models.ExternalIdentity{}, err
	}

	if info.Sub == "" || info.Email == "" || !info.EmailVerified {
		return models.ExternalIdentity{}, ErrIncompleteProfile
	}

	return models.ExternalIdentity{
		Subject:      info.Sub,
		Email:        info.Email,
		Name:         info.Name,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, nil
}

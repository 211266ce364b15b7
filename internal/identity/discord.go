// Package identity exchanges provider authorization codes for local
// profiles. The provider's own login UI is outside this system; only the
// code-for-profile exchange is modeled.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/velmoria/scriptstore/internal/config"
	"github.com/velmoria/scriptstore/pkg/clients"
	"go.uber.org/zap"
)

var ErrExchangeFailed = errors.New("identity exchange failed")

type Profile struct {
	ExternalID string
	Name       string
	Email      string
	Avatar     string
}

type Provider interface {
	Exchange(ctx context.Context, code string) (*Profile, error)
}

type DiscordClient struct {
	clientID     string
	clientSecret string
	redirectURI  string
	apiBase      string
	client       clients.HTTPClientI
}

func NewDiscordClient(cfg *config.Config, client clients.HTTPClientI) *DiscordClient {
	return &DiscordClient{
		clientID:     cfg.DiscordClientID,
		clientSecret: cfg.DiscordClientSecret,
		redirectURI:  cfg.DiscordRedirectURI,
		apiBase:      cfg.DiscordAPIBase,
		client:       client,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

func (c *DiscordClient) Exchange(ctx context.Context, code string) (*Profile, error) {
	form := url.Values{
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {c.redirectURI},
	}
	status, body, err := c.client.PostForm(c.apiBase+"/oauth2/token", form)
	if err != nil {
		zap.L().Error("token exchange request failed", zap.Error(err))
		return nil, err
	}
	if status != http.StatusOK {
		zap.L().Error("token exchange rejected", zap.Int("status", status))
		return nil, ErrExchangeFailed
	}
	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, err
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token.AccessToken)
	status, body, _, err = c.client.Get(c.apiBase+"/users/@me", headers)
	if err != nil {
		zap.L().Error("profile request failed", zap.Error(err))
		return nil, err
	}
	if status != http.StatusOK {
		zap.L().Error("profile request rejected", zap.Int("status", status))
		return nil, ErrExchangeFailed
	}
	var user userResponse
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, err
	}

	profile := &Profile{
		ExternalID: user.ID,
		Name:       user.Username,
		Email:      user.Email,
	}
	if user.Avatar != "" {
		profile.Avatar = fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.png", user.ID, user.Avatar)
	}
	return profile, nil
}

package replay

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/blackcoderx/reqmd/pkg/storage"
)

// applyAuth sets the Authorization header for the request's configured
// auth scheme. A nil auth block leaves the request untouched.
func applyAuth(ctx context.Context, req *http.Request, auth *storage.Auth) error {
	if auth == nil {
		return nil
	}

	switch auth.Kind {
	case "bearer":
		if auth.Token == "" {
			return fmt.Errorf("bearer auth requires a token")
		}
		req.Header.Set("Authorization", "Bearer "+auth.Token)
		return nil

	case "basic":
		if auth.Username == "" {
			return fmt.Errorf("basic auth requires a username")
		}
		credentials := base64.StdEncoding.EncodeToString([]byte(auth.Username + ":" + auth.Password))
		req.Header.Set("Authorization", "Basic "+credentials)
		return nil

	case "oauth2":
		token, err := fetchOAuth2Token(ctx, auth)
		if err != nil {
			return err
		}
		token.SetAuthHeader(req)
		return nil

	default:
		return fmt.Errorf("unknown auth kind %q (supported: bearer, basic, oauth2)", auth.Kind)
	}
}

// fetchOAuth2Token obtains a token from the configured token endpoint.
// A username selects the resource-owner password flow, otherwise the
// client_credentials flow runs.
func fetchOAuth2Token(ctx context.Context, auth *storage.Auth) (*oauth2.Token, error) {
	if auth.TokenURL == "" {
		return nil, fmt.Errorf("oauth2 auth requires a token_url")
	}
	if auth.ClientID == "" {
		return nil, fmt.Errorf("oauth2 auth requires a client_id")
	}

	if auth.Username != "" {
		config := oauth2.Config{
			ClientID:     auth.ClientID,
			ClientSecret: auth.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL: auth.TokenURL,
			},
			Scopes: auth.Scopes,
		}
		token, err := config.PasswordCredentialsToken(ctx, auth.Username, auth.Password)
		if err != nil {
			return nil, fmt.Errorf("OAuth2 password flow failed: %w", err)
		}
		return token, nil
	}

	config := clientcredentials.Config{
		ClientID:     auth.ClientID,
		ClientSecret: auth.ClientSecret,
		TokenURL:     auth.TokenURL,
		Scopes:       auth.Scopes,
	}
	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("OAuth2 client_credentials flow failed: %w", err)
	}
	return token, nil
}

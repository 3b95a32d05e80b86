// Package twitter публикует твиты от имени пользователя через API v2.
package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dghubble/oauth1"

	"pullRequests24/internal/config"
	"pullRequests24/internal/domain"
)

const tweetsPath = "/2/tweets"

// ClientFactory создаёт клиентов, подписанных ключами приложения и токенами пользователя
type ClientFactory struct {
	oauth   *oauth1.Config
	baseURL string
}

var _ domain.SocialClientFactory = (*ClientFactory)(nil)

func NewClientFactory(cfg config.Twitter) *ClientFactory {
	return &ClientFactory{
		oauth:   oauth1.NewConfig(cfg.ConsumerKey, cfg.ConsumerSecret),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// ForUser возвращает клиента для пары токенов пользователя
func (f *ClientFactory) ForUser(creds domain.SocialCredentials) domain.SocialPublisher {
	return &Client{
		oauth:   f.oauth,
		token:   oauth1.NewToken(creds.Token, creds.Secret),
		baseURL: f.baseURL,
	}
}

// Client публикует твиты одного пользователя
type Client struct {
	oauth   *oauth1.Config
	token   *oauth1.Token
	baseURL string
}

type tweetRequest struct {
	Text string `json:"text"`
}

// Publish отправляет твит; повторов нет
func (c *Client) Publish(ctx context.Context, message string) error {
	body, err := json.Marshal(tweetRequest{Text: message})
	if err != nil {
		return fmt.Errorf("encode tweet: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tweetsPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build tweet request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.oauth.Client(ctx, c.token).Do(req)
	if err != nil {
		return fmt.Errorf("post tweet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("post tweet: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	return nil
}

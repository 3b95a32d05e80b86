package github

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	gh "github.com/google/go-github/v73/github"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"pullRequests24/internal/config"
	"pullRequests24/internal/domain"
	"pullRequests24/internal/logger"
)

// IssueFetcher реализует domain.IssueFetcher поверх Issues API
type IssueFetcher struct {
	client *gh.Client
}

var _ domain.IssueFetcher = (*IssueFetcher)(nil)

// NewIssueFetcher создаёт клиента GitHub; без токена запросы идут анонимно
func NewIssueFetcher(ctx context.Context, cfg config.GitHub) (*IssueFetcher, error) {
	client := gh.NewClient(nil)
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		client = gh.NewClient(oauth2.NewClient(ctx, ts))
	}

	if cfg.BaseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(cfg.BaseURL, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("configure github base url: %w", err)
		}
	}

	return NewIssueFetcherWithClient(client), nil
}

// NewIssueFetcherWithClient оборачивает готовый go-github клиент
func NewIssueFetcherWithClient(client *gh.Client) *IssueFetcher {
	return &IssueFetcher{client: client}
}

// FetchIssueData возвращает количество комментариев и состояние PR по его html ссылке
func (f *IssueFetcher) FetchIssueData(ctx context.Context, issueURL string) (*domain.IssueData, error) {
	owner, repo, number, err := ParseIssueURL(issueURL)
	if err != nil {
		return nil, err
	}

	issue, _, err := f.client.Issues.Get(ctx, owner, repo, number)
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "github").
			Str("issue_url", issueURL).
			Msg("failed to fetch issue data")
		return nil, fmt.Errorf("get issue %s/%s#%d: %w", owner, repo, number, err)
	}

	return &domain.IssueData{
		CommentsCount: issue.GetComments(),
		State:         issue.GetState(),
	}, nil
}

// ParseIssueURL разбирает ссылку вида https://github.com/{owner}/{repo}/pull/{number}
// (или /issues/{number}) на составляющие.
func ParseIssueURL(issueURL string) (owner, repo string, number int, err error) {
	u, err := url.Parse(issueURL)
	if err != nil {
		return "", "", 0, fmt.Errorf("parse issue url %q: %w", issueURL, err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 4 || (parts[2] != "pull" && parts[2] != "issues") {
		return "", "", 0, fmt.Errorf("unexpected issue url %q", issueURL)
	}

	number, err = strconv.Atoi(parts[3])
	if err != nil || number <= 0 {
		return "", "", 0, fmt.Errorf("invalid pull request number in %q", issueURL)
	}

	return parts[0], parts[1], number, nil
}

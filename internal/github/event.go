// Package github переводит события и данные GitHub в доменные модели.
package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v73/github"

	"pullRequests24/internal/domain"
)

// pullRequestEvent - типизированная оболочка события GitHub Events API.
// Лишние поля игнорируются.
type pullRequestEvent struct {
	Payload *struct {
		PullRequest *gh.PullRequest `json:"pull_request"`
	} `json:"payload"`
	Repo *gh.Repository `json:"repo"`
}

// ParsePullRequestEvent разбирает сырое событие и собирает из него PR без владельца.
// Обязательны payload.pull_request с title, state, created_at, _links.html.href и repo.name.
func ParsePullRequestEvent(raw []byte) (*domain.PullRequest, error) {
	var event pullRequestEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, invalidPayload(fmt.Errorf("decode event: %w", err))
	}

	if event.Payload == nil || event.Payload.PullRequest == nil {
		return nil, invalidPayload(errors.New("payload.pull_request is missing"))
	}
	pr := event.Payload.PullRequest

	issueURL := pr.GetLinks().GetHTML().GetHRef()
	switch {
	case issueURL == "":
		return nil, invalidPayload(errors.New("payload.pull_request._links.html.href is missing"))
	case pr.Title == nil:
		return nil, invalidPayload(errors.New("payload.pull_request.title is missing"))
	case pr.State == nil:
		return nil, invalidPayload(errors.New("payload.pull_request.state is missing"))
	case pr.CreatedAt == nil:
		return nil, invalidPayload(errors.New("payload.pull_request.created_at is missing"))
	case event.Repo == nil || event.Repo.GetName() == "":
		return nil, invalidPayload(errors.New("repo.name is missing"))
	}

	return &domain.PullRequest{
		Title:     pr.GetTitle(),
		IssueURL:  issueURL,
		CreatedAt: pr.GetCreatedAt().Time,
		State:     pr.GetState(),
		Body:      pr.GetBody(),
		Merged:    pr.GetMerged(),
		RepoName:  event.Repo.GetName(),
		Language:  event.Repo.GetLanguage(),
		Gifts:     []domain.Gift{},
	}, nil
}

func invalidPayload(err error) error {
	return domain.WrapError(err, http.StatusBadRequest, domain.ErrorCodeInvalidPayload, domain.ErrInvalidPayload.Message)
}

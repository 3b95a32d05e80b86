package handlers

import (
	"pullRequests24/internal/api"
	"pullRequests24/internal/domain"
)

// mapPullRequestToAPI конвертирует domain.PullRequest в API response
func mapPullRequestToAPI(pr *domain.PullRequest) api.PullRequest {
	gifts := make([]api.Gift, 0, len(pr.Gifts))
	for _, g := range pr.Gifts {
		gifts = append(gifts, api.Gift{ID: g.ID, GiftedAt: g.GiftedAt})
	}

	return api.PullRequest{
		ID:            pr.ID,
		UserID:        pr.UserID,
		Title:         pr.Title,
		IssueURL:      pr.IssueURL,
		CreatedAt:     pr.CreatedAt,
		State:         pr.State,
		Body:          pr.Body,
		Merged:        pr.Merged,
		RepoName:      pr.RepoName,
		Language:      pr.Language,
		CommentsCount: pr.CommentsCount,
		Gifts:         gifts,
	}
}

func mapPullRequestsToAPI(prs []domain.PullRequest) []api.PullRequest {
	result := make([]api.PullRequest, 0, len(prs))
	for i := range prs {
		result = append(result, mapPullRequestToAPI(&prs[i]))
	}
	return result
}

// mapUserToAPI конвертирует domain.User в API response, токены наружу не отдаются
func mapUserToAPI(user *domain.User) api.User {
	return api.User{
		UserID:        user.UserID,
		Nickname:      user.Nickname,
		SocialAccount: user.HasSocialAccount(),
	}
}

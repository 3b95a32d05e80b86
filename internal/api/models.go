package api

import "time"

const (
	ErrCodeInternalError  = "INTERNAL_ERROR"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
)

// Error represents a standardized error structure
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error Error `json:"error"`
}

// PullRequest - представление PR в ответах API
type PullRequest struct {
	ID            int64     `json:"pull_request_id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	IssueURL      string    `json:"issue_url"`
	CreatedAt     time.Time `json:"created_at"`
	State         string    `json:"state"`
	Body          string    `json:"body"`
	Merged        bool      `json:"merged"`
	RepoName      string    `json:"repo_name"`
	Language      string    `json:"language"`
	CommentsCount *int      `json:"comments_count"`
	Gifts         []Gift    `json:"gifts"`
}

type Gift struct {
	ID       int64     `json:"gift_id"`
	GiftedAt time.Time `json:"gifted_at"`
}

// User - пользователь без токенов соцсети
type User struct {
	UserID        string `json:"user_id"`
	Nickname      string `json:"nickname"`
	SocialAccount bool   `json:"social_account"`
}

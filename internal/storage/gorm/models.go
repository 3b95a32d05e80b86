package gorm

import (
	"time"

	"pullRequests24/internal/domain"
)

// PullRequest - модель БД для pull request
type PullRequest struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID        string    `gorm:"column:user_id;not null"`
	Title         string    `gorm:"column:title;not null"`
	IssueURL      string    `gorm:"column:issue_url;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;autoCreateTime:false"`
	State         string    `gorm:"column:state;not null"`
	Body          string    `gorm:"column:body;not null;default:''"`
	Merged        bool      `gorm:"column:merged;not null;default:false"`
	RepoName      string    `gorm:"column:repo_name;not null"`
	Language      string    `gorm:"column:language;not null;default:''"`
	CommentsCount *int      `gorm:"column:comments_count"`
	Gifts         []Gift    `gorm:"foreignKey:PullRequestID;references:ID"`
}

func (PullRequest) TableName() string {
	return "pull_requests"
}

// User - модель БД для пользователя
type User struct {
	UserID        string `gorm:"column:user_id;primaryKey"`
	Nickname      string `gorm:"column:nickname;not null"`
	TwitterToken  string `gorm:"column:twitter_token;not null;default:''"`
	TwitterSecret string `gorm:"column:twitter_secret;not null;default:''"`
}

func (User) TableName() string {
	return "users"
}

// Gift - модель БД для подарка за PR
type Gift struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID        string    `gorm:"column:user_id;not null"`
	PullRequestID int64     `gorm:"column:pull_request_id;not null"`
	GiftedAt      time.Time `gorm:"column:gifted_at;not null"`
}

func (Gift) TableName() string {
	return "gifts"
}

func toDomainPullRequest(m *PullRequest) domain.PullRequest {
	pr := domain.PullRequest{
		ID:            m.ID,
		UserID:        m.UserID,
		Title:         m.Title,
		IssueURL:      m.IssueURL,
		CreatedAt:     m.CreatedAt,
		State:         m.State,
		Body:          m.Body,
		Merged:        m.Merged,
		RepoName:      m.RepoName,
		Language:      m.Language,
		CommentsCount: m.CommentsCount,
		Gifts:         make([]domain.Gift, 0, len(m.Gifts)),
	}
	for _, g := range m.Gifts {
		pr.Gifts = append(pr.Gifts, toDomainGift(&g))
	}
	return pr
}

func toDomainGift(m *Gift) domain.Gift {
	return domain.Gift{
		ID:            m.ID,
		UserID:        m.UserID,
		PullRequestID: m.PullRequestID,
		GiftedAt:      m.GiftedAt,
	}
}

func toDomainPullRequests(models []PullRequest) []domain.PullRequest {
	result := make([]domain.PullRequest, 0, len(models))
	for i := range models {
		result = append(result, toDomainPullRequest(&models[i]))
	}
	return result
}

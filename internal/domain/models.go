package domain

import (
	"strings"
	"time"
)

// RewardPhrase - фраза в описании PR, за которую выдаётся подарок
const RewardPhrase = "24 pull requests"

// PullRequest - domain модель pull request, полученного от GitHub
type PullRequest struct {
	ID       int64
	UserID   string
	Title    string
	IssueURL string // уникален в паре с UserID
	// CreatedAt берётся из события GitHub, а не из времени приёма
	CreatedAt time.Time
	State     string
	Body      string
	Merged    bool
	RepoName  string
	Language  string
	// CommentsCount пуст до первого CheckState
	CommentsCount *int
	Gifts         []Gift
}

// IssueData - данные о PR, которые отдаёт провайдер при обновлении состояния
type IssueData struct {
	CommentsCount int
	State         string
}

// Reconcile переносит в PR состояние и количество комментариев из данных провайдера.
// Возвращает true, если что-то изменилось.
func (pr *PullRequest) Reconcile(data IssueData) bool {
	changed := pr.State != data.State ||
		pr.CommentsCount == nil ||
		*pr.CommentsCount != data.CommentsCount

	pr.State = data.State
	count := data.CommentsCount
	pr.CommentsCount = &count

	return changed
}

// ContainsRewardPhrase проверяет правило выдачи подарка: точное вхождение фразы, с учётом регистра
func ContainsRewardPhrase(body string) bool {
	return strings.Contains(body, RewardPhrase)
}

// Gift - подарок, выданный за pull request
type Gift struct {
	ID            int64
	UserID        string
	PullRequestID int64
	GiftedAt      time.Time
}

// User - владелец pull request-ов
type User struct {
	UserID        string
	Nickname      string
	TwitterToken  string
	TwitterSecret string
}

// SocialCredentials - пара токенов привязанного аккаунта в соцсети
type SocialCredentials struct {
	Token  string
	Secret string
}

// HasSocialAccount - true, если привязаны и токен, и секрет
func (u *User) HasSocialAccount() bool {
	return u.TwitterToken != "" && u.TwitterSecret != ""
}

// SocialCredentials возвращает токены пользователя и признак их наличия
func (u *User) SocialCredentials() (SocialCredentials, bool) {
	if !u.HasSocialAccount() {
		return SocialCredentials{}, false
	}
	return SocialCredentials{Token: u.TwitterToken, Secret: u.TwitterSecret}, true
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsRewardPhrase(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{name: "phrase inside text", body: "happy 24 pull requests!", want: true},
		{name: "phrase glued to words", body: "xx24 pull requestsyy", want: true},
		{name: "no phrase", body: "...and a merry christmas!", want: false},
		{name: "different case", body: "24 Pull Requests", want: false},
		{name: "empty body", body: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsRewardPhrase(tt.body))
		})
	}
}

func TestPullRequestReconcile(t *testing.T) {
	pr := &PullRequest{ID: 1, Title: "Fix bug", State: "open", Body: "desc", Language: "Go"}

	changed := pr.Reconcile(IssueData{CommentsCount: 5, State: "closed"})

	assert.True(t, changed)
	assert.Equal(t, "closed", pr.State)
	if assert.NotNil(t, pr.CommentsCount) {
		assert.Equal(t, 5, *pr.CommentsCount)
	}
	assert.Equal(t, "Fix bug", pr.Title)
	assert.Equal(t, "desc", pr.Body)

	// Повторный вызов с теми же данными ничего не меняет
	assert.False(t, pr.Reconcile(IssueData{CommentsCount: 5, State: "closed"}))

	// Переход closed -> open принимается без проверок
	assert.True(t, pr.Reconcile(IssueData{CommentsCount: 5, State: "open"}))
	assert.Equal(t, "open", pr.State)
}

func TestUserSocialCredentials(t *testing.T) {
	linked := &User{UserID: "u1", TwitterToken: "foo", TwitterSecret: "bar"}
	creds, ok := linked.SocialCredentials()
	assert.True(t, ok)
	assert.Equal(t, SocialCredentials{Token: "foo", Secret: "bar"}, creds)

	for _, u := range []*User{
		{UserID: "u2"},
		{UserID: "u3", TwitterToken: "foo"},
		{UserID: "u4", TwitterSecret: "bar"},
	} {
		assert.False(t, u.HasSocialAccount(), u.UserID)
		_, ok := u.SocialCredentials()
		assert.False(t, ok, u.UserID)
	}
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrPRExists))
	assert.True(t, IsValidationError(WrapError(assert.AnError, 400, ErrorCodeInvalidPayload, "missing title")))
	assert.False(t, IsValidationError(ErrInternal))
	assert.False(t, IsValidationError(assert.AnError))
}

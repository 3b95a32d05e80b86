package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pullRequests24/internal/api/handlers"
	"pullRequests24/internal/domain"
	"pullRequests24/internal/mocks"
)

const (
	adminToken = "test-admin-token"
	userToken  = "test-user-token"
)

func setupTestRouter(mockService *mocks.PullRequestService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewHandler(mockService, adminToken, userToken)
	return handler.InitRoutes()
}

func doRequest(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateFromGithubHandler_Success(t *testing.T) {
	mockService := mocks.NewPullRequestService(t)
	router := setupTestRouter(mockService)

	owner := &domain.User{UserID: "user-1", Nickname: "octo"}
	event := map[string]any{"repo": map[string]any{"name": "proj"}}

	mockService.On("GetUser", mock.Anything, "user-1").Return(owner, nil).Once()
	mockService.On("CreateFromGithub", mock.Anything, owner, mock.MatchedBy(func(payload []byte) bool {
		return bytes.Contains(payload, []byte(`"proj"`))
	})).Return(&domain.PullRequest{
		ID:        1,
		UserID:    "user-1",
		Title:     "Fix bug",
		IssueURL:  "http://x/1",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		State:     "open",
		Gifts:     []domain.Gift{{ID: 3}},
	}, nil).Once()

	w := doRequest(router, http.MethodPost, "/pullRequest/github", adminToken, map[string]any{
		"user_id": "user-1",
		"event":   event,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		PR struct {
			ID       int64  `json:"pull_request_id"`
			IssueURL string `json:"issue_url"`
			Gifts    []struct {
				ID int64 `json:"gift_id"`
			} `json:"gifts"`
			CommentsCount *int `json:"comments_count"`
		} `json:"pr"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.PR.ID)
	assert.Equal(t, "http://x/1", resp.PR.IssueURL)
	assert.Len(t, resp.PR.Gifts, 1)
	assert.Nil(t, resp.PR.CommentsCount)
}

func TestCreateFromGithubHandler_Duplicate(t *testing.T) {
	mockService := mocks.NewPullRequestService(t)
	router := setupTestRouter(mockService)

	owner := &domain.User{UserID: "user-1"}
	mockService.On("GetUser", mock.Anything, "user-1").Return(owner, nil).Once()
	mockService.On("CreateFromGithub", mock.Anything, owner, mock.Anything).Return(nil, domain.ErrPRExists).Once()

	w := doRequest(router, http.MethodPost, "/pullRequest/github", adminToken, map[string]any{
		"user_id": "user-1",
		"event":   map[string]any{},
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PR_EXISTS")
}

func TestCreateFromGithubHandler_RequiresAdmin(t *testing.T) {
	mockService := mocks.NewPullRequestService(t)
	router := setupTestRouter(mockService)

	w := doRequest(router, http.MethodPost, "/pullRequest/github", userToken, map[string]any{"user_id": "user-1", "event": map[string]any{}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodPost, "/pullRequest/github", "wrong", map[string]any{"user_id": "user-1", "event": map[string]any{}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateFromGithubHandler_BadRequest(t *testing.T) {
	mockService := mocks.NewPullRequestService(t)
	router := setupTestRouter(mockService)

	w := doRequest(router, http.MethodPost, "/pullRequest/github", adminToken, map[string]any{"user_id": "user-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
}

func TestCheckStateHandler(t *testing.T) {
	mockService := mocks.NewPullRequestService(t)
	router := setupTestRouter(mockService)

	count := 5
	mockService.On("CheckState", mock.Anything, int64(7)).Return(&domain.PullRequest{
		ID:            7,
		State:         "closed",
		CommentsCount: &count,
	}, nil).Once()

	w := doRequest(router, http.MethodPost, "/pullRequest/checkState", adminToken, map[string]any{"pull_request_id": 7})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"closed"`)
	assert.Contains(t, w.Body.String(), `"comments_count":5`)
}

func TestCheckStateHandler_UpstreamError(t *testing.T) {
	mockService := mocks.NewPullRequestService(t)
	router := setupTestRouter(mockService)

	mockService.On("CheckState", mock.Anything, int64(7)).Return(nil, domain.ErrUpstream).Once()

	w := doRequest(router, http.MethodPost, "/pullRequest/checkState", adminToken, map[string]any{"pull_request_id": 7})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestByLanguageHandler(t *testing.T) {
	mockService := mocks.NewPullRequestService(t)
	router := setupTestRouter(mockService)

	mockService.On("ByLanguage", mock.Anything, "Haskell").Return([]domain.PullRequest{
		{ID: 1, Language: "Haskell"},
		{ID: 2, Language: "Haskell"},
	}, nil).Once()

	w := doRequest(router, http.MethodGet, "/pullRequest/byLanguage?language=Haskell", userToken, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		PullRequests []struct {
			ID int64 `json:"pull_request_id"`
		} `json:"pull_requests"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.PullRequests, 2)
}

func TestByLanguageHandler_MissingLanguage(t *testing.T) {
	mockService := mocks.NewPullRequestService(t)
	router := setupTestRouter(mockService)

	w := doRequest(router, http.MethodGet, "/pullRequest/byLanguage", userToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLatestHandler(t *testing.T) {
	mockService := mocks.NewPullRequestService(t)
	router := setupTestRouter(mockService)

	mockService.On("Latest", mock.Anything, 3).Return([]domain.PullRequest{{ID: 4}, {ID: 3}, {ID: 2}}, nil).Once()
	mockService.On("Latest", mock.Anything, 5).Return([]domain.PullRequest{}, nil).Once()

	w := doRequest(router, http.MethodGet, "/pullRequest/latest?limit=3", userToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/pullRequest/latest", userToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	for _, bad := range []string{"0", "-1", "abc", "101"} {
		w = doRequest(router, http.MethodGet, "/pullRequest/latest?limit="+bad, userToken, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}

func TestAddUserHandler(t *testing.T) {
	mockService := mocks.NewPullRequestService(t)
	router := setupTestRouter(mockService)

	mockService.On("UpsertUser", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.UserID == "user-1" && u.TwitterToken == "foo" && u.TwitterSecret == "bar"
	})).Return(&domain.User{UserID: "user-1", Nickname: "octo", TwitterToken: "foo", TwitterSecret: "bar"}, nil).Once()

	w := doRequest(router, http.MethodPost, "/users/add", adminToken, map[string]any{
		"user_id":        "user-1",
		"nickname":       "octo",
		"twitter_token":  "foo",
		"twitter_secret": "bar",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"social_account":true`)
	assert.NotContains(t, w.Body.String(), "bar")
}

func TestGetUserPullRequestsHandler(t *testing.T) {
	mockService := mocks.NewPullRequestService(t)
	router := setupTestRouter(mockService)

	mockService.On("ListUserPullRequests", mock.Anything, "ghost").Return(nil, domain.ErrResourceNotFound).Once()

	w := doRequest(router, http.MethodGet, "/users/getPullRequests?user_id=ghost", userToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, "/users/getPullRequests", userToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupTestRouter(mocks.NewPullRequestService(t))

	w := doRequest(router, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pullRequests24/internal/api/middleware"
	"pullRequests24/internal/domain"
)

const (
	UserPathRoute            = "/users"
	AddUserRoute             = "/add"
	GetUserPullRequestsRoute = "/getPullRequests"

	PullRequestPathRoute = "/pullRequest"
	GithubEventRoute     = "/github"
	CheckStateRoute      = "/checkState"
	ByLanguageRoute      = "/byLanguage"
	LatestRoute          = "/latest"

	MetricsRoute = "/metrics"
)

type Handler struct {
	service    domain.PullRequestService
	adminToken string
	userToken  string
}

func NewHandler(service domain.PullRequestService, adminToken, userToken string) *Handler {
	return &Handler{
		service:    service,
		adminToken: adminToken,
		userToken:  userToken,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.LoggerMiddleware(),
		middleware.RecoveryMiddleware(),
		middleware.AuthMiddleware(h.adminToken, h.userToken),
	)

	r.GET(MetricsRoute, gin.WrapH(promhttp.Handler()))

	userGroup := r.Group(UserPathRoute)
	{
		userGroup.POST(AddUserRoute, middleware.RequireAdmin(), h.AddUser)
		userGroup.GET(GetUserPullRequestsRoute, middleware.RequireUser(), h.GetUserPullRequests)
	}

	prGroup := r.Group(PullRequestPathRoute)
	{
		prGroup.POST(GithubEventRoute, middleware.RequireAdmin(), h.CreateFromGithub)
		prGroup.POST(CheckStateRoute, middleware.RequireAdmin(), h.CheckState)
		prGroup.GET(ByLanguageRoute, middleware.RequireUser(), h.ByLanguage)
		prGroup.GET(LatestRoute, middleware.RequireUser(), h.Latest)
	}

	return r
}

package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"pullRequests24/internal/domain"
	"pullRequests24/internal/logger"
	"pullRequests24/internal/message"
	"pullRequests24/internal/metrics"
	"pullRequests24/internal/storage"
)

// NotificationHook публикует сообщение о новом PR в привязанный аккаунт владельца.
// Ошибки публикации только логируются: запись уже сохранена.
type NotificationHook struct {
	social    domain.SocialClientFactory
	formatter domain.MessageFormatter
}

var (
	_ domain.PostCreateHook = (*NotificationHook)(nil)
	_ TxHook                = (*RewardHook)(nil)
)

func NewNotificationHook(social domain.SocialClientFactory, formatter domain.MessageFormatter) *NotificationHook {
	return &NotificationHook{social: social, formatter: formatter}
}

func (h *NotificationHook) Name() string { return "notification" }

func (h *NotificationHook) AfterCreate(ctx context.Context, owner *domain.User, pr *domain.PullRequest) error {
	creds, ok := owner.SocialCredentials()
	if !ok {
		metrics.NotificationsTotal.WithLabelValues("skipped").Inc()
		return nil
	}

	msg, err := h.formatter.Format(message.TwitterMessageKey, map[string]any{"issue_url": pr.IssueURL})
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		log.Error().
			Err(err).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "service").
			Int64("pull_request_id", pr.ID).
			Msg("failed to format notification message")
		return nil
	}

	if err := h.social.ForUser(creds).Publish(ctx, msg); err != nil {
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		log.Warn().
			Err(err).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "service").
			Str("user_id", owner.UserID).
			Int64("pull_request_id", pr.ID).
			Msg("failed to publish notification")
		return nil
	}

	metrics.NotificationsTotal.WithLabelValues("sent").Inc()
	return nil
}

// RewardHook выдаёт один подарок, если в описании PR есть domain.RewardPhrase.
// Работает в транзакции создания: PR без положенного подарка не сохраняется.
type RewardHook struct{}

func NewRewardHook() *RewardHook {
	return &RewardHook{}
}

func (h *RewardHook) Name() string { return "reward" }

func (h *RewardHook) InCreateTx(ctx context.Context, tx storage.Tx, owner *domain.User, pr *domain.PullRequest) error {
	if !domain.ContainsRewardPhrase(pr.Body) {
		return nil
	}

	gift := &domain.Gift{
		UserID:        owner.UserID,
		PullRequestID: pr.ID,
	}
	if err := tx.GiftRepo().Create(ctx, gift); err != nil {
		return err
	}

	pr.Gifts = append(pr.Gifts, *gift)

	log.Info().
		Str("request_id", logger.GetRequestID(ctx)).
		Str("layer", "service").
		Int64("pull_request_id", pr.ID).
		Int64("gift_id", gift.ID).
		Msg("gift issued for pull request")

	return nil
}

// DefaultHooks - подарок выдаётся вместе с созданием записи, уведомление уходит после фиксации
func DefaultHooks(social domain.SocialClientFactory, formatter domain.MessageFormatter) Hooks {
	return Hooks{
		InTx:        []TxHook{NewRewardHook()},
		AfterCommit: []domain.PostCreateHook{NewNotificationHook(social, formatter)},
	}
}

package notifier

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/frontandrew/motofleet/internal/domain"
)

// SlackDispatcher poste la notification sur un webhook entrant Slack
type SlackDispatcher struct {
	webhookURL string
	post       func(ctx context.Context, url string, msg *slack.WebhookMessage) error
}

func NewSlackDispatcher(webhookURL string) *SlackDispatcher {
	return &SlackDispatcher{webhookURL: webhookURL, post: slack.PostWebhookContext}
}

func (d *SlackDispatcher) Dispatch(ctx context.Context, n *domain.Notification) error {
	if err := d.post(ctx, d.webhookURL, webhookMessage(n)); err != nil {
		return fmt.Errorf("failed to post notification %d to slack: %w", n.ID(), err)
	}
	return nil
}

func webhookMessage(n *domain.Notification) *slack.WebhookMessage {
	title := "Rappel d'entretien"
	if n.Piece() != nil {
		title = "Alerte stock"
	}
	return &slack.WebhookMessage{
		Text: n.Message(),
		Attachments: []slack.Attachment{{
			Title: title,
			Fields: []slack.AttachmentField{
				{Title: "Destinataire", Value: n.Client().Nom(), Short: true},
				{Title: "Date", Value: n.DateNotification().Format("2006-01-02 15:04"), Short: true},
			},
		}},
	}
}

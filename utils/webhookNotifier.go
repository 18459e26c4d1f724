package utils

import (
	"lms/config"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// ProgressEvent is the payload posted to the configured event webhook
type ProgressEvent struct {
	Event       string    `json:"event"` // course_completed, achievement_earned
	UserID      uint      `json:"user_id"`
	CourseID    uint      `json:"course_id"`
	Achievement string    `json:"achievement,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventNotifier posts progress events to an external webhook when one is
// configured. Callers fire it from a goroutine; failures are logged, never
// surfaced to the client.
type EventNotifier struct {
	cfg    *config.Config
	client *resty.Client
}

func NewEventNotifier(cfg *config.Config) *EventNotifier {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2)

	return &EventNotifier{cfg: cfg, client: client}
}

// Publish sends one event to the webhook URL. No-op when unconfigured.
func (n *EventNotifier) Publish(event ProgressEvent) {
	if n.cfg.EventWebhookURL == "" {
		return
	}

	resp, err := n.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post(n.cfg.EventWebhookURL)

	if err != nil {
		log.Printf("[EVENT-WEBHOOK] Error posting %s event: %v", event.Event, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("[EVENT-WEBHOOK] Webhook returned %d for %s event", resp.StatusCode(), event.Event)
	}
}

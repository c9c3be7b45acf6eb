package ports

import (
	"context"
	"time"
)

// NotificationAudience identifies who a notification is addressed to.
type NotificationAudience string

const (
	AudienceCustomer NotificationAudience = "customer"
	AudienceKitchen  NotificationAudience = "kitchen"
)

// NotificationKind classifies a notification for routing and rendering.
type NotificationKind string

const (
	NotificationOrderReceived   NotificationKind = "order_received"
	NotificationStatusChange    NotificationKind = "status_change"
	NotificationPaymentCaptured NotificationKind = "payment_captured"
	NotificationStalePending    NotificationKind = "stale_pending"
)

// Notification is the message delivered to a customer or kitchen.
type Notification struct {
	TargetID   string               `json:"target_id"`
	Audience   NotificationAudience `json:"audience"`
	Kind       NotificationKind     `json:"kind"`
	Title      string               `json:"title"`
	Message    string               `json:"message"`
	OccurredAt time.Time            `json:"occurred_at"`
}

// NotificationPublisher delivers notifications to external channels.
// Delivery is fire-and-forget: a failed publish is logged by the caller and
// must never roll back the state change that produced it.
type NotificationPublisher interface {
	Notify(ctx context.Context, notification Notification) error
}

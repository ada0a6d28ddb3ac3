package models

import (
	"time"
)

// Subscription mirrors the authoritative Stripe subscription state for a
// user. At most one row per (user_id, stripe_customer_id); the composite
// unique index backs the ON CONFLICT upsert in the confirm path so two
// concurrent confirmations cannot produce two rows.
type Subscription struct {
	ID                   string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID               string    `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_user_customer"`
	StripeCustomerId     string    `json:"stripeCustomerId" gorm:"not null;uniqueIndex:idx_subscriptions_user_customer"`
	StripeSubscriptionId string    `json:"stripeSubscriptionId"`
	PlanID               string    `json:"planId"`
	Status               string    `json:"status"`
	CurrentPeriodStart   time.Time `json:"currentPeriodStart"`
	CurrentPeriodEnd     time.Time `json:"currentPeriodEnd"`
	CancelAtPeriodEnd    bool      `json:"cancelAtPeriodEnd"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// SubscriptionMutableColumns are the fields a repeat confirmation may
// rewrite; user_id and stripe_customer_id are immutable once set.
var SubscriptionMutableColumns = []string{
	"stripe_subscription_id",
	"plan_id",
	"status",
	"current_period_start",
	"current_period_end",
	"cancel_at_period_end",
	"updated_at",
}

package entity

import "time"

// NewsletterSubscription is one email address signed up for the newsletter.
type NewsletterSubscription struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

type NewsletterInput struct {
	Email string `json:"email" validate:"required"`
}

func NewNewsletterSubscription(id string, in *NewsletterInput, now time.Time) *NewsletterSubscription {
	return &NewsletterSubscription{
		ID:        id,
		Email:     in.Email,
		CreatedAt: FormatTimestamp(now),
	}
}

// SubscribeResult reports whether the address was already on the list.
type SubscribeResult struct {
	Message      string                  `json:"message"`
	Exists       bool                    `json:"exists"`
	Subscription *NewsletterSubscription `json:"subscription,omitempty"`
}

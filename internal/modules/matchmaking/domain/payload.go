package domain

import "time"

// RequestLike directional like action payload
type RequestLike struct {
	UserEmail       string `json:"user_email" validate:"required,email"`
	ResearcherEmail string `json:"researcher_email" validate:"required,email"`
	ResearcherName  string `json:"researcher_name" validate:"required"`
}

// DeliveryResult per-recipient notification outcome
type DeliveryResult struct {
	Recipient string `json:"recipient"`
	Delivered bool   `json:"delivered"`
	Error     string `json:"error,omitempty"`
}

// ResponseLike outcome of one recordLike invocation
type ResponseLike struct {
	Matched         bool             `json:"matched"`
	Deliveries      []DeliveryResult `json:"deliveries,omitempty"`
	PartialDelivery bool             `json:"partial_delivery,omitempty"`
}

// MatchEvent emitted once per detected match
type MatchEvent struct {
	UserEmail       string    `json:"user_email"`
	ResearcherEmail string    `json:"researcher_email"`
	ResearcherName  string    `json:"researcher_name"`
	CorrelationID   string    `json:"correlation_id"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// ResponseLikes current like-set of one researcher
type ResponseLikes struct {
	ResearcherEmail string   `json:"researcher_email"`
	Likes           []string `json:"likes"`
}

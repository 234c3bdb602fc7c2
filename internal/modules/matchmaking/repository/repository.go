package repository

import "context"

// LikeRegistry per-researcher like-set storage.
// CheckAndAdd must be atomic with respect to concurrent calls for the same researcher,
// two concurrent first-likes may not be lost or both reported as already present.
type LikeRegistry interface {
	// CheckAndAdd report whether the user already liked the researcher, recording the like when not
	CheckAndAdd(ctx context.Context, researcherEmail, userEmail string) (alreadyLiked bool, err error)
	// Likes list current members of the researcher's like-set
	Likes(ctx context.Context, researcherEmail string) ([]string, error)
}

// MatchNotifier delivery of a match notification to a single recipient
type MatchNotifier interface {
	Notify(ctx context.Context, recipient, counterpart string) error
}

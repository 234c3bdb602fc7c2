package repository

import (
	"context"
	"sync"
)

type likeRegistryInMem struct {
	mu    sync.Mutex
	likes map[string]map[string]struct{}
}

// NewLikeRegistryInMem process-local registry, state is lost on restart
func NewLikeRegistryInMem() LikeRegistry {
	return &likeRegistryInMem{
		likes: make(map[string]map[string]struct{}),
	}
}

func (r *likeRegistryInMem) CheckAndAdd(ctx context.Context, researcherEmail, userEmail string) (alreadyLiked bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.likes[researcherEmail]
	if !ok {
		set = make(map[string]struct{})
		r.likes[researcherEmail] = set
	}

	if _, alreadyLiked = set[userEmail]; !alreadyLiked {
		set[userEmail] = struct{}{}
	}
	return alreadyLiked, nil
}

func (r *likeRegistryInMem) Likes(ctx context.Context, researcherEmail string) (users []string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for user := range r.likes[researcherEmail] {
		users = append(users, user)
	}
	return users, nil
}

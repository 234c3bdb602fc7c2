package domain

import "github.com/golangid/candi/candishared"

// FilterResearcher model
type FilterResearcher struct {
	candishared.Filter
	ID           *int64 `json:"-"`
	Organization string `json:"organization,omitempty"`
	Title        string `json:"title,omitempty"`
	MinAge       *int   `json:"min_age,omitempty"`
	MaxAge       *int   `json:"max_age,omitempty"`
}

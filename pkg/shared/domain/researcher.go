package domain

import "time"

// Researcher model of researchers table
type Researcher struct {
	ID                  int64     `json:"id"`
	GoogleScholarLink   *string   `json:"google_scholar_link"`
	PersonalWebsiteLink *string   `json:"personal_website_link"`
	Organization        *string   `json:"organization"`
	Title               string    `json:"title"`
	Age                 int       `json:"age"`
	Sex                 string    `json:"sex"`
	CreatedAt           time.Time `json:"created_at"`
	ModifiedAt          time.Time `json:"modified_at"`
}

// HasScholarLink report whether a scholar profile link is set
func (r *Researcher) HasScholarLink() bool {
	return r.GoogleScholarLink != nil && *r.GoogleScholarLink != ""
}

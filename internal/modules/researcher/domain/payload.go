package domain

import (
	"time"

	shareddomain "github.com/lukeintheclouds/researcher-composite/pkg/shared/domain"
)

// RequestResearcher model, full payload for create and replace
type RequestResearcher struct {
	ID                  int64   `json:"-"`
	GoogleScholarLink   *string `json:"google_scholar_link" validate:"omitempty,url"`
	PersonalWebsiteLink *string `json:"personal_website_link" validate:"omitempty,url"`
	Organization        *string `json:"organization"`
	Title               string  `json:"title" validate:"required"`
	Age                 int     `json:"age" validate:"required,gte=0"`
	Sex                 string  `json:"sex" validate:"required,oneof=male female other"`
}

// Deserialize to db model, absent optional fields stay nil so a replace clears them
func (r *RequestResearcher) Deserialize() (res shareddomain.Researcher) {
	res.ID = r.ID
	res.GoogleScholarLink = r.GoogleScholarLink
	res.PersonalWebsiteLink = r.PersonalWebsiteLink
	res.Organization = r.Organization
	res.Title = r.Title
	res.Age = r.Age
	res.Sex = r.Sex
	return
}

// RequestResearcherPatch model, partial update payload, only supplied fields are merged
type RequestResearcherPatch struct {
	GoogleScholarLink   *string `json:"google_scholar_link" validate:"omitempty,url"`
	PersonalWebsiteLink *string `json:"personal_website_link" validate:"omitempty,url"`
	Organization        *string `json:"organization"`
	Title               *string `json:"title" validate:"omitempty,min=1"`
	Age                 *int    `json:"age" validate:"omitempty,gte=0"`
	Sex                 *string `json:"sex" validate:"omitempty,oneof=male female other"`
}

// Apply merge supplied fields onto the stored record
func (r *RequestResearcherPatch) Apply(data *shareddomain.Researcher) {
	if r.GoogleScholarLink != nil {
		data.GoogleScholarLink = r.GoogleScholarLink
	}
	if r.PersonalWebsiteLink != nil {
		data.PersonalWebsiteLink = r.PersonalWebsiteLink
	}
	if r.Organization != nil {
		data.Organization = r.Organization
	}
	if r.Title != nil {
		data.Title = *r.Title
	}
	if r.Age != nil {
		data.Age = *r.Age
	}
	if r.Sex != nil {
		data.Sex = *r.Sex
	}
}

// ResponseResearcher model
type ResponseResearcher struct {
	ID                  int64   `json:"id"`
	GoogleScholarLink   *string `json:"google_scholar_link"`
	PersonalWebsiteLink *string `json:"personal_website_link"`
	Organization        *string `json:"organization"`
	Title               string  `json:"title"`
	Age                 int     `json:"age"`
	Sex                 string  `json:"sex"`
	CreatedAt           string  `json:"created_at"`
	ModifiedAt          string  `json:"modified_at"`
}

// Serialize from db model
func (r *ResponseResearcher) Serialize(source *shareddomain.Researcher) {
	r.ID = source.ID
	r.GoogleScholarLink = source.GoogleScholarLink
	r.PersonalWebsiteLink = source.PersonalWebsiteLink
	r.Organization = source.Organization
	r.Title = source.Title
	r.Age = source.Age
	r.Sex = source.Sex
	r.CreatedAt = source.CreatedAt.Format(time.RFC3339)
	r.ModifiedAt = source.ModifiedAt.Format(time.RFC3339)
}

// DeferredResearcherMessage queue payload for deferred creation
type DeferredResearcherMessage struct {
	CorrelationID string            `json:"correlation_id"`
	Payload       RequestResearcher `json:"payload"`
}

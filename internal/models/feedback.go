// internal/models/feedback.go
package models

import "time"

// Feedback is a site survey submission. Star ratings are 1-5, the
// recommendation score 1-10.
type Feedback struct {
	Reference           string    `json:"reference"`
	VisitReason         string    `json:"visit_reason"`
	OverallExperience   int       `json:"overall_experience"`
	WebsiteEase         int       `json:"website_ease"`
	ProductSelection    int       `json:"product_selection"`
	CheckoutProcess     int       `json:"checkout_process,omitempty"`
	MostUsefulFeature   string    `json:"most_useful_feature,omitempty"`
	Improvements        string    `json:"improvements,omitempty"`
	RecommendLikelihood int       `json:"recommend_likelihood"`
	Email               string    `json:"email,omitempty"`
	AllowContact        bool      `json:"allow_contact"`
	AdditionalComments  string    `json:"additional_comments,omitempty"`
	SubmittedAt         time.Time `json:"submitted_at"`
}

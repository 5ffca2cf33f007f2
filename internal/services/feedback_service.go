// internal/services/feedback_service.go
package services

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/cleantheory-backend/internal/models"
	"github.com/javajoker/cleantheory-backend/internal/utils"
)

const DefaultFeedbackDelay = 1500 * time.Millisecond

// VisitReasons and UsefulFeatures are the answers the survey offers.
var (
	VisitReasons = []string{
		"Looking for specific skincare products",
		"Browsing for new products to try",
		"Researching ingredients and reviews",
		"Making a purchase I had planned",
		"Recommended by someone",
		"Found through search/social media",
	}
	UsefulFeatures = []string{
		"Product search and filters",
		"Detailed product information",
		"Customer reviews and ratings",
		"Shopping cart and checkout",
		"Category organization",
		"Sale and discount information",
	}
)

type FeedbackService struct {
	delay         time.Duration
	notifications *NotificationService
	now           func() time.Time
}

type FeedbackRequest struct {
	VisitReason         string `json:"visit_reason" validate:"required"`
	OverallExperience   int    `json:"overall_experience" validate:"required,gte=1,lte=5"`
	WebsiteEase         int    `json:"website_ease" validate:"required,gte=1,lte=5"`
	ProductSelection    int    `json:"product_selection" validate:"required,gte=1,lte=5"`
	CheckoutProcess     int    `json:"checkout_process,omitempty" validate:"omitempty,gte=1,lte=5"`
	MostUsefulFeature   string `json:"most_useful_feature,omitempty" validate:"omitempty,max=255"`
	Improvements        string `json:"improvements,omitempty" validate:"omitempty,max=2000"`
	RecommendLikelihood int    `json:"recommend_likelihood" validate:"required,gte=1,lte=10"`
	Email               string `json:"email,omitempty" validate:"omitempty,email"`
	AllowContact        bool   `json:"allow_contact"`
	AdditionalComments  string `json:"additional_comments,omitempty" validate:"omitempty,max=2000"`
}

// CheckChoices reports answers that are not among the offered choices.
func (r *FeedbackRequest) CheckChoices() []utils.ValidationError {
	var errs []utils.ValidationError
	if !slices.Contains(VisitReasons, strings.TrimSpace(r.VisitReason)) {
		errs = append(errs, utils.ValidationError{
			Field:   "visit_reason",
			Tag:     "oneof",
			Message: "visit_reason must be one of the offered reasons",
		})
	}
	if feature := strings.TrimSpace(r.MostUsefulFeature); feature != "" && !slices.Contains(UsefulFeatures, feature) {
		errs = append(errs, utils.ValidationError{
			Field:   "most_useful_feature",
			Tag:     "oneof",
			Message: "most_useful_feature must be one of the offered features",
		})
	}
	return errs
}

func NewFeedbackService(delay time.Duration, notifications *NotificationService) *FeedbackService {
	return &FeedbackService{
		delay:         delay,
		notifications: notifications,
		now:           time.Now,
	}
}

// SubmitFeedback records a survey response after the simulated submission
// delay. Nothing is persisted; the submission is logged.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, req *FeedbackRequest) (*models.Feedback, error) {
	if err := sleep(ctx, s.delay); err != nil {
		return nil, err
	}

	feedback := &models.Feedback{
		Reference:           uuid.NewString(),
		VisitReason:         strings.TrimSpace(req.VisitReason),
		OverallExperience:   req.OverallExperience,
		WebsiteEase:         req.WebsiteEase,
		ProductSelection:    req.ProductSelection,
		CheckoutProcess:     req.CheckoutProcess,
		MostUsefulFeature:   strings.TrimSpace(req.MostUsefulFeature),
		Improvements:        strings.TrimSpace(req.Improvements),
		RecommendLikelihood: req.RecommendLikelihood,
		Email:               strings.TrimSpace(req.Email),
		AllowContact:        req.AllowContact,
		AdditionalComments:  strings.TrimSpace(req.AdditionalComments),
		SubmittedAt:         s.now(),
	}

	logrus.WithFields(logrus.Fields{
		"reference":            feedback.Reference,
		"visit_reason":         feedback.VisitReason,
		"overall_experience":   feedback.OverallExperience,
		"recommend_likelihood": feedback.RecommendLikelihood,
		"allow_contact":        feedback.AllowContact,
	}).Info("Feedback received")

	if s.notifications != nil {
		if err := s.notifications.SendFeedbackReceipt(feedback); err != nil {
			logrus.WithError(err).WithField("reference", feedback.Reference).Warn("Failed to send feedback receipt")
		}
	}

	return feedback, nil
}

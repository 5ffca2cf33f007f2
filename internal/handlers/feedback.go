// internal/handlers/feedback.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/cleantheory-backend/internal/services"
	"github.com/javajoker/cleantheory-backend/internal/utils"
)

type FeedbackHandler struct {
	feedbackService *services.FeedbackService
}

func NewFeedbackHandler(feedbackService *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// GET /feedback/options
func (h *FeedbackHandler) GetOptions(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"visit_reasons":   services.VisitReasons,
		"useful_features": services.UsefulFeatures,
	})
}

// POST /feedback
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req services.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req))
	validationErrors = append(validationErrors, req.CheckChoices()...)
	if len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	feedback, err := h.feedbackService.SubmitFeedback(c.Request.Context(), &req)
	if err != nil {
		utils.InternalErrorResponse(c, "Feedback could not be submitted")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":   "Thank you for your feedback",
		"reference": feedback.Reference,
	})
}

package handlers

import (
	"net/http"

	"karoo/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler logs review submissions and forwards the visitor to the
// public review profile. Reviews are not stored here.
type ReviewHandler struct {
	RedirectURL string
	Logger      *zap.Logger
}

// NewReviewHandler creates a new ReviewHandler instance.
func NewReviewHandler(redirectURL string, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{RedirectURL: redirectURL, Logger: logger}
}

// SubmitReview accepts a review form, logs it and redirects.
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBind(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review submission", "details": err.Error()})
		return
	}

	h.Logger.Info("Review received",
		zap.String("author", review.Author),
		zap.String("email", review.Email),
		zap.String("tourId", review.TourID),
		zap.String("quality", review.QualityRating),
		zap.String("price", review.PriceRating),
		zap.String("service", review.ServiceRating),
		zap.String("comment", review.Comment))

	c.Redirect(http.StatusFound, h.RedirectURL)
}

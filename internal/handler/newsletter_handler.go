package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jstamb/california-breaking-news/internal/middleware"
	"github.com/jstamb/california-breaking-news/internal/service"
	"github.com/jstamb/california-breaking-news/internal/validator"
)

// NewsletterHandler handles newsletter-related HTTP requests. Verify and
// unsubscribe links land in email clients, so those endpoints answer with
// redirects back to the site rather than JSON.
type NewsletterHandler struct {
	newsletterService service.NewsletterServiceInterface
	validator         *validator.Validator
	siteURL           string
	digestPostLimit   int
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(newsletterService service.NewsletterServiceInterface, v *validator.Validator, siteURL string, digestPostLimit int) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
		validator:         v,
		siteURL:           strings.TrimRight(siteURL, "/"),
		digestPostLimit:   digestPostLimit,
	}
}

// SubscribeRequest is the payload for a subscribe request.
type SubscribeRequest struct {
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// Subscribe handles POST /api/v1/newsletter/subscribe
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validator.ValidateSubscribeEmail(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.newsletterService.Subscribe(c.Request.Context(), req.Email, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, service.ErrAlreadySubscribed) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[request_id=%s] Failed to subscribe: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process subscription"})
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"message": result.Message})
}

// Verify handles GET /api/v1/newsletter/verify/:token
func (h *NewsletterHandler) Verify(c *gin.Context) {
	token := c.Param("token")

	status, err := h.newsletterService.Verify(c.Request.Context(), token)
	if err != nil {
		log.Printf("[request_id=%s] Failed to verify token: %v", middleware.GetRequestID(c), err)
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/?error=verification-failed", h.siteURL))
		return
	}

	switch status {
	case service.VerifyOK:
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/?subscribed=true", h.siteURL))
	case service.VerifyAlreadyVerified:
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/?subscribed=true&message=already-verified", h.siteURL))
	default:
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/?error=invalid-token", h.siteURL))
	}
}

// Unsubscribe handles GET /api/v1/newsletter/unsubscribe/:token
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	token := c.Param("token")

	found, err := h.newsletterService.Unsubscribe(c.Request.Context(), token)
	if err != nil {
		log.Printf("[request_id=%s] Failed to unsubscribe: %v", middleware.GetRequestID(c), err)
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/?error=unsubscribe-failed", h.siteURL))
		return
	}
	if !found {
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/?error=invalid-token", h.siteURL))
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("%s/?unsubscribed=true", h.siteURL))
}

// SendDigestRequest is the payload for triggering a digest run.
type SendDigestRequest struct {
	Limit *int `json:"limit"`
}

// SendDigest handles POST /api/v1/newsletter/send-digest
func (h *NewsletterHandler) SendDigest(c *gin.Context) {
	var req SendDigestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	limit := h.digestPostLimit
	if req.Limit != nil && *req.Limit > 0 {
		limit = *req.Limit
	}

	result, err := h.newsletterService.SendDigest(c.Request.Context(), limit)
	if err != nil {
		log.Printf("[request_id=%s] Failed to send digest: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send digest"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Stats handles GET /api/v1/newsletter/stats
func (h *NewsletterHandler) Stats(c *gin.Context) {
	stats, err := h.newsletterService.Stats(c.Request.Context())
	if err != nil {
		log.Printf("[request_id=%s] Failed to load newsletter stats: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

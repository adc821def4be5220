package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jstamb/california-breaking-news/internal/domain"
	"github.com/jstamb/california-breaking-news/internal/middleware"
	"github.com/jstamb/california-breaking-news/internal/service"
	"github.com/jstamb/california-breaking-news/internal/validator"
)

// ContactHandler handles contact-form submissions.
type ContactHandler struct {
	contactService service.ContactServiceInterface
	validator      *validator.Validator
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService service.ContactServiceInterface, v *validator.Validator) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validator:      v,
	}
}

// Submit handles POST /api/v1/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var msg domain.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validator.ValidateContactMessage(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contactService.Submit(c.Request.Context(), msg); err != nil {
		log.Printf("[request_id=%s] Failed to relay contact message: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Thank you for your message. We'll get back to you soon."})
}

package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jstamb/california-breaking-news/internal/domain"
	"github.com/jstamb/california-breaking-news/internal/middleware"
	"github.com/jstamb/california-breaking-news/internal/service"
	"github.com/jstamb/california-breaking-news/internal/similarity"
	"github.com/jstamb/california-breaking-news/internal/validator"
)

// PostHandler handles article-related HTTP requests.
type PostHandler struct {
	postService service.PostServiceInterface
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService service.PostServiceInterface) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// PostResponse represents a post in the API response.
type PostResponse struct {
	ID              string   `json:"id"`
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	Excerpt         string   `json:"excerpt"`
	Content         string   `json:"content,omitempty"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags,omitempty"`
	Author          string   `json:"author"`
	FeaturedImage   *string  `json:"featured_image,omitempty"`
	ImageAlt        *string  `json:"image_alt,omitempty"`
	IsBreaking      bool     `json:"is_breaking"`
	IsPublished     bool     `json:"is_published"`
	MetaTitle       string   `json:"meta_title,omitempty"`
	MetaDescription string   `json:"meta_description,omitempty"`
	ViewCount       int      `json:"view_count"`
	PublishedAt     string   `json:"published_at"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// toPostResponse converts a domain.Post to a PostResponse. includeContent
// controls whether the full body is serialized; listings omit it.
func toPostResponse(post *domain.Post, includeContent bool) PostResponse {
	response := PostResponse{
		ID:              post.ID,
		Slug:            post.Slug,
		Title:           post.Title,
		Excerpt:         post.Excerpt,
		Category:        post.Category,
		Tags:            post.Tags,
		Author:          post.Author,
		FeaturedImage:   post.FeaturedImage,
		ImageAlt:        post.ImageAlt,
		IsBreaking:      post.IsBreaking,
		IsPublished:     post.IsPublished,
		MetaTitle:       post.MetaTitle,
		MetaDescription: post.MetaDescription,
		ViewCount:       post.ViewCount,
		PublishedAt:     post.PublishedAt.Format(TimeFormat),
		CreatedAt:       post.CreatedAt.Format(TimeFormat),
		UpdatedAt:       post.UpdatedAt.Format(TimeFormat),
	}
	if includeContent {
		response.Content = post.Content
	}
	return response
}

// PostListResponse is a paginated page of posts.
type PostListResponse struct {
	Posts      []PostResponse `json:"posts"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

// ListPosts handles GET /api/v1/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	filter := domain.PostFilter{
		Category: c.Query("category"),
	}

	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "0")); err == nil {
		filter.Limit = limit
	}
	if raw := c.Query("isBreaking"); raw != "" {
		isBreaking, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "isBreaking must be a boolean"})
			return
		}
		filter.IsBreaking = &isBreaking
	}

	posts, total, err := h.postService.ListPosts(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[request_id=%s] Failed to list posts: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve posts"})
		return
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = service.DefaultPageLimit
	} else if limit > service.MaxPageLimit {
		limit = service.MaxPageLimit
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	responses := make([]PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, toPostResponse(&posts[i], false))
	}

	c.JSON(http.StatusOK, PostListResponse{
		Posts:      responses,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	})
}

// GetPost handles GET /api/v1/posts/:slug
func (h *PostHandler) GetPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.postService.GetPost(c.Request.Context(), slug)
	if err != nil {
		log.Printf("[request_id=%s] Failed to get post %s: %v", middleware.GetRequestID(c), slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	c.JSON(http.StatusOK, toPostResponse(post, true))
}

// CreatePost handles POST /api/v1/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input domain.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), input)
	if err != nil {
		if validator.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[request_id=%s] Failed to create post: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, toPostResponse(post, true))
}

// UpdatePost handles PATCH /api/v1/posts/:slug
func (h *PostHandler) UpdatePost(c *gin.Context) {
	slug := c.Param("slug")

	var input domain.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), slug, input)
	if err != nil {
		if validator.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[request_id=%s] Failed to update post %s: %v", middleware.GetRequestID(c), slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update post"})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	c.JSON(http.StatusOK, toPostResponse(post, true))
}

// DeletePost handles DELETE /api/v1/posts/:slug
func (h *PostHandler) DeletePost(c *gin.Context) {
	slug := c.Param("slug")

	deleted, err := h.postService.DeletePost(c.Request.Context(), slug)
	if err != nil {
		log.Printf("[request_id=%s] Failed to delete post %s: %v", middleware.GetRequestID(c), slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

// DuplicateCheckRequest is the payload for a duplicate-title check.
type DuplicateCheckRequest struct {
	Title     string   `json:"title"`
	Hours     *int     `json:"hours"`
	Threshold *float64 `json:"threshold"`
}

// DuplicateCheckResponse reports the outcome of a duplicate-title check.
type DuplicateCheckResponse struct {
	IsDuplicate   bool               `json:"is_duplicate"`
	InputTitle    string             `json:"input_title"`
	InputKeywords []string           `json:"input_keywords"`
	Threshold     float64            `json:"threshold"`
	BestMatch     *similarity.Match  `json:"best_match"`
	SimilarPosts  []similarity.Match `json:"similar_posts"`
	CheckedCount  int                `json:"checked_count"`
}

// CheckDuplicate handles POST /api/v1/posts/check
func (h *PostHandler) CheckDuplicate(c *gin.Context) {
	var req DuplicateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	hours := similarity.DefaultLookbackHours
	if req.Hours != nil {
		hours = *req.Hours
	}
	threshold := similarity.DefaultThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	result, err := h.postService.CheckDuplicate(c.Request.Context(), req.Title, hours, threshold)
	if err != nil {
		if validator.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[request_id=%s] Failed to check duplicate: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check for duplicates"})
		return
	}

	c.JSON(http.StatusOK, DuplicateCheckResponse{
		IsDuplicate:   result.IsDuplicate,
		InputTitle:    req.Title,
		InputKeywords: result.InputKeywords,
		Threshold:     result.Threshold,
		BestMatch:     result.BestMatch,
		SimilarPosts:  result.SimilarPosts,
		CheckedCount:  result.CheckedCount,
	})
}

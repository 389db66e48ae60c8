package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/amriteshrai/portfolio-backend/internal/blogs/domain"
	"github.com/amriteshrai/portfolio-backend/internal/view"
)

func (h *Handler) list(c *gin.Context) {
	blogs, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.log.Error("list blogs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blogs"})
		return
	}
	c.JSON(http.StatusOK, blogs)
}

func (h *Handler) featured(c *gin.Context) {
	blogs, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.log.Error("featured blogs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blogs"})
		return
	}
	c.JSON(http.StatusOK, view.FeaturedBlogs(blogs))
}

func (h *Handler) get(c *gin.Context) {
	b, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog id"})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		default:
			h.log.Error("get blog", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog"})
		}
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) getBySlug(c *gin.Context) {
	b, err := h.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		h.log.Error("get blog by slug", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog"})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) create(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	b, err := h.repo.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Slug already exists"})
			return
		}
		h.log.Error("create blog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog"})
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *Handler) update(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	b, err := h.repo.Update(c.Request.Context(), c.Param("id"), req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog id"})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		case errors.Is(err, domain.ErrDuplicateSlug):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Slug already exists"})
		default:
			h.log.Error("update blog", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog"})
		}
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) delete(c *gin.Context) {
	err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog id"})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
		default:
			h.log.Error("delete blog", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}

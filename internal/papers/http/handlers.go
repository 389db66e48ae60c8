package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/amriteshrai/portfolio-backend/internal/papers/domain"
	"github.com/amriteshrai/portfolio-backend/internal/view"
)

func (h *Handler) list(c *gin.Context) {
	papers, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.log.Error("list papers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch papers"})
		return
	}
	c.JSON(http.StatusOK, papers)
}

func (h *Handler) featured(c *gin.Context) {
	papers, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.log.Error("featured papers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch papers"})
		return
	}
	c.JSON(http.StatusOK, view.FeaturedPapers(papers))
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper id"})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		default:
			h.log.Error("get paper", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch paper"})
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) getBySlug(c *gin.Context) {
	p, err := h.repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
			return
		}
		h.log.Error("get paper by slug", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch paper"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	var req paperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	p, err := h.repo.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Slug already exists"})
			return
		}
		h.log.Error("create paper", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create paper"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) update(c *gin.Context) {
	var req paperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	p, err := h.repo.Update(c.Request.Context(), c.Param("id"), req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper id"})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		case errors.Is(err, domain.ErrDuplicateSlug):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Slug already exists"})
		default:
			h.log.Error("update paper", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update paper"})
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper id"})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		default:
			h.log.Error("delete paper", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete paper"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Paper deleted successfully"})
}

package contact

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler handles contact form submissions. Nothing is persisted; a valid
// submission is handed to the mailer and the outcome reported back.
type Handler struct {
	mailer Mailer
	log    *zap.Logger
}

func NewHandler(mailer Mailer, log *zap.Logger) *Handler {
	return &Handler{mailer: mailer, log: log}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (h *Handler) submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	err := h.mailer.Send(c.Request.Context(), Message{
		Name:  req.Name,
		Email: req.Email,
		Body:  req.Message,
	})
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			h.log.Error("contact mail not configured")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
			return
		}
		h.log.Error("contact mail dispatch", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
}

// Register attaches the contact route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
}

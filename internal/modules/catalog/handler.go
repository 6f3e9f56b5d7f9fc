package catalog

import (
	"net/http"

	"gymmaster/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/members", h.GetMembers)
	rg.GET("/classes", h.GetClasses)
}

// GetMembers handles GET /api/v1/members
func (h *Handler) GetMembers(c *gin.Context) {
	members, err := h.service.Members(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load members")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"members": members})
}

// GetClasses handles GET /api/v1/classes
func (h *Handler) GetClasses(c *gin.Context) {
	classes, err := h.service.Classes(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load classes")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"classes": toClassResponses(classes)})
}

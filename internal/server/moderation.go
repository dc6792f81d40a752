package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type moderationRequest struct {
	ID string `json:"id"`
}

func (s *Server) ApproveProduct(c *gin.Context) {
	var req moderationRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ID) == "" {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	product, err := s.moderationSvc.Approve(c.Request.Context(), req.ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product approved and added to list",
		"product": product,
	})
}

func (s *Server) RejectProduct(c *gin.Context) {
	var req moderationRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ID) == "" {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if _, err := s.moderationSvc.Reject(c.Request.Context(), req.ID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

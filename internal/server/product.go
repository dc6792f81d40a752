package server

import (
	"net/http"
	"strings"

	productdomain "github.com/baseafricadao/catalog/internal/product/domain"
	"github.com/gin-gonic/gin"
)

type submitProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Country     string  `json:"country"`
	Logo        string  `json:"logo"`
	Website     *string `json:"website"`
	Twitter     *string `json:"twitter"`
	Github      *string `json:"github"`
	// Status is accepted but ignored: every submission enters as pending.
	Status string `json:"status"`
}

func (s *Server) SubmitProduct(c *gin.Context) {
	var req submitProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	product, err := s.productSvc.Create(c.Request.Context(), productdomain.CreateRequest{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Country:     req.Country,
		Logo:        req.Logo,
		Website:     req.Website,
		Twitter:     req.Twitter,
		Github:      req.Github,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product submitted successfully!",
		"product": product,
	})
}

func (s *Server) ListProducts(c *gin.Context) {
	var query struct {
		Status   string `form:"status"`
		Category string `form:"category"`
		Country  string `form:"country"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	products, err := s.productSvc.List(c.Request.Context(), productdomain.ListRequest{
		Status:   strings.TrimSpace(query.Status),
		Category: strings.TrimSpace(query.Category),
		Country:  strings.TrimSpace(query.Country),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (s *Server) ListProductsByStatus(c *gin.Context) {
	products, err := s.productSvc.List(c.Request.Context(), productdomain.ListRequest{
		Status: strings.TrimSpace(c.Param("status")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

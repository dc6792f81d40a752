package server

import (
	"net/http"

	"github.com/baseafricadao/catalog/internal/catalog"
	"github.com/gin-gonic/gin"
)

func (s *Server) PublicProducts(c *gin.Context) {
	var query struct {
		Page     int    `form:"page,default=1"`
		Limit    int    `form:"limit,default=10"`
		Category string `form:"category"`
		Country  string `form:"country"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	products, err := s.catalogSvc.List(c.Request.Context(), catalog.ListRequest{
		Page:     query.Page,
		PageSize: query.Limit,
		Category: query.Category,
		Country:  query.Country,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

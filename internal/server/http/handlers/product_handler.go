package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/errors"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/domain/model"
	"github.com/PsyYak/devopsai-b2c-monorepo/internal/server/http/dto"
)

// ProductHandler serves the product catalog.
type ProductHandler struct {
	facade CatalogFacade
	logger *slog.Logger
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade CatalogFacade, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{facade: facade, logger: logger}
}

// List handles GET /products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		h.logger.Error("list products", slog.String("error", err.Error()))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, productResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.facade.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("get product", slog.String("error", err.Error()))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, productResponse(*product))
}

func productResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
	}
}

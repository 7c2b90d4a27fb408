package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/zathu/shopscrape/internal/domain/errors"
	"github.com/zathu/shopscrape/internal/domain/model"
	"github.com/zathu/shopscrape/internal/server/http/dto"
)

// ScrapeHandler manages the extraction endpoint.
type ScrapeHandler struct {
	facade ScrapeFacade
}

// NewScrapeHandler constructs ScrapeHandler.
func NewScrapeHandler(facade ScrapeFacade) *ScrapeHandler {
	return &ScrapeHandler{facade: facade}
}

// Scrape handles POST /api/scrape.
func (h *ScrapeHandler) Scrape(c *gin.Context) {
	var req dto.ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	refs := make([]string, 0, len(req.Links)+len(req.CartLinks))
	refs = append(refs, req.Links...)
	refs = append(refs, req.CartLinks...)

	products, err := h.facade.Scrape(c.Request.Context(), refs)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNoReferences) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response := make([]dto.ScrapeItem, 0, len(products))
	for _, p := range products {
		response = append(response, toScrapeItem(p))
	}

	c.JSON(http.StatusOK, response)
}

func toScrapeItem(p model.Product) dto.ScrapeItem {
	return dto.ScrapeItem{
		Title:         p.Title,
		Price:         p.PriceText,
		Image:         p.Image,
		PriceUSD:      p.PriceUSD,
		PriceMWK:      p.PriceMWK,
		Link:          p.SourceURL,
		PriceUnparsed: p.PriceUnparsed,
	}
}

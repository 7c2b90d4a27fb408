package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/zathu/shopscrape/internal/domain/errors"
	"github.com/zathu/shopscrape/internal/server/http/dto"
)

// RateHandler manages the exchange rate endpoints.
type RateHandler struct {
	facade RateFacade
}

// NewRateHandler constructs RateHandler.
func NewRateHandler(facade RateFacade) *RateHandler {
	return &RateHandler{facade: facade}
}

// Current handles GET /api/rate.
func (h *RateHandler) Current(c *gin.Context) {
	rate, err := h.facade.Rate(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, dto.RateResponse{Rate: rate})
}

// Update handles POST /api/updateRate.
func (h *RateHandler) Update(c *gin.Context) {
	var req dto.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	rate, err := h.facade.UpdateRate(c.Request.Context(), req.NewRate)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidRate) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.RateResponse{Rate: rate})
}

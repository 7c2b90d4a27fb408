package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/zathu/shopscrape/internal/domain/errors"
	"github.com/zathu/shopscrape/internal/domain/model"
	"github.com/zathu/shopscrape/internal/server/http/dto"
)

// OrderHandler manages order history endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Save handles POST /api/saveOrder.
func (h *OrderHandler) Save(c *gin.Context) {
	var req dto.SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	orders := make([]model.OrderRecord, len(req.Orders))
	for i, o := range req.Orders {
		orders[i] = model.OrderRecord(o)
	}

	if err := h.facade.SaveOrder(c.Request.Context(), req.Phone, orders); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingPhone), errors.Is(err, domainErrors.ErrMissingOrders):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Order saved successfully"})
}

// History handles GET /api/orderHistory/:phone.
func (h *OrderHandler) History(c *gin.Context) {
	phone := c.Param("phone")

	history, err := h.facade.OrderHistory(c.Request.Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingPhone):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response := dto.OrderHistoryResponse{History: make([]map[string]any, 0, len(history))}
	for _, record := range history {
		response.History = append(response.History, record)
	}
	c.JSON(http.StatusOK, response)
}

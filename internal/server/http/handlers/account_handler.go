package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/zathu/shopscrape/internal/domain/errors"
	"github.com/zathu/shopscrape/internal/domain/model"
	"github.com/zathu/shopscrape/internal/server/http/dto"
)

// AccountHandler manages account related endpoints.
type AccountHandler struct {
	facade AccountFacade
}

// NewAccountHandler constructs AccountHandler.
func NewAccountHandler(facade AccountFacade) *AccountHandler {
	return &AccountHandler{facade: facade}
}

// List handles GET /api/users.
func (h *AccountHandler) List(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	response := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(u))
	}
	c.JSON(http.StatusOK, response)
}

// UpdatePayment handles POST /api/updatePayment.
func (h *AccountHandler) UpdatePayment(c *gin.Context) {
	var req dto.PaymentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.IsPaid == nil {
		abortWithError(c, http.StatusBadRequest, "isPaid is required")
		return
	}

	if err := h.facade.SetPaid(c.Request.Context(), req.UserID, *req.IsPaid); err != nil {
		h.writeUpdateError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// UpdateTracking handles POST /api/updateTracking.
func (h *AccountHandler) UpdateTracking(c *gin.Context) {
	var req dto.TrackingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TrackingStatus == nil {
		abortWithError(c, http.StatusBadRequest, "trackingStatus is required")
		return
	}

	if err := h.facade.SetTracking(c.Request.Context(), req.UserID, *req.TrackingStatus); err != nil {
		h.writeUpdateError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *AccountHandler) writeUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrMissingUserID):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domainErrors.ErrNotFound):
		abortWithError(c, http.StatusNotFound, "user not found")
	default:
		abortWithError(c, http.StatusInternalServerError, err.Error())
	}
}

func toUserResponse(u model.UserAccount) dto.UserResponse {
	return dto.UserResponse{
		UserID:         u.ID,
		IsPaid:         u.IsPaid,
		TrackingStatus: u.TrackingStatus,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

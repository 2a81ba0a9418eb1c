package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdarCosmetics/salon-scheduler/internal/httperr"
	ucBooking "github.com/AdarCosmetics/salon-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type CancelHandler struct {
	cancel *ucBooking.CancelByToken
}

func NewCancelHandler(cancel *ucBooking.CancelByToken) *CancelHandler {
	return &CancelHandler{cancel: cancel}
}

////////////////////////////////////////////////////////
// LOOKUP
////////////////////////////////////////////////////////

// Lookup backs the cancellation page: given the token from the SMS link it
// returns the booking so the customer can confirm what they are cancelling.
func (h *CancelHandler) Lookup(c *gin.Context) {
	token := c.Param("token")

	b, err := h.cancel.Lookup(c.Request.Context(), token)
	if err != nil {
		httperr.NotFound(c, httperr.CodeBookingNotFound, "booking not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking":           b,
		"already_cancelled": b.Status == "cancelled",
	})
}

////////////////////////////////////////////////////////
// CANCEL
////////////////////////////////////////////////////////

func (h *CancelHandler) Cancel(c *gin.Context) {
	token := c.Param("token")

	b, already, err := h.cancel.Execute(c.Request.Context(), token)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeBookingNotFound) {
			httperr.NotFound(c, httperr.CodeBookingNotFound, "booking not found")
			return
		}
		httperr.Internal(c, "cancellation_failed", "failed to cancel the booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking":           b,
		"already_cancelled": already,
	})
}

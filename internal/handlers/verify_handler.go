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

type VerifyHandler struct {
	verify *ucBooking.VerifyCode
}

func NewVerifyHandler(verify *ucBooking.VerifyCode) *VerifyHandler {
	return &VerifyHandler{verify: verify}
}

type VerifyRequest struct {
	Phone     string `json:"phone" binding:"required"`
	Code      string `json:"code" binding:"required"`
	BookingID *uint  `json:"booking_id"` // optional: omit to verify the latest booking for the phone
}

////////////////////////////////////////////////////////
// VERIFY
////////////////////////////////////////////////////////

func (h *VerifyHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "phone and code are required")
		return
	}

	b, err := h.verify.Execute(c.Request.Context(), ucBooking.VerifyCodeInput{
		Phone:     req.Phone,
		Code:      req.Code,
		BookingID: req.BookingID,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeBookingNotFound):
			httperr.NotFound(c, httperr.CodeBookingNotFound, "booking not found")
		case httperr.IsBusiness(err, httperr.CodePhoneMismatch):
			httperr.Forbidden(c, httperr.CodePhoneMismatch, "phone does not match this booking")
		case httperr.IsBusiness(err, httperr.CodeVerificationMismatch):
			httperr.Unauthorized(c, httperr.CodeVerificationMismatch, "incorrect verification code")
		default:
			httperr.Internal(c, "verification_failed", "failed to verify the booking")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"verified": true,
		"booking":  b,
	})
}

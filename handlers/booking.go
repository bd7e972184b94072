package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"homebook/models"
	"homebook/services/booking"
	"homebook/utils"
)

var BookingSvc booking.BookingService

// SetBookingService injects the booking service used by these handlers.
func SetBookingService(s booking.BookingService) {
	BookingSvc = s
}

// QuoteBooking prices a booking without persisting it, so clients can show
// the total before the customer submits.
func QuoteBooking(c *gin.Context) {
	var input models.RawBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	record, err := BookingSvc.Quote(input)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, "validation failed", verr.Message)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute quote", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_amount":   record.TotalAmount,
		"currency":       record.Currency,
		"pricing_type":   record.PricingType,
		"cost_breakdown": record.CostBreakdown,
		"booking":        record,
	})
}

// CreateBooking builds, prices and stores a booking.
func CreateBooking(c *gin.Context) {
	var input models.RawBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	record, err := BookingSvc.CreateBooking(c.Request.Context(), input)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, "validation failed", verr.Message)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": record})
}

// GetCustomerBookings lists all bookings made by a customer, newest first.
func GetCustomerBookings(c *gin.Context) {
	userID := c.Param("id")

	records, err := BookingSvc.GetCustomerBookings(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": records})
}

// ValidateBookingFields runs the advisory field validations for form UIs.
// Nothing here blocks booking creation; it mirrors what the mobile forms
// check before submitting.
func ValidateBookingFields(c *gin.Context) {
	var input struct {
		Quantity       *string  `json:"quantity"`
		Measurement    *string  `json:"measurement"`
		MinMeasurement *float64 `json:"minMeasurement"`
		MaxMeasurement *float64 `json:"maxMeasurement"`
		Distance       *string  `json:"distance"`
		NumberOfBoxes  *string  `json:"numberOfBoxes"`
		ServiceAddress *string  `json:"serviceAddress"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	results := gin.H{}
	if input.Quantity != nil {
		results["quantity"] = booking.ValidateQuantity(*input.Quantity)
	}
	if input.Measurement != nil {
		results["measurement"] = booking.ValidateMeasurement(*input.Measurement, input.MinMeasurement, input.MaxMeasurement)
	}
	if input.Distance != nil {
		results["distance"] = booking.ValidateDistance(*input.Distance)
	}
	if input.NumberOfBoxes != nil {
		results["numberOfBoxes"] = booking.ValidateBoxes(*input.NumberOfBoxes)
	}
	if input.ServiceAddress != nil {
		results["serviceAddress"] = booking.ValidateServiceAddress(*input.ServiceAddress)
	}

	c.JSON(http.StatusOK, results)
}

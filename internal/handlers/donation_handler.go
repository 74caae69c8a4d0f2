package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greenroots/treefund-backend/internal/middleware"
	"github.com/greenroots/treefund-backend/internal/models"
	"github.com/greenroots/treefund-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DonationHandler handles donation-related HTTP requests
type DonationHandler struct {
	donationService services.DonationService
}

// NewDonationHandler creates a new DonationHandler
func NewDonationHandler(donationService services.DonationService) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

// Donate handles POST /donations/donate
func (h *DonationHandler) Donate(c *gin.Context) {
	var req models.DonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The donation is owned by the authenticated caller; the body's userId is
	// not trusted.
	req.UserID = middleware.CallerID(c)

	donation, err := h.donationService.Submit(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, donation)
}

// GetDonations handles GET /donations/donations?userId=U
func (h *DonationHandler) GetDonations(c *gin.Context) {
	userIDParam := c.Query("userId")
	if userIDParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId query parameter is required", "field": "userId"})
		return
	}

	// A caller may list their own donations; only an admin may list another
	// user's.
	if userIDParam != middleware.CallerID(c) && !middleware.CallerIsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not permitted"})
		return
	}

	userID, err := primitive.ObjectIDFromHex(userIDParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is not a valid id", "field": "userId"})
		return
	}

	donations, err := h.donationService.GetByUser(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, donations)
}

// GetAllDonations handles GET /donations/all-donations-admin
func (h *DonationHandler) GetAllDonations(c *gin.Context) {
	donations, err := h.donationService.GetAll(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, donations)
}

// UpdateDonation handles PUT /donations/:id
func (h *DonationHandler) UpdateDonation(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req models.DonationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	donation, err := h.donationService.AdminUpdate(c, id, &req, middleware.CallerIsAdmin(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, donation)
}

// DeleteDonation handles DELETE /donations/:id
func (h *DonationHandler) DeleteDonation(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.donationService.Delete(c, id, middleware.CallerIsAdmin(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Donation deleted"})
}

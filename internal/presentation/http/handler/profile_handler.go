package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/application/service"
	"github.com/swipelite/swipelite-api/internal/presentation/http/dto/response"
)

// ProfileHandler handles business profile HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// List handles listing all business profiles
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileService.ListProfiles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profiles retrieved successfully", profiles)
}

// Create handles creating a profile
func (h *ProfileHandler) Create(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Address string `json:"address"`
		GSTIN   string `json:"gstin"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.CreateProfile(c.Request.Context(), &service.CreateProfileInput{
		Name:    req.Name,
		Address: req.Address,
		GSTIN:   req.GSTIN,
		Phone:   req.Phone,
		Email:   req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Profile created successfully", profile)
}

// Get handles getting a single profile
func (h *ProfileHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid profile ID")
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved successfully", profile)
}

// GetActive handles getting the active profile
func (h *ProfileHandler) GetActive(c *gin.Context) {
	profile, err := h.profileService.GetActiveProfile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Active profile retrieved successfully", profile)
}

// Activate handles switching the active profile
func (h *ProfileHandler) Activate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid profile ID")
		return
	}

	profile, err := h.profileService.ActivateProfile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile activated successfully", profile)
}

// SetDefault handles marking a profile as default
func (h *ProfileHandler) SetDefault(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid profile ID")
		return
	}

	profile, err := h.profileService.SetDefaultProfile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile set as default", profile)
}

// Update handles updating a profile
func (h *ProfileHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid profile ID")
		return
	}

	var req struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
		GSTIN   *string `json:"gstin"`
		Phone   *string `json:"phone"`
		Email   *string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), &service.UpdateProfileInput{
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
		GSTIN:   req.GSTIN,
		Phone:   req.Phone,
		Email:   req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated successfully", profile)
}

// Delete handles deleting a profile
func (h *ProfileHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid profile ID")
		return
	}

	if err := h.profileService.DeleteProfile(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

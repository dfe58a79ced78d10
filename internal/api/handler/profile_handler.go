package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caltrack/caltrack/internal/core/ports"
)

// ProfileHandler handles HTTP requests for the authenticated user's account.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /v1/profile.
//
// @Summary      Get the current user's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileResponse(user))
}

// Update handles PUT /v1/profile. Absent fields are left unchanged.
//
// @Summary      Update profile fields
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.Update(c.Request().Context(), userID, toUpdateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileResponse(user))
}

// SaveStats handles POST /v1/profile/stats: stores a full set of body
// metrics and pins the calorie goal to the recomputed TDEE.
//
// @Summary      Save body metrics and recompute the calorie goal
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveStatsRequest  true  "Body metrics"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /profile/stats [post]
func (h *ProfileHandler) SaveStats(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req saveStatsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.SaveStats(c.Request().Context(), userID, ports.SaveStatsInput{
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		Age:           req.Age,
		Sex:           req.Sex,
		ActivityLevel: req.ActivityLevel,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileResponse(user))
}

// Delete handles DELETE /v1/profile: removes the account and every diary
// entry it owns, and revokes the presented token.
//
// @Summary      Delete the account and its diary
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /profile [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	tokenID, expiresAt, err := ctxToken(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteAccount(c.Request().Context(), userID, tokenID, expiresAt); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "account deleted"})
}

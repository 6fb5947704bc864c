package handlers

import (
	"net/http"

	"github.com/agecare/companion-api/internal/models"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// CreateProfile godoc
// @Summary Register a user profile
// @Description Registers a new profile. Profiles are immutable after creation; registering an existing user_id is rejected.
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body models.ProfileCreateRequest true "Profile to register"
// @Security ApiKeyAuth
// @Success 201 {object} OKResponse "Profile registered"
// @Failure 400 {object} ErrorResponse "Malformed or invalid payload"
// @Failure 409 {object} ErrorResponse "Profile already exists"
// @Router /profiles [post]
func (a *API) CreateProfile(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreateProfile")
	defer span.End()

	var req models.ProfileCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	span.SetAttributes(
		attribute.String("user_id", req.UserID),
		attribute.String("operation", "create_profile"),
	)

	if err := a.consent.AddProfile(ctx, req); err != nil {
		a.logger.Warn("profile creation rejected", zap.String("user_id", req.UserID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, OKResponse{OK: true})
}

// GrantConsent godoc
// @Summary Grant consent for a viewer role
// @Description Appends an additive consent grant allowing a viewer role to see the named profile fields. Grants are never replaced or revoked; the effective set is the union of all grants.
// @Tags profiles
// @Accept json
// @Produce json
// @Param consent body models.ConsentGrantRequest true "Consent grant"
// @Security ApiKeyAuth
// @Success 201 {object} OKResponse "Consent recorded"
// @Failure 400 {object} ErrorResponse "Malformed or invalid payload"
// @Router /consents [post]
func (a *API) GrantConsent(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GrantConsent")
	defer span.End()

	var req models.ConsentGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	span.SetAttributes(
		attribute.String("user_id", req.UserID),
		attribute.String("viewer_role", req.ViewerRole),
		attribute.String("operation", "grant_consent"),
	)

	if err := a.consent.GrantConsent(ctx, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, OKResponse{OK: true})
}

// ViewProfile godoc
// @Summary View a profile as a role
// @Description Returns the consent-filtered view of a profile for the given viewer role. Fields the role was never granted are absent from the response.
// @Tags profiles
// @Produce json
// @Param user_id path string true "Profile owner"
// @Param role path string true "Viewer role"
// @Security ApiKeyAuth
// @Success 200 {object} models.ProfileView "Filtered profile view"
// @Failure 404 {object} ErrorResponse "No profile registered for user_id"
// @Router /profiles/{user_id}/view/{role} [get]
func (a *API) ViewProfile(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ViewProfile")
	defer span.End()

	userID := c.Param("user_id")
	role := c.Param("role")
	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.String("viewer_role", role),
		attribute.String("operation", "view_profile"),
	)

	view, err := a.consent.ViewProfile(ctx, userID, role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

package handler

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"profilesync/internal/delivery/api/middleware"
	"profilesync/internal/delivery/api/response"
	"profilesync/internal/domain/entity"
	"profilesync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the authenticated profile routes.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// ProfileUpdateRequest is the body of every PATCH /profile route. Absent members
// are left untouched.
type ProfileUpdateRequest struct {
	Name               *string            `json:"name" validate:"omitempty,max=120"`
	Age                *int               `json:"age" validate:"omitempty,min=0,max=150"`
	AboutYou           *string            `json:"aboutYou"`
	MomentCareer       *string            `json:"momentCareer"`
	ProfileImage       *string            `json:"profileImage"`
	LinkedIn           *string            `json:"linkedin"`
	GitHub             *string            `json:"github"`
	Portfolio          *string            `json:"portfolio"`
	Instagram          *string            `json:"instagram"`
	Twitter            *string            `json:"twitter"`
	Habilities         *[]string          `json:"habilities"`
	Location           *string            `json:"location"`
	LocationVisibility *entity.Visibility `json:"visibility"`
	UserFocus          *entity.Focus      `json:"userFocus" validate:"omitempty,oneof=CONTEST COLLEGE CAREER"`
	EducationLevel     *string            `json:"educationLevel"`
	ContestType        *string            `json:"contestType"`
	CollegeCourse      *string            `json:"collegeCourse"`
}

func (r *ProfileUpdateRequest) toPatch() entity.ProfilePatch {
	return entity.ProfilePatch{
		Name:               r.Name,
		Age:                r.Age,
		AboutText:          r.AboutYou,
		MomentCareer:       r.MomentCareer,
		ProfileImage:       r.ProfileImage,
		LinkedIn:           r.LinkedIn,
		GitHub:             r.GitHub,
		Portfolio:          r.Portfolio,
		Instagram:          r.Instagram,
		Twitter:            r.Twitter,
		Habilities:         r.Habilities,
		Location:           r.Location,
		LocationVisibility: r.LocationVisibility,
		UserFocus:          r.UserFocus,
		EducationLevel:     r.EducationLevel,
		ContestType:        r.ContestType,
		CollegeCourse:      r.CollegeCourse,
	}
}

// LinksOrderRequest is the body of PUT /user-profile/social-links-order.
type LinksOrderRequest struct {
	SocialLinksOrder []string `json:"socialLinksOrder" validate:"required"`
}

// LinksOrderResponse echoes the stored order.
type LinksOrderResponse struct {
	SocialLinksOrder []string `json:"socialLinksOrder"`
}

// Field groups accepted by the dedicated PATCH routes.
var (
	NameFields         = []entity.Field{entity.FieldName}
	AgeFields          = []entity.Field{entity.FieldAge}
	AboutFields        = []entity.Field{entity.FieldAboutText}
	MomentCareerFields = []entity.Field{entity.FieldMomentCareer}
	ImageFields        = []entity.Field{entity.FieldProfileImage}
	LinkFields         = []entity.Field{entity.FieldLinkedIn, entity.FieldGitHub, entity.FieldPortfolio, entity.FieldInstagram, entity.FieldTwitter}
	HabilityFields     = []entity.Field{entity.FieldHabilities}
	LocationFields     = []entity.Field{entity.FieldLocation, entity.FieldLocationVisibility}
	FocusFields        = []entity.Field{entity.FieldUserFocus, entity.FieldEducationLevel, entity.FieldContestType, entity.FieldCollegeCourse}
)

// GetProfile returns the caller's profile, or the one named by ?userId=.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if raw := c.QueryParam("userId"); raw != "" {
		other, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_USER_ID", "userId must be a UUID")
		}
		userID = other
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateFields returns a handler that accepts only the given fields. With no
// fields it accepts any combination.
func (h *ProfileHandler) UpdateFields(fields ...entity.Field) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := middleware.GetUserID(c)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
		}

		var req ProfileUpdateRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
		}

		if err := c.Validate(&req); err != nil {
			return err
		}

		// a null skill list on its own route clears it
		if slices.Equal(fields, HabilityFields) && req.Habilities == nil {
			req.Habilities = &[]string{}
		}

		patch := req.toPatch()
		if len(fields) > 0 {
			for _, f := range patch.Fields() {
				if !slices.Contains(fields, f) {
					return response.BadRequestWithDetails(c, "UNEXPECTED_FIELD", "field not accepted on this route", f)
				}
			}
		}

		profile, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &patch)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, profile)
	}
}

// UpdateLinksOrder replaces the social links display order.
func (h *ProfileHandler) UpdateLinksOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req LinksOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid links order input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	stored, err := h.profileUC.UpdateLinksOrder(c.Request().Context(), userID, entity.ParseLinksOrder(req.SocialLinksOrder))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK,
		LinksOrderResponse{SocialLinksOrder: entity.LinksOrderStrings(stored)},
		"social links order updated",
	)
}

// AddFriend links the caller with :id.
func (h *ProfileHandler) AddFriend(c echo.Context) error {
	return h.changeFriend(c, h.profileUC.AddFriend)
}

// RemoveFriend unlinks the caller from :id.
func (h *ProfileHandler) RemoveFriend(c echo.Context) error {
	return h.changeFriend(c, h.profileUC.RemoveFriend)
}

func (h *ProfileHandler) changeFriend(
	c echo.Context,
	change func(ctx context.Context, userID, friendID uuid.UUID) (*entity.Profile, error),
) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	friendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_FRIEND_ID", "friend id must be a UUID")
	}

	profile, err := change(c.Request().Context(), userID, friendID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// SubscriptionStatus reports the caller's plan.
func (h *ProfileHandler) SubscriptionStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.profileUC.SubscriptionStatus(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

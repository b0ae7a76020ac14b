package v1

import (
	"net/http"

	"jobpilot-backend/internal/delivery/http/response"
	"jobpilot-backend/internal/domain"
	"jobpilot-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PreferencesHandler struct {
	prefsUC domain.PreferencesUsecase
}

func NewPreferencesHandler(protected *gin.RouterGroup, prefsUC domain.PreferencesUsecase) {
	handler := &PreferencesHandler{prefsUC: prefsUC}

	prefs := protected.Group("/preferences")
	{
		prefs.GET("", handler.Get)
		prefs.PUT("", handler.Update)
	}
}

type UpdatePreferencesRequest struct {
	MinSalary             *float64 `json:"min_salary" binding:"omitempty,gte=0"`
	AllowedCountries      []string `json:"allowed_countries"`
	AllowedCities         []string `json:"allowed_cities"`
	RemotePreference      string   `json:"remote_preference" binding:"omitempty,oneof=full_remote hybrid on_site any"`
	MinHoursPerWeek       *int     `json:"min_hours_per_week" binding:"omitempty,gte=0,lte=80"`
	MaxHoursPerWeek       *int     `json:"max_hours_per_week" binding:"omitempty,gte=0,lte=80"`
	PreferredPerks        []string `json:"preferred_perks"`
	WeightSalary          int      `json:"weight_salary" binding:"gte=0,lte=100"`
	WeightSkills          int      `json:"weight_skills" binding:"gte=0,lte=100"`
	WeightPerks           int      `json:"weight_perks" binding:"gte=0,lte=100"`
	MinSkillsMatchPercent int      `json:"min_skills_match_percent" binding:"gte=0,lte=100"`
}

// Get godoc
// @Summary      Get job preferences
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /preferences [get]
// @Security     BearerAuth
func (h *PreferencesHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	prefs, err := h.prefsUC.GetPreferences(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job preferences", prefs)
}

// Update godoc
// @Summary      Create or replace job preferences
// @Description  Weights do not need to sum to 100; the score calculator normalizes them
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        preferences  body      UpdatePreferencesRequest  true  "Preferences JSON"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      401          {object}  response.Response
// @Router       /preferences [put]
// @Security     BearerAuth
func (h *PreferencesHandler) Update(c *gin.Context) {
	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	prefs := &domain.JobPreferences{
		UserID:                userID,
		MinSalary:             req.MinSalary,
		AllowedCountries:      req.AllowedCountries,
		AllowedCities:         req.AllowedCities,
		RemotePreference:      domain.RemotePreference(req.RemotePreference),
		MinHoursPerWeek:       req.MinHoursPerWeek,
		MaxHoursPerWeek:       req.MaxHoursPerWeek,
		PreferredPerks:        req.PreferredPerks,
		WeightSalary:          req.WeightSalary,
		WeightSkills:          req.WeightSkills,
		WeightPerks:           req.WeightPerks,
		MinSkillsMatchPercent: req.MinSkillsMatchPercent,
	}

	if err := h.prefsUC.UpdatePreferences(c, prefs); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Preferences updated", prefs)
}

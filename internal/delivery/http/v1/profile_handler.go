package v1

import (
	"net/http"

	"jobpilot-backend/internal/delivery/http/response"
	"jobpilot-backend/internal/domain"
	"jobpilot-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := protected.Group("/profile")
	{
		profile.GET("", handler.Get)
		profile.PUT("", handler.Update)
	}
}

type SkillRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Category    string `json:"category" binding:"required,oneof=technical soft language tool"`
	Proficiency string `json:"proficiency" binding:"omitempty,oneof=beginner intermediate advanced expert"`
}

type WorkExperienceRequest struct {
	Title        string   `json:"title" binding:"required,max=150"`
	Company      string   `json:"company" binding:"required,max=150"`
	StartDate    string   `json:"start_date" binding:"required,dmy_date"`
	EndDate      string   `json:"end_date" binding:"omitempty,dmy_date"`
	Current      bool     `json:"current"`
	Achievements []string `json:"achievements" binding:"dive,max=500"`
}

type UpdateProfileRequest struct {
	Headline   string                  `json:"headline" binding:"max=150"`
	Skills     []SkillRequest          `json:"skills" binding:"dive"`
	Experience []WorkExperienceRequest `json:"experience" binding:"dive"`
	Languages  []string                `json:"languages"`
}

// Get godoc
// @Summary      Get own profile
// @Description  Get the authenticated user's profile with skills and experience
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetProfile(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	if profile == nil {
		c.Error(apperror.NotFound("Profile not found"))
		return
	}

	response.Success(c, http.StatusOK, "Profile", profile)
}

// Update godoc
// @Summary      Create or replace own profile
// @Description  Replaces the whole profile: skills and experience sent here become the new full set
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Profile JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	profile := &domain.UserProfile{
		UserID:    userID,
		Headline:  req.Headline,
		Languages: req.Languages,
	}
	for _, s := range req.Skills {
		skill := domain.Skill{
			Name:     s.Name,
			Category: domain.SkillCategory(s.Category),
		}
		if s.Proficiency != "" {
			p := domain.Proficiency(s.Proficiency)
			skill.Proficiency = &p
		}
		profile.Skills = append(profile.Skills, skill)
	}
	for _, e := range req.Experience {
		profile.Experience = append(profile.Experience, domain.WorkExperience{
			Title:        e.Title,
			Company:      e.Company,
			StartDate:    e.StartDate,
			EndDate:      e.EndDate,
			Current:      e.Current,
			Achievements: e.Achievements,
		})
	}

	if err := h.profileUC.UpdateProfile(c, profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

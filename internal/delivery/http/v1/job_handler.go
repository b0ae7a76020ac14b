package v1

import (
	"net/http"
	"strconv"

	"jobpilot-backend/internal/delivery/http/response"
	"jobpilot-backend/internal/domain"
	"jobpilot-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := protected.Group("/jobs")
	{
		jobs.POST("", handler.Import)
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.GetDetails)
		jobs.PATCH("/:id/status", handler.UpdateStatus)
		jobs.DELETE("/:id", handler.Delete)
	}
}

type ImportJobRequest struct {
	Title            string   `json:"title" binding:"required,max=200"`
	Company          string   `json:"company" binding:"max=150"`
	Description      string   `json:"description"`
	RequiredSkills   []string `json:"required_skills"`
	NiceToHaveSkills []string `json:"nice_to_have_skills"`
	Perks            []string `json:"perks"`
	SalaryMin        *float64 `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax        *float64 `json:"salary_max" binding:"omitempty,gte=0"`
	SalaryCurrency   string   `json:"salary_currency" binding:"omitempty,len=3"`
	LocationCountry  string   `json:"location_country" binding:"max=100"`
	LocationCity     string   `json:"location_city" binding:"max=100"`
	PresenceType     string   `json:"presence_type" binding:"omitempty,oneof=full_remote hybrid on_site"`
	HoursPerWeek     *int     `json:"hours_per_week" binding:"omitempty,gt=0,lte=80"`
	SourceURL        string   `json:"source_url" binding:"omitempty,url"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=imported saved applied discarded"`
}

// Import godoc
// @Summary      Import a job offer
// @Description  Save a job posting into the user's tracked jobs
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      ImportJobRequest  true  "Job offer JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Import(c *gin.Context) {
	var req ImportJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	var presence *domain.PresenceType
	if req.PresenceType != "" {
		p := domain.PresenceType(req.PresenceType)
		presence = &p
	}

	job := &domain.JobOffer{
		Title:            req.Title,
		Company:          req.Company,
		Description:      req.Description,
		RequiredSkills:   req.RequiredSkills,
		NiceToHaveSkills: req.NiceToHaveSkills,
		Perks:            req.Perks,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		SalaryCurrency:   toPtr(req.SalaryCurrency),
		LocationCountry:  toPtr(req.LocationCountry),
		LocationCity:     toPtr(req.LocationCity),
		PresenceType:     presence,
		HoursPerWeek:     req.HoursPerWeek,
		SourceURL:        toPtr(req.SourceURL),
	}

	if err := h.jobUC.ImportJob(c, userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job imported", job)
}

// List godoc
// @Summary      List tracked jobs
// @Description  Get the user's imported jobs, newest first
// @Tags         jobs
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Failure      401        {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	userID := c.GetString(string(domain.KeyUserID))

	jobs, total, err := h.jobUC.ListJobs(c, userID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	job, err := h.jobUC.GetJobDetails(c, userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// UpdateStatus godoc
// @Summary      Update job status
// @Description  Move a job through its lifecycle (imported, saved, applied, discarded)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id      path      int                     true  "Job ID"
// @Param        status  body      UpdateJobStatusRequest  true  "New status"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /jobs/{id}/status [patch]
// @Security     BearerAuth
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var req UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	if err := h.jobUC.UpdateJobStatus(c, userID, id, domain.JobStatus(req.Status)); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job status updated", gin.H{"status": req.Status})
}

// Delete godoc
// @Summary      Delete a tracked job
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	if err := h.jobUC.DeleteJob(c, userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}

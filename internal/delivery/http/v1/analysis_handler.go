package v1

import (
	"net/http"
	"strconv"

	"jobpilot-backend/internal/delivery/http/response"
	"jobpilot-backend/internal/domain"
	"jobpilot-backend/internal/matching"
	"jobpilot-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	analysisUC domain.AnalysisUsecase
}

// NewAnalysisHandler registers analysis routes. The analyze endpoint gets
// its own tighter rate limit on top of the global one because each call
// may spend an upstream AI request.
func NewAnalysisHandler(protected *gin.RouterGroup, analysisUC domain.AnalysisUsecase, analyzeLimiter gin.HandlerFunc) {
	handler := &AnalysisHandler{analysisUC: analysisUC}

	jobs := protected.Group("/jobs")
	{
		jobs.POST("/:id/analyze", analyzeLimiter, handler.Analyze)
		jobs.GET("/:id/analysis", handler.GetLatest)
	}
	protected.GET("/analyses", handler.List)
}

// Analyze godoc
// @Summary      Analyze a job against the user's profile
// @Description  Runs blocker evaluation, skill matching and scoring, asks the AI collaborator for insights (deterministic fallback on failure) and persists the result
// @Tags         analysis
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      201  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /jobs/{id}/analyze [post]
// @Security     BearerAuth
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	result, err := h.analysisUC.AnalyzeJob(c, userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Analysis complete", gin.H{
		"analysis":       result,
		"interpretation": matching.Interpret(result.OverallScore),
	})
}

// GetLatest godoc
// @Summary      Get the latest analysis for a job
// @Tags         analysis
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/analysis [get]
// @Security     BearerAuth
func (h *AnalysisHandler) GetLatest(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	result, err := h.analysisUC.GetLatestAnalysis(c, userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Latest analysis", gin.H{
		"analysis":       result,
		"interpretation": matching.Interpret(result.OverallScore),
	})
}

// List godoc
// @Summary      List analyses across jobs
// @Description  Latest analysis per job, best overall score first
// @Tags         analysis
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Failure      401        {object}  response.Response
// @Router       /analyses [get]
// @Security     BearerAuth
func (h *AnalysisHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	userID := c.GetString(string(domain.KeyUserID))

	results, total, err := h.analysisUC.ListAnalyses(c, userID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Analysis list", gin.H{
		"analyses":  results,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

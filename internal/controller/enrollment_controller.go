package controller

import (
	"errors"

	"fundi_backend/internal/service"
	"fundi_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	ProgressionService *service.ProgressionService
}

func NewEnrollmentController(progressionService *service.ProgressionService) *EnrollmentController {
	return &EnrollmentController{ProgressionService: progressionService}
}

type enrollRequest struct {
	LearnerID string `json:"learner_id" binding:"required"`
	CourseID  string `json:"course_id" binding:"required"`
}

// @Summary Enroll a learner in a course
// @Description Re-enrolling a withdrawn learner reactivates the existing enrollment.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body enrollRequest true "enrollment payload"
// @Success 201 {object} util.Response
// @Router /api/enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req enrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.ProgressionService.EnrollLearner(req.LearnerID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLearnerNotFound), errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, enrollment)
}

// @Summary Withdraw a learner from a course
// @Description Progress records are kept so a later re-enrollment resumes where the learner left off.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "enrollment id"
// @Success 200 {object} util.Response
// @Router /api/enrollments/{id} [delete]
func (c *EnrollmentController) Withdraw(ctx *gin.Context) {
	if err := c.ProgressionService.Withdraw(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrEnrollmentNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary List a learner's enrollments
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "learner id"
// @Success 200 {object} util.Response
// @Router /api/learners/{id}/enrollments [get]
func (c *EnrollmentController) ListByLearner(ctx *gin.Context) {
	enrollments, err := c.ProgressionService.ListEnrollments(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, enrollments)
}

// @Summary Per-level progress for an enrollment
// @Description Returns every level of the course in order with the learner's progress and completion percentage.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "enrollment id"
// @Success 200 {object} util.Response
// @Router /api/enrollments/{id}/progress [get]
func (c *EnrollmentController) GetProgress(ctx *gin.Context) {
	rows, err := c.ProgressionService.GetEnrollmentProgress(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrEnrollmentNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

package controller

import (
	"errors"

	"fundi_backend/internal/service"
	"fundi_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearnerController struct {
	LearnerService *service.LearnerService
}

func NewLearnerController(learnerService *service.LearnerService) *LearnerController {
	return &LearnerController{LearnerService: learnerService}
}

// @Summary Register a learner under the calling parent
// @Tags learners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.LearnerCreateRequest true "learner payload"
// @Success 201 {object} util.Response
// @Router /api/learners [post]
func (c *LearnerController) CreateLearner(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.LearnerCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	learner, err := c.LearnerService.CreateLearner(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, learner)
}

// @Summary List the calling parent's learners
// @Tags learners
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/learners [get]
func (c *LearnerController) ListLearners(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	learners, err := c.LearnerService.ListByParent(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, learners)
}

// @Summary Learners registered under a school
// @Tags learners
// @Produce json
// @Security BearerAuth
// @Param id path string true "school id"
// @Success 200 {object} util.Response
// @Router /api/schools/{id}/learners [get]
func (c *LearnerController) ListBySchool(ctx *gin.Context) {
	learners, err := c.LearnerService.ListBySchool(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, learners)
}

// @Summary Learner detail
// @Tags learners
// @Produce json
// @Security BearerAuth
// @Param id path string true "learner id"
// @Success 200 {object} util.Response
// @Router /api/learners/{id} [get]
func (c *LearnerController) GetLearner(ctx *gin.Context) {
	learner, err := c.LearnerService.GetLearner(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, learner)
}

// @Summary Badges a learner has earned
// @Tags learners
// @Produce json
// @Security BearerAuth
// @Param id path string true "learner id"
// @Success 200 {object} util.Response
// @Router /api/learners/{id}/achievements [get]
func (c *LearnerController) ListAchievements(ctx *gin.Context) {
	achievements, err := c.LearnerService.ListAchievements(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, achievements)
}

package controller

import (
	"errors"
	"strconv"

	"fundi_backend/internal/service"
	"fundi_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PathwayController struct {
	PathwayService *service.PathwayService
}

func NewPathwayController(pathwayService *service.PathwayService) *PathwayController {
	return &PathwayController{PathwayService: pathwayService}
}

// @Summary Capture pathway inputs and score them
// @Description Persists the inputs, computes the weighted score, gate colour and recommended next moves, and stores the snapshot.
// @Tags pathway
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "learner id"
// @Param body body service.PathwayInputsRequest true "pathway inputs"
// @Success 201 {object} util.Response
// @Router /api/learners/{id}/pathway [post]
func (c *PathwayController) CaptureAndScore(ctx *gin.Context) {
	var req service.PathwayInputsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessment, err := c.PathwayService.CaptureAndScore(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, assessment)
}

// @Summary Most recent pathway inputs for a learner
// @Tags pathway
// @Produce json
// @Security BearerAuth
// @Param id path string true "learner id"
// @Success 200 {object} util.Response
// @Router /api/learners/{id}/pathway/latest [get]
func (c *PathwayController) LatestInputs(ctx *gin.Context) {
	inputs, err := c.PathwayService.LatestInputs(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) || errors.Is(err, util.ErrPathwayInputsNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, inputs)
}

// @Summary Gate snapshot history for a learner
// @Tags pathway
// @Produce json
// @Security BearerAuth
// @Param id path string true "learner id"
// @Param limit query int false "max snapshots, newest first"
// @Success 200 {object} util.Response
// @Router /api/learners/{id}/pathway [get]
func (c *PathwayController) History(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	snapshots, err := c.PathwayService.History(ctx.Param("id"), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, snapshots)
}

package controller

import (
	"errors"

	"fundi_backend/internal/service"
	"fundi_backend/internal/util"
	"fundi_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressionService *service.ProgressionService
}

func NewProgressController(progressionService *service.ProgressionService) *ProgressController {
	return &ProgressController{ProgressionService: progressionService}
}

// @Summary Record teacher-observed progress on a level
// @Description Fields left out of the body are untouched. A score lower than the stored best is ignored. Promotion runs automatically when the update makes the level complete.
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "level progress id"
// @Param body body service.ProgressUpdateRequest true "progress fields"
// @Success 200 {object} util.Response
// @Router /api/progress/{id} [patch]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	var req service.ProgressUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, promoted, err := c.ProgressionService.UpdateProgress(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrProgressNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	if promoted {
		monitoring.PromotionCounter.WithLabelValues("promoted").Inc()
	}
	util.Success(ctx, gin.H{"progress": progress, "promoted": promoted})
}

// @Summary Confirm a learner's level completion
// @Description Sets the teacher confirmation flag and runs the promotion check.
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param id path string true "level progress id"
// @Success 200 {object} util.Response
// @Router /api/progress/{id}/confirm [post]
func (c *ProgressController) ConfirmCompletion(ctx *gin.Context) {
	progress, promoted, err := c.ProgressionService.ConfirmCompletion(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrProgressNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	if promoted {
		monitoring.PromotionCounter.WithLabelValues("promoted").Inc()
	}
	util.Success(ctx, gin.H{"progress": progress, "promoted": promoted})
}

// @Summary Re-run the promotion check for an enrollment
// @Description Useful after level thresholds are edited. Returns whether any state changed.
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param id path string true "enrollment id"
// @Success 200 {object} util.Response
// @Router /api/enrollments/{id}/promote [post]
func (c *ProgressController) CheckAndPromote(ctx *gin.Context) {
	promoted, err := c.ProgressionService.CheckAndPromote(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrEnrollmentNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	if promoted {
		monitoring.PromotionCounter.WithLabelValues("promoted").Inc()
	}
	util.Success(ctx, gin.H{"promoted": promoted})
}

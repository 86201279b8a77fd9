package controller

import (
	"errors"
	"strconv"

	"fundi_backend/internal/service"
	"fundi_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ArtifactController struct {
	ArtifactService *service.ArtifactService
}

func NewArtifactController(artifactService *service.ArtifactService) *ArtifactController {
	return &ArtifactController{ArtifactService: artifactService}
}

// @Summary Capture a learning artifact
// @Description Multipart upload. Media files are stored and probed for duration when they are videos. Requires media consent on the learner when files are attached.
// @Tags artifacts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "learner id"
// @Param title formData string true "artifact title"
// @Param reflection formData string false "learner reflection"
// @Param files formData file false "media files"
// @Success 201 {object} util.Response
// @Router /api/learners/{id}/artifacts [post]
func (c *ArtifactController) CreateArtifact(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ArtifactCreateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	files := form.File["files"]

	artifact, err := c.ArtifactService.CreateArtifact(ctx.Param("id"), user.UserID, req, files)
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, artifact)
}

// @Summary Artifact detail
// @Tags artifacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "artifact id"
// @Success 200 {object} util.Response
// @Router /api/artifacts/{id} [get]
func (c *ArtifactController) GetArtifact(ctx *gin.Context) {
	artifact, err := c.ArtifactService.GetArtifact(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrArtifactNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, artifact)
}

// @Summary A learner's artifact timeline
// @Tags artifacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "learner id"
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} util.PageResponse
// @Router /api/learners/{id}/artifacts [get]
func (c *ArtifactController) ListByLearner(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	artifacts, total, err := c.ArtifactService.ListByLearner(ctx.Param("id"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessPage(ctx, artifacts, total, page, limit)
}

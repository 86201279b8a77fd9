package controller

import (
	"errors"

	"fundi_backend/internal/service"
	"fundi_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// @Summary Create a course with its levels
// @Description Levels are numbered sequentially in the order supplied.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CourseCreateRequest true "course payload"
// @Success 201 {object} util.Response
// @Router /api/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req service.CourseCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.CreateCourse(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// @Summary List visible courses
// @Description Global courses plus the caller's school courses.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courses, err := c.CourseService.ListCourses(user.SchoolID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary Course detail with levels and careers
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "course id"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.CourseService.GetCourse(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// @Summary List a course's levels in order
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "course id"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/levels [get]
func (c *CourseController) ListLevels(ctx *gin.Context) {
	levels, err := c.CourseService.ListLevels(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, levels)
}

type replaceLevelsRequest struct {
	Levels []service.LevelSpec `json:"levels" binding:"required"`
}

// @Summary Replace a course's level set
// @Description Renumbers levels sequentially from 1.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "course id"
// @Param body body replaceLevelsRequest true "new level set"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/levels [put]
func (c *CourseController) ReplaceLevels(ctx *gin.Context) {
	var req replaceLevelsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	levels, err := c.CourseService.ReplaceLevels(ctx.Param("id"), req.Levels)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, levels)
}

// @Summary Attach a career to a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "course id"
// @Param body body service.CareerCreateRequest true "career payload"
// @Success 201 {object} util.Response
// @Router /api/courses/{id}/careers [post]
func (c *CourseController) AddCareer(ctx *gin.Context) {
	var req service.CareerCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	career, err := c.CourseService.AddCareer(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, career)
}

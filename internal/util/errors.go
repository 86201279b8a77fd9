package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginThrottled     = errors.New("too many failed login attempts")
	ErrPermissionDenied   = errors.New("permission denied")

	ErrSchoolNotFound     = errors.New("school not found")
	ErrLearnerNotFound    = errors.New("learner not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrLevelNotFound      = errors.New("level not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrProgressNotFound   = errors.New("progress record not found")
	ErrArtifactNotFound   = errors.New("artifact not found")

	ErrPathwayInputsNotFound = errors.New("no pathway inputs captured")
)

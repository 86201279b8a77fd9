package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"fundi_backend/internal/model"
	"fundi_backend/internal/repository"
	"fundi_backend/internal/util"

	"gorm.io/gorm"
)

// ArtifactService stores learner work evidence. Artifacts are raw
// evidence only; the artifacts_submitted counter on progress records is
// reported by teachers through the progress update operation, so an
// upload here never mutates progression state.
type ArtifactService struct {
	ArtifactRepo *repository.ArtifactRepository
	LearnerRepo  *repository.LearnerRepository
	Storage      *StorageService
}

func NewArtifactService(artifactRepo *repository.ArtifactRepository, learnerRepo *repository.LearnerRepository, storage *StorageService) *ArtifactService {
	return &ArtifactService{
		ArtifactRepo: artifactRepo,
		LearnerRepo:  learnerRepo,
		Storage:      storage,
	}
}

type ArtifactCreateRequest struct {
	Title      string `form:"title" binding:"required"`
	Reflection string `form:"reflection"`
}

func (s *ArtifactService) CreateArtifact(learnerID string, createdBy uint, req ArtifactCreateRequest, files []*multipart.FileHeader) (*model.Artifact, error) {
	learner, err := s.LearnerRepo.FindByID(learnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLearnerNotFound
		}
		return nil, err
	}
	if !learner.ConsentMedia && len(files) > 0 {
		return nil, errors.New("no media consent on file for this learner")
	}

	refs := make([]model.MediaRef, 0, len(files))
	ctx := context.Background()
	for _, header := range files {
		ref, err := s.storeMedia(ctx, learnerID, header)
		if err != nil {
			return nil, err
		}
		refs = append(refs, *ref)
	}

	mediaJSON, err := json.Marshal(refs)
	if err != nil {
		return nil, err
	}

	artifact := &model.Artifact{
		SchoolID:    learner.SchoolID,
		LearnerID:   learnerID,
		CreatedByID: &createdBy,
		Title:       req.Title,
		Reflection:  req.Reflection,
		MediaRefs:   mediaJSON,
	}
	if err := s.ArtifactRepo.Create(artifact); err != nil {
		return nil, err
	}
	return artifact, nil
}

func (s *ArtifactService) storeMedia(ctx context.Context, learnerID string, header *multipart.FileHeader) (*model.MediaRef, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	key := fmt.Sprintf("artifacts/%s/%s%s", learnerID, model.GenerateUUID(), filepath.Ext(header.Filename))

	url, err := s.Storage.Provider.Upload(ctx, key, file, header.Size, contentType)
	if err != nil {
		return nil, err
	}

	ref := &model.MediaRef{
		Key:         key,
		URL:         url,
		ContentType: contentType,
		SizeBytes:   header.Size,
	}

	// Videos get their duration probed so dashboards can show it.
	if strings.HasPrefix(contentType, "video/") {
		if local, ok := s.Storage.Provider.(*LocalStorageProvider); ok {
			if info, err := util.ProbeVideo(filepath.Join(local.Config.LocalPath, key)); err == nil {
				ref.DurationSeconds = info.Duration
			}
		}
	}
	return ref, nil
}

func (s *ArtifactService) GetArtifact(id string) (*model.Artifact, error) {
	artifact, err := s.ArtifactRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrArtifactNotFound
		}
		return nil, err
	}
	return artifact, nil
}

func (s *ArtifactService) ListByLearner(learnerID string, page, limit int) ([]model.Artifact, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if _, err := s.LearnerRepo.FindByID(learnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, util.ErrLearnerNotFound
		}
		return nil, 0, err
	}
	return s.ArtifactRepo.ListByLearner(learnerID, page, limit)
}

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"innflow/internal/media"
	"innflow/internal/objectstore"
	"innflow/internal/onboarding/models"
	dErrors "innflow/pkg/domain-errors"
)

const (
	transcodeParallelism = 4
	perImageTimeout      = 30 * time.Second
)

type imageOutcome struct {
	filename string
	key      string
	err      error
}

// IngestImages runs a batch of uploads through the pipeline: validate the
// whole batch up front, transcode and stage each image concurrently, then
// persist the outcome in a single write. A partially failed batch still
// completes; only a batch with zero surviving images is marked failed.
func (s *Service) IngestImages(ctx context.Context, requestID int64, uploads []media.Upload) (*models.ImageIngestResult, error) {
	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.StatusPending {
		return nil, dErrors.New(dErrors.CodeConflict, "images can only be attached to a pending request")
	}
	if req.ImageStatus == models.ImageProcessing {
		return nil, dErrors.New(dErrors.CodeConflict, "an image batch is already processing")
	}

	if err := media.ValidateBatch(uploads); err != nil {
		return nil, err
	}

	if err := s.requests.SetImageStatus(ctx, requestID, models.ImageProcessing); err != nil {
		return nil, err
	}

	start := s.now()
	outcomes := s.stageAll(ctx, requestID, uploads)

	var keys []string
	var failed []string
	for _, o := range outcomes {
		if o.err != nil {
			s.logger.WarnContext(ctx, "image staging failed",
				"request_id", requestID, "filename", o.filename, "error", o.err)
			failed = append(failed, o.filename)
			continue
		}
		keys = append(keys, o.key)
	}

	status := models.ImageCompleted
	if len(keys) == 0 {
		status = models.ImageFailed
	}
	summary := ""
	if len(failed) > 0 {
		summary = fmt.Sprintf("%d of %d images failed: %s", len(failed), len(uploads), strings.Join(failed, ", "))
	}

	if err := s.requests.UpdateImages(ctx, requestID, keys, status, summary, s.now().UTC()); err != nil {
		// The staged objects are orphans if the outcome never lands.
		if delErr := s.deps.Objects.DeleteMany(ctx, keys); delErr != nil {
			s.logger.WarnContext(ctx, "orphaned image cleanup failed", "request_id", requestID, "error", delErr)
		}
		// Leaving the request in Processing would block resubmission and
		// approval until an admin intervenes.
		if resetErr := s.requests.SetImageStatus(ctx, requestID, models.ImageFailed); resetErr != nil {
			s.logger.WarnContext(ctx, "image status reset failed", "request_id", requestID, "error", resetErr)
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordImages(len(keys), len(failed))
		s.metrics.ObservePipeline(start)
	}
	s.logger.InfoContext(ctx, "image batch processed",
		"request_id", requestID, "total", len(uploads), "succeeded", len(keys), "failed", len(failed))

	return &models.ImageIngestResult{
		RequestID:       requestID,
		Total:           len(uploads),
		Succeeded:       len(keys),
		Failed:          len(failed),
		FailedFilenames: failed,
		UploadedKeys:    keys,
		Status:          status,
	}, nil
}

// stageAll transcodes and uploads the batch with bounded parallelism.
// Outcomes land in indexed slots so batch order survives the concurrency.
func (s *Service) stageAll(ctx context.Context, requestID int64, uploads []media.Upload) []imageOutcome {
	outcomes := make([]imageOutcome, len(uploads))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(transcodeParallelism)
	for i, u := range uploads {
		g.Go(func() error {
			outcomes[i] = s.stageOne(gctx, requestID, u)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

func (s *Service) stageOne(ctx context.Context, requestID int64, u media.Upload) imageOutcome {
	ctx, cancel := context.WithTimeout(ctx, perImageTimeout)
	defer cancel()

	data, err := s.deps.Transcoder.ToWebP(u)
	if err != nil {
		return imageOutcome{filename: u.Filename, err: err}
	}
	key := objectstore.TempKey(requestID, webpName(u.Filename))
	if err := s.deps.Objects.Upload(ctx, key, data, "image/webp"); err != nil {
		return imageOutcome{filename: u.Filename, err: err}
	}
	return imageOutcome{filename: u.Filename, key: key}
}

func webpName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ".webp"
}

package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Blaqjakk3/Job-Specific-CV-and-cover-Letter-Analysis/internal/service"
)

// tempArtifacts tracks the speculative audit copies uploaded during one
// request. Uploads are best-effort; every id that was recorded is swept when
// the request ends, however it ends.
type tempArtifacts struct {
	storage service.ObjectStorageInterface
	logger  *zap.Logger
	ids     []string
}

func newTempArtifacts(storage service.ObjectStorageInterface, logger *zap.Logger) *tempArtifacts {
	return &tempArtifacts{storage: storage, logger: logger}
}

// upload persists the raw binary under a fresh id, scoped to the candidate.
// Failure is logged and leaves no id recorded.
func (t *tempArtifacts) upload(ctx context.Context, fileName string, data []byte, talentID string) {
	id, err := t.storage.Upload(ctx, service.UploadInput{
		FileID:   uuid.New().String(),
		FileName: fileName,
		Data:     data,
		Permissions: []string{
			fmt.Sprintf("read:candidate:%s", talentID),
			fmt.Sprintf("delete:candidate:%s", talentID),
		},
	})
	if err != nil {
		t.logger.Warn("temp artifact upload failed, continuing without audit copy",
			zap.String("file_name", fileName),
			zap.Error(err),
		)
		return
	}
	t.ids = append(t.ids, id)
}

// sweep deletes every recorded artifact concurrently and waits for all
// outcomes. A deletion failure is logged and never affects the response
// already being returned.
func (t *tempArtifacts) sweep(ctx context.Context) {
	var wg sync.WaitGroup
	for _, id := range t.ids {
		wg.Add(1)
		go func(fileID string) {
			defer wg.Done()
			if err := t.storage.Delete(ctx, fileID); err != nil {
				t.logger.Warn("temp artifact deletion failed",
					zap.String("file_id", fileID),
					zap.Error(err),
				)
			}
		}(id)
	}
	wg.Wait()
}

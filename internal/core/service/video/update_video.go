package video

import (
	"context"
	"fmt"
	"vidshare/internal/core/domain"
	"vidshare/internal/core/port"
)

// UpdateVideo applies the provided fields and returns the record as persisted by the same transaction
func (v *videoService) UpdateVideo(ctx context.Context, id string, update domain.VideoUpdate) (*domain.Video, error) {

	update, err := update.Normalize()
	if err != nil {
		return nil, err
	}

	var video *domain.Video
	txErr := v.uow.Execute(ctx, func(uow port.UnitOfWork) error {

		if err := uow.VideoRepo().UpdatePartial(ctx, id, update); err != nil {
			return err
		}

		var findErr error
		video, findErr = uow.VideoRepo().FindByID(ctx, id)
		return findErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("could not update video: %w", txErr)
	}

	v.invalidate(ctx, id)

	return video, nil
}

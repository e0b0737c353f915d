package uploadevent

import (
	"log/slog"
	"vidshare/internal/core/port"
)

type uploadEventService struct {
	store  port.ObjectStore
	repo   port.VideoRepository
	logger *slog.Logger
}

// NewUploadEventService creates a new handler for object store upload notifications
func NewUploadEventService(store port.ObjectStore, repo port.VideoRepository, logger *slog.Logger) port.MessageService {
	return &uploadEventService{
		store:  store,
		repo:   repo,
		logger: logger,
	}
}

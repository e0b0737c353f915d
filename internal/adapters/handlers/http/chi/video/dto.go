package video

import (
	"time"
	"vidshare/internal/core/domain"
)

// VideoResponse is the json representation of a video
type VideoResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	VideoURL     string    `json:"videoUrl"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	RedirectURL  string    `json:"redirectUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toVideoResponse(v domain.Video) VideoResponse {
	return VideoResponse{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		RedirectURL:  v.RedirectURL,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// SingleVideoResponse wraps one video
type SingleVideoResponse struct {
	Video VideoResponse `json:"video"`
}

// ListVideosResponse wraps the video list
type ListVideosResponse struct {
	Videos []VideoResponse `json:"videos"`
}

// UploadURLsResponse holds the signed upload targets
type UploadURLsResponse struct {
	VideoUploadURL     string `json:"videoUploadUrl"`
	ThumbnailUploadURL string `json:"thumbnailUploadUrl"`
}

// CreateVideoRequest is the body of POST /videos
type CreateVideoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	RedirectURL string  `json:"redirectUrl"`
}

// CreateVideoResponse is the body returned by POST /videos
type CreateVideoResponse struct {
	Video      VideoResponse      `json:"video"`
	UploadURLs UploadURLsResponse `json:"uploadUrls"`
}

// UpdateVideoRequest is the body of PUT /videos/{id}, absent or null fields are left untouched
type UpdateVideoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	RedirectURL *string `json:"redirectUrl,omitempty"`
}

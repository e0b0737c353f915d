package domain

import (
	"fmt"
	"strings"
)

// Collection is a logical object store bucket
type Collection string

const (
	CollectionVideos     Collection = "videos"
	CollectionThumbnails Collection = "thumbnails"
)

// Extension returns the canonical file extension for objects of the collection
func (c Collection) Extension() string {
	switch c {
	case CollectionVideos:
		return ".mp4"
	case CollectionThumbnails:
		return ".jpg"
	default:
		return ""
	}
}

// FileName returns the canonical object name of a video in the collection
func (c Collection) FileName(videoID string) string {
	return videoID + c.Extension()
}

// VideoIDFromFileName is the inverse of FileName
func (c Collection) VideoIDFromFileName(fileName string) (string, error) {
	ext := c.Extension()
	if ext == "" {
		return "", fmt.Errorf("unknown collection %q", c)
	}
	id, ok := strings.CutSuffix(fileName, ext)
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", fmt.Errorf("object %q is not a canonical %s file", fileName, c)
	}
	return id, nil
}

// StorageEvent represents an S3 compatible bucket notification, as emitted by MinIO
type StorageEvent struct {
	EventName string `json:"EventName"`
	Key       string `json:"Key"`
	Records   []struct {
		EventName string `json:"eventName"`
		S3        struct {
			Bucket struct {
				Name string `json:"name"`
			} `json:"bucket"`
			Object struct {
				Key  string `json:"key"`
				Size int64  `json:"size"`
				ETag string `json:"eTag"`
			} `json:"object"`
		} `json:"s3"`
		EventTime string `json:"eventTime"`
	} `json:"Records"`
}

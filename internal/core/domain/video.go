package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Now is the current UTC time at the microsecond precision the databases keep
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Video represents a registered video and its share target
type Video struct {
	ID           string
	Title        string
	Description  *string
	VideoURL     string
	ThumbnailURL *string
	RedirectURL  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewVideo holds the caller supplied fields of a video to create
type NewVideo struct {
	Title       string
	Description *string
	RedirectURL string
}

// Normalize trims the fields and checks the required ones
func (n NewVideo) Normalize() (NewVideo, error) {
	out := NewVideo{
		Title:       strings.TrimSpace(n.Title),
		RedirectURL: strings.TrimSpace(n.RedirectURL),
	}
	if n.Description != nil {
		if d := strings.TrimSpace(*n.Description); d != "" {
			out.Description = &d
		}
	}

	if out.Title == "" {
		return NewVideo{}, fmt.Errorf("%w: title is required", ErrInvalidArgument)
	}
	if out.RedirectURL == "" {
		return NewVideo{}, fmt.Errorf("%w: redirectUrl is required", ErrInvalidArgument)
	}
	if err := ValidateRedirectURL(out.RedirectURL); err != nil {
		return NewVideo{}, err
	}
	return out, nil
}

// VideoUpdate is a partial mutation: nil fields are left untouched.
// A non-nil empty Description clears the stored description.
type VideoUpdate struct {
	Title       *string
	Description *string
	RedirectURL *string
}

// IsEmpty reports whether no field is provided
func (u VideoUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.RedirectURL == nil
}

// Normalize trims provided fields and validates them
func (u VideoUpdate) Normalize() (VideoUpdate, error) {
	if u.IsEmpty() {
		return VideoUpdate{}, fmt.Errorf("%w: no fields to update", ErrInvalidArgument)
	}

	var out VideoUpdate
	if u.Title != nil {
		t := strings.TrimSpace(*u.Title)
		if t == "" {
			return VideoUpdate{}, fmt.Errorf("%w: title cannot be empty", ErrInvalidArgument)
		}
		out.Title = &t
	}
	if u.Description != nil {
		d := strings.TrimSpace(*u.Description)
		out.Description = &d
	}
	if u.RedirectURL != nil {
		r := strings.TrimSpace(*u.RedirectURL)
		if r == "" {
			return VideoUpdate{}, fmt.Errorf("%w: redirectUrl cannot be empty", ErrInvalidArgument)
		}
		if err := ValidateRedirectURL(r); err != nil {
			return VideoUpdate{}, err
		}
		out.RedirectURL = &r
	}
	return out, nil
}

// ValidateRedirectURL accepts absolute http and https URLs only
func ValidateRedirectURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: redirectUrl is not a valid url", ErrInvalidArgument)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: redirectUrl must be an absolute http(s) url", ErrInvalidArgument)
	}
	return nil
}

// UploadURLs are the signed, time limited upload targets returned on create
type UploadURLs struct {
	VideoUploadURL     string
	ThumbnailUploadURL string
}

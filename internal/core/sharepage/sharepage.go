// Package sharepage renders the crawler facing preview page and the embeddable player page of a video.
package sharepage

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"vidshare/internal/core/domain"
)

const (
	// DefaultDescription is shown when a video has no description
	DefaultDescription = "Watch this video"

	// VideoWidth and VideoHeight are advertised to crawlers as is, they are not measured
	VideoWidth  = 1280
	VideoHeight = 720
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	previewTemplate = template.Must(template.ParseFS(templateFS, "templates/preview.html"))
	playerTemplate  = template.Must(template.ParseFS(templateFS, "templates/player.html"))
)

type pageData struct {
	Title        string
	Description  string
	ThumbnailURL string
	VideoURL     string
	RedirectURL  string
	PageURL      string
	PlayerURL    string
	Width        int
	Height       int
}

func newPageData(video domain.Video, baseURL string) pageData {
	pageURL := SharePageURL(baseURL, video.ID)

	data := pageData{
		Title:       video.Title,
		Description: DefaultDescription,
		VideoURL:    video.VideoURL,
		RedirectURL: video.RedirectURL,
		PageURL:     pageURL,
		PlayerURL:   pageURL + "/player",
		Width:       VideoWidth,
		Height:      VideoHeight,
	}
	if video.Description != nil && *video.Description != "" {
		data.Description = *video.Description
	}
	if video.ThumbnailURL != nil {
		data.ThumbnailURL = *video.ThumbnailURL
	}
	return data
}

// SharePageURL is the public share link of a video under baseURL
func SharePageURL(baseURL, id string) string {
	return strings.TrimRight(baseURL, "/") + "/share/" + id
}

// Preview renders the Open Graph and Twitter Card document that redirects visitors on load
func Preview(video domain.Video, baseURL string) (string, error) {
	return render(previewTemplate, newPageData(video, baseURL))
}

// Player renders the full viewport player used as the Twitter Card iframe
func Player(video domain.Video, baseURL string) (string, error) {
	return render(playerTemplate, newPageData(video, baseURL))
}

func render(tmpl *template.Template, data pageData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

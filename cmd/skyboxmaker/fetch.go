package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"skyboxmaker/internal/archive"
	"skyboxmaker/internal/cubemap"
	"skyboxmaker/internal/download"
	"skyboxmaker/internal/logger"
)

// fetchFaces downloads url into dir. A zip is unpacked in place, keeping only image files and dropping its
// folder structure so the faces sit where cubemap looks for them; the zip itself is removed afterwards.
// Returns the paths of the image files written.
func fetchFaces(ctx context.Context, client *http.Client, url, dir string, log *logger.Logger) ([]string, error) {
	saved, err := download.Download(ctx, client, url, dir)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(filepath.Ext(saved), ".zip") {
		log.Infof("saved %s", saved)
		return []string{saved}, nil
	}
	defer os.Remove(saved)
	files, err := archive.Unzip(saved, dir, archive.Options{Keep: cubemap.IsImageFile, Flatten: true})
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		log.Debugf("extracted %s", f)
	}
	log.Infof("extracted %d images from %s into %s", len(files), filepath.Base(saved), dir)
	return files, nil
}

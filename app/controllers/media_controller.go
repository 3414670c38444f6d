package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/response"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/storage"
)

// 10 MB upload cap for product media.
const maxUploadBytes = 10 << 20

var allowedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".webp": true, ".svg": true, ".pdf": true,
}

// MediaController handles admin media uploads to the configured disk.
type MediaController struct{}

func NewMediaController() *MediaController {
	return &MediaController{}
}

// Upload accepts a multipart "file" field and stores it under media/,
// returning the public URL.
func (c *MediaController) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid or oversized upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		response.Error(w, http.StatusUnprocessableEntity, "unsupported file type "+ext)
		return
	}

	disk := storage.Default()
	if disk == nil {
		response.ConfigError(w, "no storage disk configured", []string{"STORAGE_DISK"})
		return
	}

	path := fmt.Sprintf("media/%d%s", time.Now().UnixNano(), ext)
	if err := disk.Put(r.Context(), path, file); err != nil {
		response.Error(w, http.StatusInternalServerError, "upload failed")
		return
	}

	response.Created(w, map[string]string{
		"path": path,
		"url":  disk.URL(path),
	})
}

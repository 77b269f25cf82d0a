package handler

import (
	"errors"
	"net/http"
	"os"

	"healthcare-management-system/internal/infrastructure/storage"
	"healthcare-management-system/pkg/response"

	"github.com/gorilla/mux"
)

// FileHandler serves stored uploads read-only
type FileHandler struct {
	files storage.FileStorage
}

func NewFileHandler(files storage.FileStorage) *FileHandler {
	return &FileHandler{
		files: files,
	}
}

func (h *FileHandler) Serve(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["folder"] + "/" + vars["name"]

	file, err := h.files.Open(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidFileID) || errors.Is(err, os.ErrNotExist) {
			response.NotFound(w, "File not found")
			return
		}
		response.InternalServerError(w, "Failed to read file")
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		response.NotFound(w, "File not found")
		return
	}

	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}

package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/delivery/http/middleware"
	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/pkg/response"
	"healthcare-management-system/pkg/validator"
)

// FillFullForm is reported when a required field is missing
const FillFullForm = "Please Fill Full Form!"

// MaxUploadSize bounds a multipart request body
const MaxUploadSize = 10 << 20

var errFileTooLarge = errors.New("file too large")

// decodeJSON reads the body into req and validates it. It writes the error
// response itself and reports whether the handler may continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}, missing string) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	return validate(w, v, req, missing)
}

func validate(w http.ResponseWriter, v *validator.CustomValidator, req interface{}, missing string) bool {
	err := v.Validate(req)
	if err == nil {
		return true
	}
	if missing != "" && validator.HasTag(err, "required") {
		response.Error(w, http.StatusBadRequest, missing, v.FormatValidationErrors(err))
		return false
	}
	response.ValidationError(w, v.FormatValidationErrors(err))
	return false
}

// currentUser returns the user resolved by the auth middleware
func currentUser(w http.ResponseWriter, r *http.Request) (*entity.User, bool) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Please Login To Access!")
		return nil, false
	}
	return user, true
}

// parseMultipart parses a multipart body bounded by MaxUploadSize
func parseMultipart(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.Error(w, http.StatusRequestEntityTooLarge, "File too large", nil)
			return false
		}
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return false
	}
	return true
}

// formFile reads an optional file field. A missing field yields nil.
func formFile(r *http.Request, field string) (*dto.UploadedFile, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxUploadSize {
		return nil, errFileTooLarge
	}

	return &dto.UploadedFile{
		Name: header.Filename,
		Data: data,
	}, nil
}

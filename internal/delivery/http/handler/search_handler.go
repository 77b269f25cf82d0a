package handler

import (
	"errors"
	"net/http"

	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/usecase"
	"healthcare-management-system/pkg/response"
)

type SearchHandler struct {
	searchUsecase usecase.SearchUsecase
}

func NewSearchHandler(searchUsecase usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{
		searchUsecase: searchUsecase,
	}
}

func (h *SearchHandler) Patients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.searchUsecase.Patients(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeSearchError(w, err)
		return
	}

	writeResults(w, "patients", patients)
}

func (h *SearchHandler) Doctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.searchUsecase.Doctors(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeSearchError(w, err)
		return
	}

	writeResults(w, "doctors", doctors)
}

func (h *SearchHandler) Users(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	users, err := h.searchUsecase.Users(r.Context(), q.Get("query"), q.Get("role"))
	if err != nil {
		writeSearchError(w, err)
		return
	}

	writeResults(w, "users", users)
}

// Advanced filters users by any combination of name, role, department and
// gender, with a whitelisted sort.
func (h *SearchHandler) Advanced(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	results, err := h.searchUsecase.Advanced(r.Context(), &dto.SearchRequest{
		Query:      q.Get("query"),
		Role:       q.Get("role"),
		Department: q.Get("department"),
		Gender:     q.Get("gender"),
		SortBy:     q.Get("sort_by"),
		Order:      q.Get("order"),
	})
	if err != nil {
		writeSearchError(w, err)
		return
	}

	writeResults(w, "results", results)
}

func writeSearchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrQueryRequired):
		response.BadRequest(w, "Search query is required")
	case errors.Is(err, usecase.ErrInvalidRole):
		response.BadRequest(w, "Invalid role")
	default:
		response.InternalServerError(w, "Failed to search")
	}
}

func writeResults(w http.ResponseWriter, key string, users []dto.UserResponse) {
	response.Success(w, http.StatusOK, "", response.Fields{
		"count": len(users),
		key:     users,
	})
}

package assessments

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/ndi-assess/backend/internal/models"
	"github.com/ndi-assess/backend/internal/scoring"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// getOrgID extracts the authenticated organization ID from the request context.
func getOrgID(r *http.Request) (uuid.UUID, bool) {
	orgID, ok := r.Context().Value("organization_id").(uuid.UUID)
	return orgID, ok
}

func getUserID(r *http.Request) *uuid.UUID {
	if userID, ok := r.Context().Value("user_id").(uuid.UUID); ok {
		return &userID
	}
	return nil
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, ok := getOrgID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req models.CreateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Name is required"})
		return
	}

	assessment, err := h.service.Create(r.Context(), orgID, getUserID(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, assessment)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	orgID, ok := getOrgID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	query := r.URL.Query()
	var status *models.AssessmentStatus
	if raw := query.Get("status"); raw != "" {
		st := models.AssessmentStatus(raw)
		if !models.ValidStatus(st) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid status filter"})
			return
		}
		status = &st
	}
	limit := intQueryParam(query, "limit", 20)
	offset := intQueryParam(query, "offset", 0)

	assessments, err := h.service.List(r.Context(), orgID, status, limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if assessments == nil {
		assessments = []models.Assessment{}
	}
	writeJSON(w, http.StatusOK, assessments)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	orgID, id, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	assessment, err := h.service.Get(r.Context(), orgID, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assessment)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, id, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req models.UpdateAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	assessment, err := h.service.Update(r.Context(), orgID, id, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assessment)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, id, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), orgID, id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SaveResponse(w http.ResponseWriter, r *http.Request) {
	orgID, id, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	var req models.SaveResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.QuestionID == uuid.Nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question_id is required"})
		return
	}

	resp, err := h.service.SaveResponse(r.Context(), orgID, id, req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ListResponses(w http.ResponseWriter, r *http.Request) {
	orgID, id, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	responses, err := h.service.ListResponses(r.Context(), orgID, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if responses == nil {
		responses = []models.Response{}
	}
	writeJSON(w, http.StatusOK, responses)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	orgID, id, ok := h.pathIDs(w, r)
	if !ok {
		return
	}

	assessment, err := h.service.Submit(r.Context(), orgID, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assessment)
}

func (h *Handler) pathIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	orgID, ok := getOrgID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid assessment ID"})
		return uuid.Nil, uuid.Nil, false
	}
	return orgID, id, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Assessment not found"})
	case errors.Is(err, ErrQuestionNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Question not found"})
	case errors.Is(err, ErrCompleted):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrInvalidLevel), errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrInvalidStatus), errors.Is(err, scoring.ErrInvalidTargetLevel):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	default:
		log.Printf("[assessments] request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
}

func intQueryParam(query url.Values, key string, fallback int) int {
	if raw := query.Get(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			return v
		}
	}
	return fallback
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

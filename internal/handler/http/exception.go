package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rtrack/rtrack-backend-go/internal/domain/exception"
	"github.com/rtrack/rtrack-backend-go/internal/handler/http/response"
)

type ExceptionHandler struct {
	exceptionService exception.ExceptionService
}

func NewExceptionHandler(exceptionService exception.ExceptionService) *ExceptionHandler {
	return &ExceptionHandler{exceptionService: exceptionService}
}

// List handles GET /exceptions.
func (h *ExceptionHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := exception.ExceptionFilter{
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "page_size", 50),
	}

	resp, err := h.exceptionService.ListExceptions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// Get handles GET /exceptions/{id}.
func (h *ExceptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid exception id")
		return
	}

	resp, err := h.exceptionService.GetException(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// Create handles POST /exceptions.
func (h *ExceptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req exception.CreateExceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.exceptionService.CreateException(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, resp)
}

// Update handles PUT /exceptions/{id}.
func (h *ExceptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid exception id")
		return
	}

	var req exception.UpdateExceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.exceptionService.UpdateException(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// Delete handles DELETE /exceptions/{id}.
func (h *ExceptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid exception id")
		return
	}

	if err := h.exceptionService.DeleteException(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, map[string]string{"message": "Exception deleted successfully"})
}

// Populate handles POST /exceptions/populate.
func (h *ExceptionHandler) Populate(w http.ResponseWriter, r *http.Request) {
	resp, err := h.exceptionService.PopulateFromEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

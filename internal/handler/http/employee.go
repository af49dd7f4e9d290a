package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rtrack/rtrack-backend-go/internal/domain/employee"
	"github.com/rtrack/rtrack-backend-go/internal/handler/http/response"
)

const maxUploadSize = 32 << 20 // 32 MB

type EmployeeHandler struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// List handles GET /employees.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{
		Page:      queryInt(r, "page", 1),
		PageSize:  queryInt(r, "page_size", 50),
		Search:    r.URL.Query().Get("search"),
		Vertical:  r.URL.Query().Get("vertical"),
		Status:    r.URL.Query().Get("status"),
		Exception: r.URL.Query().Get("exception"),
	}

	resp, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// Facets handles GET /employees/facets.
func (h *EmployeeHandler) Facets(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.GetFacets(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// Get handles GET /employees/{employee_id}.
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employee_id")

	resp, err := h.employeeService.GetEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// Create handles POST /employees.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, resp)
}

// Update handles PUT /employees/{employee_id}.
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employee_id")

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.employeeService.UpdateEmployee(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// Delete handles DELETE /employees/{employee_id}.
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employee_id")

	if err := h.employeeService.DeleteEmployee(r.Context(), employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, map[string]string{"message": "Employee deleted successfully"})
}

// Upload handles POST /employees/upload.
func (h *EmployeeHandler) Upload(w http.ResponseWriter, r *http.Request) {
	filename, content, ok := readUpload(w, r)
	if !ok {
		return
	}

	resp, err := h.employeeService.UploadEmployees(r.Context(), employee.UploadEmployeesRequest{
		Filename: filename,
		Content:  content,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// readUpload extracts the "file" part of a multipart upload.
func readUpload(w http.ResponseWriter, r *http.Request) (filename string, content []byte, ok bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return "", nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file upload")
		return "", nil, false
	}
	defer file.Close()

	content, err = io.ReadAll(file)
	if err != nil {
		response.BadRequest(w, "Failed to read uploaded file")
		return "", nil, false
	}

	return header.Filename, content, true
}

// queryInt reads an integer query parameter, falling back on absence or
// garbage.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

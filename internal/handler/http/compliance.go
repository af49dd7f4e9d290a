package http

import (
	"net/http"

	"github.com/rtrack/rtrack-backend-go/internal/domain/compliance"
	"github.com/rtrack/rtrack-backend-go/internal/handler/http/response"
)

type ComplianceHandler struct {
	complianceService compliance.ComplianceService
}

func NewComplianceHandler(complianceService compliance.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{complianceService: complianceService}
}

func pivotFilter(r *http.Request) compliance.PivotFilter {
	return compliance.PivotFilter{
		Year:      queryInt(r, "year", 0),
		Month:     queryInt(r, "month", 0),
		Status:    r.URL.Query().Get("status"),
		Search:    r.URL.Query().Get("search"),
		Exception: r.URL.Query().Get("exception"),
		Page:      queryInt(r, "page", 0),
		PageSize:  queryInt(r, "page_size", 0),
	}
}

// GetWeekly handles GET /compliance.
func (h *ComplianceHandler) GetWeekly(w http.ResponseWriter, r *http.Request) {
	resp, err := h.complianceService.GetWeeklyPivot(r.Context(), pivotFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// GetMonthly handles GET /compliance/monthly.
func (h *ComplianceHandler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	resp, err := h.complianceService.GetMonthlyPivot(r.Context(), pivotFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// GetQuarterly handles GET /compliance/quarterly.
func (h *ComplianceHandler) GetQuarterly(w http.ResponseWriter, r *http.Request) {
	resp, err := h.complianceService.GetQuarterlyPivot(r.Context(), pivotFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// CalculateMonthly handles POST /compliance/monthly/calculate.
func (h *ComplianceHandler) CalculateMonthly(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year", 0)
	month := queryInt(r, "month", 0)
	if year == 0 || month == 0 {
		response.BadRequest(w, "year and month query parameters are required")
		return
	}

	resp, err := h.complianceService.CalculateMonthly(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// CalculateQuarterly handles POST /compliance/quarterly/calculate.
func (h *ComplianceHandler) CalculateQuarterly(w http.ResponseWriter, r *http.Request) {
	year := queryInt(r, "year", 0)
	quarter := queryInt(r, "quarter", 0)
	if year == 0 || quarter == 0 {
		response.BadRequest(w, "year and quarter query parameters are required")
		return
	}

	resp, err := h.complianceService.CalculateQuarterly(r.Context(), year, quarter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// CleanDatabase handles DELETE /compliance/database/clean.
func (h *ComplianceHandler) CleanDatabase(w http.ResponseWriter, r *http.Request) {
	resp, err := h.complianceService.CleanDatabase(r.Context(), r.URL.Query().Get("table_name"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

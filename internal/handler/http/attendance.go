package http

import (
	"net/http"

	"github.com/rtrack/rtrack-backend-go/internal/domain/attendance"
	"github.com/rtrack/rtrack-backend-go/internal/handler/http/response"
)

type AttendanceHandler struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// Upload handles POST /attendance/upload.
func (h *AttendanceHandler) Upload(w http.ResponseWriter, r *http.Request) {
	filename, content, ok := readUpload(w, r)
	if !ok {
		return
	}

	resp, err := h.attendanceService.UploadAttendance(r.Context(), attendance.UploadAttendanceRequest{
		Filename: filename,
		Content:  content,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// Get handles GET /attendance.
func (h *AttendanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.GetAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

// LastUpload handles GET /attendance/last-upload.
func (h *AttendanceHandler) LastUpload(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.GetLastUploadInfo(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, resp)
}

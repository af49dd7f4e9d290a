package attendance

import "context"

// AttendanceService defines business logic for attendance ingestion
type AttendanceService interface {
	// UploadAttendance parses one Mon-Fri week of swipe records, appends
	// them, and recomputes weekly compliance for that week
	UploadAttendance(ctx context.Context, req UploadAttendanceRequest) (UploadResult, error)

	// GetAttendance returns the latest uploaded week's rows
	GetAttendance(ctx context.Context) (ListAttendanceResponse, error)

	// GetLastUploadInfo summarizes the most recent upload batch
	GetLastUploadInfo(ctx context.Context) (LastUploadInfo, error)
}

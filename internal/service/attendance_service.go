package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/repository"
)

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrExportGenerateFail = errors.New("failed to generate the attendance workbook")
)

// AttendanceService daily attendance per (student, date, course).
type AttendanceService interface {
	// Mark creates or updates the record of the triple atomically.
	Mark(ctx context.Context, actor Actor, req *dto.MarkAttendanceRequest) (*dto.AttendanceResponse, error)
	// MarkBulk upserts each record independently and reports per-student results.
	MarkBulk(ctx context.Context, actor Actor, req *dto.BulkAttendanceRequest) ([]dto.BulkAttendanceResult, error)
	ListByDateAndCourse(ctx context.Context, actor Actor, date, courseID string) ([]dto.AttendanceResponse, error)
	ListByStudent(ctx context.Context, actor Actor, studentID string, q *dto.AttendanceQuery) ([]dto.AttendanceResponse, error)
	Update(ctx context.Context, actor Actor, id string, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error)
	Delete(ctx context.Context, actor Actor, id string) error
	Summary(ctx context.Context, actor Actor, courseID string) (*dto.AttendanceSummaryResponse, error)
	// Export renders the course's attendance as an xlsx workbook.
	Export(ctx context.Context, actor Actor, courseID string) (*bytes.Buffer, string, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService creates an AttendanceService.
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

// ────────────────────── marking ──────────────────────

func (s *attendanceService) Mark(ctx context.Context, actor Actor, req *dto.MarkAttendanceRequest) (*dto.AttendanceResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if _, err := s.student(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if _, err := s.course(ctx, actor, req.CourseID, true); err != nil {
		return nil, err
	}

	return s.upsert(ctx, actor, &model.Attendance{
		StudentID:      req.StudentID,
		CourseID:       req.CourseID,
		Date:           date,
		Status:         req.Status,
		GroomingStatus: req.GroomingStatus,
		Remarks:        req.Remarks,
	})
}

func (s *attendanceService) MarkBulk(ctx context.Context, actor Actor, req *dto.BulkAttendanceRequest) ([]dto.BulkAttendanceResult, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if _, err := s.course(ctx, actor, req.CourseID, true); err != nil {
		return nil, err
	}

	results := make([]dto.BulkAttendanceResult, 0, len(req.AttendanceRecords))
	for _, rec := range req.AttendanceRecords {
		result := dto.BulkAttendanceResult{StudentID: rec.StudentID}

		if _, err := s.student(ctx, rec.StudentID); err != nil {
			result.Error = publicError(err)
			results = append(results, result)
			continue
		}

		resp, err := s.upsert(ctx, actor, &model.Attendance{
			StudentID:      rec.StudentID,
			CourseID:       req.CourseID,
			Date:           date,
			Status:         rec.Status,
			GroomingStatus: rec.GroomingStatus,
			Remarks:        rec.Remarks,
		})
		if err != nil {
			result.Error = publicError(err)
		} else {
			result.Success = true
			result.Attendance = resp
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *attendanceService) upsert(ctx context.Context, actor Actor, a *model.Attendance) (*dto.AttendanceResponse, error) {
	markedBy := actor.ID
	a.MarkedBy = &markedBy
	if err := s.repo.Attendance.Upsert(ctx, a); err != nil {
		s.logger.Error("upsert attendance failed",
			zap.String("student_id", a.StudentID), zap.String("course_id", a.CourseID), zap.Error(err))
		return nil, err
	}

	saved, err := s.repo.Attendance.GetByID(ctx, a.ID)
	if err != nil {
		s.logger.Error("reload attendance failed", zap.String("attendance_id", a.ID), zap.Error(err))
		return nil, err
	}
	resp := toAttendanceResponse(saved)
	return &resp, nil
}

// ────────────────────── queries ──────────────────────

func (s *attendanceService) ListByDateAndCourse(ctx context.Context, actor Actor, date, courseID string) ([]dto.AttendanceResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	// owner-only read
	if _, err := s.course(ctx, actor, courseID, true); err != nil {
		return nil, err
	}

	list, err := s.repo.Attendance.ListByDateAndCourse(ctx, day, courseID)
	if err != nil {
		s.logger.Error("list attendance by date failed", zap.String("course_id", courseID), zap.Error(err))
		return nil, err
	}
	return toAttendanceResponses(list), nil
}

func (s *attendanceService) ListByStudent(ctx context.Context, actor Actor, studentID string, q *dto.AttendanceQuery) ([]dto.AttendanceResponse, error) {
	ownerID, err := studentScope(actor, studentID)
	if err != nil {
		return nil, err
	}

	filter := repository.AttendanceFilter{StudentID: studentID, OwnerID: ownerID}
	if q != nil {
		filter.CourseID = q.CourseID
		if q.StartDate != "" {
			from, err := parseDate(q.StartDate)
			if err != nil {
				return nil, err
			}
			filter.From = &from
		}
		if q.EndDate != "" {
			to, err := parseDate(q.EndDate)
			if err != nil {
				return nil, err
			}
			filter.To = &to
		}
	}

	list, err := s.repo.Attendance.ListByStudent(ctx, filter)
	if err != nil {
		s.logger.Error("list student attendance failed", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}
	return toAttendanceResponses(list), nil
}

func (s *attendanceService) Summary(ctx context.Context, actor Actor, courseID string) (*dto.AttendanceSummaryResponse, error) {
	if _, err := s.course(ctx, actor, courseID, true); err != nil {
		return nil, err
	}

	rows, err := s.repo.Attendance.CountByStatus(ctx, courseID)
	if err != nil {
		s.logger.Error("count attendance failed", zap.String("course_id", courseID), zap.Error(err))
		return nil, err
	}

	byStatus := make(map[string]int64, len(rows))
	for _, r := range rows {
		byStatus[r.Status] += r.Count
	}
	resp := &dto.AttendanceSummaryResponse{CourseID: courseID, Counts: make([]dto.StatusCount, 0, len(model.AttendanceStatuses))}
	for _, status := range model.AttendanceStatuses {
		n := byStatus[status]
		resp.Total += n
		resp.Counts = append(resp.Counts, dto.StatusCount{Status: status, Count: n})
	}
	return resp, nil
}

// ────────────────────── edits ──────────────────────

func (s *attendanceService) Update(ctx context.Context, actor Actor, id string, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error) {
	a, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		a.Status = *req.Status
	}
	if req.GroomingStatus != nil {
		a.GroomingStatus = *req.GroomingStatus
	}
	if req.Remarks != nil {
		a.Remarks = *req.Remarks
	}
	markedBy := actor.ID
	a.MarkedBy = &markedBy

	if err := s.repo.Attendance.Update(ctx, a); err != nil {
		s.logger.Error("update attendance failed", zap.String("attendance_id", id), zap.Error(err))
		return nil, err
	}
	resp := toAttendanceResponse(a)
	return &resp, nil
}

func (s *attendanceService) Delete(ctx context.Context, actor Actor, id string) error {
	if _, err := s.load(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Attendance.Delete(ctx, id); err != nil {
		s.logger.Error("delete attendance failed", zap.String("attendance_id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Export ──────────────────────

var exportHeader = []string{"Date", "Student ID", "Name", "Email", "Status", "Grooming", "Remarks"}

func (s *attendanceService) Export(ctx context.Context, actor Actor, courseID string) (*bytes.Buffer, string, error) {
	course, err := s.course(ctx, actor, courseID, true)
	if err != nil {
		return nil, "", err
	}
	list, err := s.repo.Attendance.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("list course attendance failed", zap.String("course_id", courseID), zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	idx, _ := f.NewSheet(sheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, h := range exportHeader {
		f.SetCellValue(sheet, cell(i+1, 1), h)
	}
	f.SetCellStyle(sheet, cell(1, 1), cell(len(exportHeader), 1), headerStyle)
	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 16)
	f.SetColWidth(sheet, "C", "D", 28)
	f.SetColWidth(sheet, "E", "F", 12)
	f.SetColWidth(sheet, "G", "G", 40)

	type tally struct {
		name   string
		counts map[string]int
	}
	perStudent := map[string]*tally{}
	var order []string

	for i, a := range list {
		row := i + 2
		name, email, sid := "", "", a.StudentID
		if a.Student != nil {
			name, email, sid = a.Student.Name, a.Student.Email, a.Student.StudentID
		}
		values := []interface{}{a.Date.Format(model.DateLayout), sid, name, email, a.Status, a.GroomingStatus, a.Remarks}
		for col, v := range values {
			f.SetCellValue(sheet, cell(col+1, row), v)
		}

		t, ok := perStudent[sid]
		if !ok {
			t = &tally{name: name, counts: map[string]int{}}
			perStudent[sid] = t
			order = append(order, sid)
		}
		t.counts[a.Status]++
	}

	// per-student totals
	const summary = "Summary"
	f.NewSheet(summary)
	f.SetCellValue(summary, cell(1, 1), "Student ID")
	f.SetCellValue(summary, cell(2, 1), "Name")
	for i, status := range model.AttendanceStatuses {
		f.SetCellValue(summary, cell(i+3, 1), strings.ToUpper(status[:1])+status[1:])
	}
	f.SetCellStyle(summary, cell(1, 1), cell(len(model.AttendanceStatuses)+2, 1), headerStyle)
	f.SetColWidth(summary, "A", "B", 24)
	for i, sid := range order {
		row := i + 2
		f.SetCellValue(summary, cell(1, row), sid)
		f.SetCellValue(summary, cell(2, row), perStudent[sid].name)
		for j, status := range model.AttendanceStatuses {
			f.SetCellValue(summary, cell(j+3, row), perStudent[sid].counts[status])
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write attendance workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("attendance-%s-%s.xlsx", slug(course.Title), time.Now().Format("20060102"))
	return buf, filename, nil
}

// ── internal helpers ──

func (s *attendanceService) load(ctx context.Context, actor Actor, id string) (*model.Attendance, error) {
	a, err := s.repo.Attendance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		s.logger.Error("query attendance failed", zap.String("attendance_id", id), zap.Error(err))
		return nil, err
	}
	if _, err := s.course(ctx, actor, a.CourseID, true); err != nil {
		return nil, remapNotFound(err, ErrAttendanceNotFound)
	}
	return a, nil
}

func (s *attendanceService) student(ctx context.Context, id string) (*model.User, error) {
	return getStudent(ctx, s.repo, s.logger, id)
}

func (s *attendanceService) course(ctx context.Context, actor Actor, courseID string, write bool) (*model.Course, error) {
	course, err := courseForActor(ctx, s.repo, actor, courseID, write)
	if err != nil && !errors.Is(err, ErrCourseNotFound) {
		s.logger.Error("query course failed", zap.String("course_id", courseID), zap.Error(err))
	}
	return course, err
}

// getStudent loads a user that must have the student role.
func getStudent(ctx context.Context, repo *repository.Repository, logger *zap.Logger, id string) (*model.User, error) {
	user, err := repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		logger.Error("query student failed", zap.String("student_id", id), zap.Error(err))
		return nil, err
	}
	if user.Role != model.RoleStudent {
		return nil, ErrStudentNotFound
	}
	return user, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(model.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// publicError hides unexpected errors behind a generic message.
func publicError(err error) string {
	switch {
	case errors.Is(err, ErrStudentNotFound), errors.Is(err, ErrCourseNotFound):
		return err.Error()
	default:
		return "internal server error"
	}
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, s)
	s = strings.Trim(s, "-")
	if s == "" {
		return "course"
	}
	return s
}

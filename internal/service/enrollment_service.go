package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/repository"
	pkgerrors "github.com/P-MUGILVANNAN/Student-Tracking/pkg/errors"
)

var (
	ErrAlreadyEnrolled    = errors.New("student is already enrolled in this course")
	ErrProgressNotFound   = errors.New("progress not found")
	ErrDayNotFound        = errors.New("day not found in progress")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrDuplicateDayIndex  = errors.New("duplicate dayIndex in daysData")
)

// EnrollmentService enrollment, per-day progress plans and notes.
type EnrollmentService interface {
	// AdminEnroll creates the progress plan, course membership and enrollment in one transaction.
	AdminEnroll(ctx context.Context, actor Actor, req *dto.AdminEnrollRequest) (*dto.AdminEnrollResponse, error)
	SelfEnroll(ctx context.Context, actor Actor, courseID string) (*dto.EnrollmentResponse, error)
	UpdateDayNote(ctx context.Context, actor Actor, req *dto.DayNoteRequest) (*dto.EnrollmentResponse, error)
	GetProgress(ctx context.Context, actor Actor, userID, courseID string) (*dto.ProgressResponse, error)
	UpdateCompletion(ctx context.Context, actor Actor, req *dto.UpdateCompletionRequest) (*dto.ProgressResponse, error)
	// ExportCalendar renders the plan as iCalendar, one all-day event per day.
	ExportCalendar(ctx context.Context, actor Actor, userID, courseID string) ([]byte, string, error)
}

type enrollmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewEnrollmentService creates an EnrollmentService.
func NewEnrollmentService(repo *repository.Repository, logger *zap.Logger) EnrollmentService {
	return &enrollmentService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── enrollment ──────────────────────

func (s *enrollmentService) AdminEnroll(ctx context.Context, actor Actor, req *dto.AdminEnrollRequest) (*dto.AdminEnrollResponse, error) {
	days, err := buildDays(req.DaysData)
	if err != nil {
		return nil, err
	}
	if _, err := courseForActor(ctx, s.repo, actor, req.CourseID, true); err != nil {
		s.logUnexpected("query course failed", err)
		return nil, err
	}
	if _, err := getStudent(ctx, s.repo, s.logger, req.StudentID); err != nil {
		return nil, err
	}

	if _, err := s.repo.Progress.GetByUserAndCourse(ctx, req.StudentID, req.CourseID); err == nil {
		return nil, ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("query progress failed", zap.Error(err))
		return nil, err
	}

	progress := &model.Progress{UserID: req.StudentID, CourseID: req.CourseID, Days: days}
	var enrollment *model.Enrollment

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Progress.Create(ctx, progress); err != nil {
			return err
		}
		if err := tx.User.AddCourse(ctx, req.StudentID, req.CourseID); err != nil {
			return err
		}
		existing, err := tx.Enrollment.GetByUserAndCourse(ctx, req.StudentID, req.CourseID)
		if err == nil {
			enrollment = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		enrollment = &model.Enrollment{UserID: req.StudentID, CourseID: req.CourseID, EnrolledAt: s.now()}
		return tx.Enrollment.Create(ctx, enrollment)
	})
	if err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return nil, ErrAlreadyEnrolled
		}
		s.logger.Error("admin enroll failed",
			zap.String("student_id", req.StudentID), zap.String("course_id", req.CourseID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("student enrolled",
		zap.String("student_id", req.StudentID), zap.String("course_id", req.CourseID), zap.Int("days", len(days)))
	return &dto.AdminEnrollResponse{
		Progress:   toProgressResponse(progress),
		Enrollment: toEnrollmentResponse(enrollment),
	}, nil
}

// buildDays orders the plan by day index and rejects duplicates.
func buildDays(in []dto.DayPlanRequest) ([]model.ProgressDay, error) {
	seen := make(map[int]bool, len(in))
	days := make([]model.ProgressDay, 0, len(in))
	for _, d := range in {
		if seen[d.DayIndex] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateDayIndex, d.DayIndex)
		}
		seen[d.DayIndex] = true
		days = append(days, model.ProgressDay{DayIndex: d.DayIndex, Content: d.Content, Task: d.Task})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].DayIndex < days[j].DayIndex })
	return days, nil
}

func (s *enrollmentService) SelfEnroll(ctx context.Context, actor Actor, courseID string) (*dto.EnrollmentResponse, error) {
	if !actor.IsStudent() {
		return nil, ErrNoPermission
	}
	if _, err := courseForActor(ctx, s.repo, actor, courseID, false); err != nil {
		s.logUnexpected("query course failed", err)
		return nil, err
	}

	if _, err := s.repo.Enrollment.GetByUserAndCourse(ctx, actor.ID, courseID); err == nil {
		return nil, ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("query enrollment failed", zap.Error(err))
		return nil, err
	}

	enrollment := &model.Enrollment{UserID: actor.ID, CourseID: courseID, EnrolledAt: s.now()}
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Enrollment.Create(ctx, enrollment); err != nil {
			return err
		}
		return tx.User.AddCourse(ctx, actor.ID, courseID)
	})
	if err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return nil, ErrAlreadyEnrolled
		}
		s.logger.Error("self enroll failed", zap.String("user_id", actor.ID), zap.String("course_id", courseID), zap.Error(err))
		return nil, err
	}

	resp := toEnrollmentResponse(enrollment)
	return &resp, nil
}

// UpdateDayNote upserts the caller's note for one calendar day of their enrollment.
func (s *enrollmentService) UpdateDayNote(ctx context.Context, actor Actor, req *dto.DayNoteRequest) (*dto.EnrollmentResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	enrollment, err := s.repo.Enrollment.GetByID(ctx, req.EnrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		s.logger.Error("query enrollment failed", zap.String("enrollment_id", req.EnrollmentID), zap.Error(err))
		return nil, err
	}
	if enrollment.UserID != actor.ID {
		return nil, ErrEnrollmentNotFound
	}

	day := &model.EnrollmentDay{
		EnrollmentID: enrollment.ID,
		Date:         date,
		Status:       strings.TrimSpace(req.Status),
		Notes:        req.Notes,
		UpdatedAt:    s.now(),
	}
	if err := s.repo.Enrollment.UpsertDay(ctx, day); err != nil {
		s.logger.Error("upsert enrollment day failed", zap.String("enrollment_id", enrollment.ID), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Enrollment.GetByID(ctx, enrollment.ID)
	if err != nil {
		s.logger.Error("reload enrollment failed", zap.String("enrollment_id", enrollment.ID), zap.Error(err))
		return nil, err
	}
	resp := toEnrollmentResponse(updated)
	return &resp, nil
}

// ────────────────────── progress ──────────────────────

func (s *enrollmentService) GetProgress(ctx context.Context, actor Actor, userID, courseID string) (*dto.ProgressResponse, error) {
	progress, err := s.loadProgress(ctx, actor, userID, courseID)
	if err != nil {
		return nil, err
	}
	resp := toProgressResponse(progress)
	return &resp, nil
}

func (s *enrollmentService) UpdateCompletion(ctx context.Context, actor Actor, req *dto.UpdateCompletionRequest) (*dto.ProgressResponse, error) {
	progress, err := s.loadProgress(ctx, actor, req.UserID, req.CourseID)
	if err != nil {
		return nil, err
	}

	ok, err := s.repo.Progress.MarkDayComplete(ctx, progress.ID, req.DayIndex)
	if err != nil {
		s.logger.Error("mark day complete failed", zap.String("progress_id", progress.ID), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrDayNotFound
	}

	return s.GetProgress(ctx, actor, req.UserID, req.CourseID)
}

// loadProgress lets a student reach only their own plan and an admin only
// plans of courses they own.
func (s *enrollmentService) loadProgress(ctx context.Context, actor Actor, userID, courseID string) (*model.Progress, error) {
	switch {
	case actor.IsStudent():
		if actor.ID != userID {
			return nil, ErrNoPermission
		}
	case actor.IsAdmin():
		if _, err := courseForActor(ctx, s.repo, actor, courseID, true); err != nil {
			s.logUnexpected("query course failed", err)
			return nil, remapNotFound(err, ErrProgressNotFound)
		}
	default:
		return nil, ErrNoPermission
	}

	progress, err := s.repo.Progress.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgressNotFound
		}
		s.logger.Error("query progress failed",
			zap.String("user_id", userID), zap.String("course_id", courseID), zap.Error(err))
		return nil, err
	}
	return progress, nil
}

// ────────────────────── ExportCalendar ──────────────────────

func (s *enrollmentService) ExportCalendar(ctx context.Context, actor Actor, userID, courseID string) ([]byte, string, error) {
	progress, err := s.loadProgress(ctx, actor, userID, courseID)
	if err != nil {
		return nil, "", err
	}
	course, err := s.repo.Course.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrProgressNotFound
		}
		s.logger.Error("query course failed", zap.String("course_id", courseID), zap.Error(err))
		return nil, "", err
	}

	// the plan starts on the enrollment date, or the plan's creation date without one
	start := progress.CreatedAt
	if e, err := s.repo.Enrollment.GetByUserAndCourse(ctx, userID, courseID); err == nil {
		start = e.EnrolledAt
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("query enrollment failed", zap.Error(err))
		return nil, "", err
	}
	if start.IsZero() {
		start = s.now()
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	return []byte(buildCalendar(progress, course.Title, start, s.now())), fmt.Sprintf("progress-%s.ics", slug(course.Title)), nil
}

// buildCalendar maps day N of the plan to start + N-1 days.
func buildCalendar(p *model.Progress, title string, start, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Student Tracking//Progress Plan//EN")
	cal.SetXWRCalName(title)

	for _, d := range p.Days {
		day := start.AddDate(0, 0, d.DayIndex-1)
		event := cal.AddEvent(fmt.Sprintf("%s-day-%d@student-tracking", p.ID, d.DayIndex))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(day)
		event.SetAllDayEndAt(day.AddDate(0, 0, 1))

		summary := fmt.Sprintf("%s: Day %d", title, d.DayIndex)
		if d.Completed {
			summary += " (completed)"
		}
		event.SetSummary(summary)

		var desc []string
		if d.Content != "" {
			desc = append(desc, d.Content)
		}
		if d.Task != "" {
			desc = append(desc, "Task: "+d.Task)
		}
		if len(desc) > 0 {
			event.SetDescription(strings.Join(desc, "\n"))
		}
	}
	return cal.Serialize()
}

func (s *enrollmentService) logUnexpected(msg string, err error) {
	if !errors.Is(err, ErrCourseNotFound) {
		s.logger.Error(msg, zap.Error(err))
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/repository"
	pkgerrors "github.com/P-MUGILVANNAN/Student-Tracking/pkg/errors"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/metrics"
)

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrInvalidQuestion    = errors.New("invalid question")
	ErrAlreadySubmitted   = errors.New("assessment already submitted")
	ErrNoAssessments      = errors.New("no assessments found for this course")
	ErrNoSubmissions      = errors.New("no submissions found for this assessment")
)

// AssessmentService assessments, grading and submissions.
type AssessmentService interface {
	Create(ctx context.Context, actor Actor, req *dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error)
	Get(ctx context.Context, actor Actor, id string) (*dto.AssessmentResponse, error)
	ListByCourse(ctx context.Context, actor Actor, courseID string) ([]dto.AssessmentResponse, error)
	Submit(ctx context.Context, actor Actor, assessmentID string, req *dto.SubmitAssessmentRequest) (*dto.SubmissionResponse, error)
	ListSubmissions(ctx context.Context, actor Actor, assessmentID string) ([]dto.SubmissionResponse, error)
	ListCourseSubmissions(ctx context.Context, actor Actor, courseID string) ([]dto.SubmissionResponse, error)
	ListStudentSubmissions(ctx context.Context, actor Actor, studentID string) ([]dto.SubmissionResponse, error)
}

type assessmentService struct {
	repo    *repository.Repository
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewAssessmentService creates an AssessmentService. m may be nil.
func NewAssessmentService(repo *repository.Repository, m *metrics.Metrics, logger *zap.Logger) AssessmentService {
	return &assessmentService{repo: repo, metrics: m, logger: logger}
}

// ────────────────────── assessments ──────────────────────

func (s *assessmentService) Create(ctx context.Context, actor Actor, req *dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error) {
	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}
	if _, err := s.course(ctx, actor, req.CourseID, true); err != nil {
		return nil, err
	}

	assessment := &model.Assessment{
		CourseID:  req.CourseID,
		Topic:     strings.TrimSpace(req.Topic),
		CreatedBy: actor.ID,
		Questions: questions,
	}
	if err := s.repo.Assessment.Create(ctx, assessment); err != nil {
		s.logger.Error("create assessment failed", zap.String("course_id", req.CourseID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("assessment created",
		zap.String("assessment_id", assessment.ID), zap.Int("questions", len(questions)))
	resp := toAssessmentResponse(assessment, true)
	return &resp, nil
}

// buildQuestions validates question shapes. Multiple-choice questions need
// exactly MCQOptionCount non-empty options; short answers carry none.
func buildQuestions(in []dto.QuestionRequest) ([]model.AssessmentQuestion, error) {
	out := make([]model.AssessmentQuestion, 0, len(in))
	for i, q := range in {
		question := model.AssessmentQuestion{
			Position:      i,
			QuestionType:  q.QuestionType,
			QuestionText:  strings.TrimSpace(q.QuestionText),
			CorrectAnswer: q.CorrectAnswer,
			Options:       pq.StringArray{},
		}
		switch q.QuestionType {
		case model.QuestionMCQ:
			if len(q.Options) != model.MCQOptionCount {
				return nil, fmt.Errorf("%w: question %d must have exactly %d options",
					ErrInvalidQuestion, i+1, model.MCQOptionCount)
			}
			for _, o := range q.Options {
				if strings.TrimSpace(o) == "" {
					return nil, fmt.Errorf("%w: question %d has an empty option", ErrInvalidQuestion, i+1)
				}
			}
			question.Options = pq.StringArray(q.Options)
		case model.QuestionShortAnswer:
		default:
			return nil, fmt.Errorf("%w: question %d has unknown type %q", ErrInvalidQuestion, i+1, q.QuestionType)
		}
		if question.QuestionText == "" {
			return nil, fmt.Errorf("%w: question %d has no text", ErrInvalidQuestion, i+1)
		}
		out = append(out, question)
	}
	return out, nil
}

func (s *assessmentService) Get(ctx context.Context, actor Actor, id string) (*dto.AssessmentResponse, error) {
	assessment, err := s.load(ctx, actor, id, false)
	if err != nil {
		return nil, err
	}
	resp := toAssessmentResponse(assessment, actor.IsAdmin())
	return &resp, nil
}

func (s *assessmentService) ListByCourse(ctx context.Context, actor Actor, courseID string) ([]dto.AssessmentResponse, error) {
	if _, err := s.course(ctx, actor, courseID, false); err != nil {
		return nil, err
	}

	list, err := s.repo.Assessment.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("list assessments failed", zap.String("course_id", courseID), zap.Error(err))
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrNoAssessments
	}

	out := make([]dto.AssessmentResponse, 0, len(list))
	for i := range list {
		out = append(out, toAssessmentResponse(&list[i], actor.IsAdmin()))
	}
	return out, nil
}

// ────────────────────── submissions ──────────────────────

// Submit grades the answers and stores the submission with frozen flags.
func (s *assessmentService) Submit(ctx context.Context, actor Actor, assessmentID string, req *dto.SubmitAssessmentRequest) (*dto.SubmissionResponse, error) {
	if !actor.IsStudent() {
		return nil, ErrNoPermission
	}
	assessment, err := s.load(ctx, actor, assessmentID, false)
	if err != nil {
		return nil, err
	}

	submission := &model.StudentSubmission{
		StudentID:    actor.ID,
		AssessmentID: assessment.ID,
		Answers:      Grade(assessment.Questions, req.Answers),
	}
	if err := s.repo.Submission.Create(ctx, submission); err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return nil, ErrAlreadySubmitted
		}
		s.logger.Error("create submission failed",
			zap.String("assessment_id", assessmentID), zap.String("student_id", actor.ID), zap.Error(err))
		return nil, err
	}
	s.metrics.ObserveSubmission()

	submission.Assessment = assessment
	resp := toSubmissionResponse(submission)
	return &resp, nil
}

func (s *assessmentService) ListSubmissions(ctx context.Context, actor Actor, assessmentID string) ([]dto.SubmissionResponse, error) {
	if _, err := s.load(ctx, actor, assessmentID, true); err != nil {
		return nil, err
	}

	list, err := s.repo.Submission.ListByAssessment(ctx, assessmentID)
	if err != nil {
		s.logger.Error("list submissions failed", zap.String("assessment_id", assessmentID), zap.Error(err))
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrNoSubmissions
	}
	return toSubmissionResponses(list), nil
}

func (s *assessmentService) ListCourseSubmissions(ctx context.Context, actor Actor, courseID string) ([]dto.SubmissionResponse, error) {
	// owner-only read
	if _, err := s.course(ctx, actor, courseID, true); err != nil {
		return nil, err
	}

	list, err := s.repo.Submission.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("list course submissions failed", zap.String("course_id", courseID), zap.Error(err))
		return nil, err
	}
	return toSubmissionResponses(list), nil
}

func (s *assessmentService) ListStudentSubmissions(ctx context.Context, actor Actor, studentID string) ([]dto.SubmissionResponse, error) {
	ownerID, err := studentScope(actor, studentID)
	if err != nil {
		return nil, err
	}

	list, err := s.repo.Submission.ListByStudent(ctx, studentID, ownerID)
	if err != nil {
		s.logger.Error("list student submissions failed", zap.String("student_id", studentID), zap.Error(err))
		return nil, err
	}
	return toSubmissionResponses(list), nil
}

// ── internal helpers ──

// load fetches an assessment and applies CanAccess through its course.
func (s *assessmentService) load(ctx context.Context, actor Actor, id string, write bool) (*model.Assessment, error) {
	assessment, err := s.repo.Assessment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssessmentNotFound
		}
		s.logger.Error("query assessment failed", zap.String("assessment_id", id), zap.Error(err))
		return nil, err
	}
	if _, err := s.course(ctx, actor, assessment.CourseID, write); err != nil {
		return nil, remapNotFound(err, ErrAssessmentNotFound)
	}
	return assessment, nil
}

func (s *assessmentService) course(ctx context.Context, actor Actor, courseID string, write bool) (*model.Course, error) {
	course, err := courseForActor(ctx, s.repo, actor, courseID, write)
	if err != nil && !errors.Is(err, ErrCourseNotFound) {
		s.logger.Error("query course failed", zap.String("course_id", courseID), zap.Error(err))
	}
	return course, err
}

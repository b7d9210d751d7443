package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/repository"
)

// memDB is the in-memory store behind every mock repository. Tables are
// slices so listings keep insertion order.
type memDB struct {
	clock time.Time

	users       []*model.User
	userCourses []model.UserCourse
	courses     []*model.Course
	syllabi     []*model.Syllabus
	contents    []*model.CourseContent
	assessments []*model.Assessment
	submissions []*model.StudentSubmission
	projects    []*model.Project
	projectSubs []*model.ProjectSubmission
	attendances []*model.Attendance
	progresses  []*model.Progress
	enrollments []*model.Enrollment
}

// tick returns a strictly increasing timestamp.
func (db *memDB) tick() time.Time {
	db.clock = db.clock.Add(time.Second)
	return db.clock
}

func uniqueErr(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func newID() string { return uuid.NewString() }

// newMockRepository wires every mock onto one memDB.
func newMockRepository() (*repository.Repository, *memDB) {
	db := &memDB{clock: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	return &repository.Repository{
		User:              &mockUserRepo{db},
		Course:            &mockCourseRepo{db},
		Syllabus:          &mockSyllabusRepo{db},
		CourseContent:     &mockCourseContentRepo{db},
		Assessment:        &mockAssessmentRepo{db},
		Submission:        &mockSubmissionRepo{db},
		Project:           &mockProjectRepo{db},
		ProjectSubmission: &mockProjectSubmissionRepo{db},
		Attendance:        &mockAttendanceRepo{db},
		Progress:          &mockProgressRepo{db},
		Enrollment:        &mockEnrollmentRepo{db},
	}, db
}

func (db *memDB) user(id string) *model.User {
	for _, u := range db.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (db *memDB) course(id string) *model.Course {
	for _, c := range db.courses {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (db *memDB) assessment(id string) *model.Assessment {
	for _, a := range db.assessments {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (db *memDB) project(id string) *model.Project {
	for _, p := range db.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ── Mock UserRepository ──

type mockUserRepo struct{ db *memDB }

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.db.users {
		if u.Email == user.Email {
			return uniqueErr("uk_users_email")
		}
		if u.StudentID == user.StudentID {
			return uniqueErr("uk_users_student_id")
		}
	}
	if user.ID == "" {
		user.ID = newID()
	}
	now := m.db.tick()
	user.CreatedAt, user.UpdatedAt = now, now
	if user.JoiningDate.IsZero() {
		user.JoiningDate = now
	}
	m.db.users = append(m.db.users, user)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u := m.db.user(id); u != nil {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.db.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByStudentID(_ context.Context, studentID string) (*model.User, error) {
	for _, u := range m.db.users {
		if u.StudentID == studentID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	for _, u := range m.db.users {
		if u.ID != user.ID && u.Email == user.Email {
			return uniqueErr("uk_users_email")
		}
	}
	user.UpdatedAt = m.db.tick()
	return nil
}

func (m *mockUserRepo) ListStudentsByTrainer(_ context.Context, trainerName string) ([]model.User, error) {
	var out []model.User
	for _, u := range m.db.users {
		if u.Role == model.RoleStudent && u.TrainerName == trainerName {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockUserRepo) ListCourses(_ context.Context, userID string) ([]model.Course, error) {
	var out []model.Course
	for _, uc := range m.db.userCourses {
		if uc.UserID == userID {
			if c := m.db.course(uc.CourseID); c != nil {
				out = append(out, *c)
			}
		}
	}
	return out, nil
}

func (m *mockUserRepo) AddCourse(_ context.Context, userID, courseID string) error {
	for _, uc := range m.db.userCourses {
		if uc.UserID == userID && uc.CourseID == courseID {
			return nil
		}
	}
	m.db.userCourses = append(m.db.userCourses, model.UserCourse{UserID: userID, CourseID: courseID, CreatedAt: m.db.tick()})
	return nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct{ db *memDB }

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.ID == "" {
		course.ID = newID()
	}
	now := m.db.tick()
	course.CreatedAt, course.UpdatedAt = now, now
	m.db.courses = append(m.db.courses, course)
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id string) (*model.Course, error) {
	if c := m.db.course(id); c != nil {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Course, error) {
	var out []model.Course
	for _, c := range m.db.courses {
		if c.CreatedBy == ownerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	course.UpdatedAt = m.db.tick()
	return nil
}

// Delete mirrors the schema's cascades for the tables the tests look at.
func (m *mockCourseRepo) Delete(_ context.Context, id string) error {
	var courses []*model.Course
	for _, c := range m.db.courses {
		if c.ID != id {
			courses = append(courses, c)
		}
	}
	m.db.courses = courses

	var syllabi []*model.Syllabus
	for _, s := range m.db.syllabi {
		if s.CourseID != id {
			syllabi = append(syllabi, s)
		}
	}
	m.db.syllabi = syllabi

	var contents []*model.CourseContent
	for _, c := range m.db.contents {
		if c.CourseID != id {
			contents = append(contents, c)
		}
	}
	m.db.contents = contents
	return nil
}

func (m *mockCourseRepo) SetSyllabus(_ context.Context, courseID, syllabusID string) error {
	c := m.db.course(courseID)
	if c == nil {
		return gorm.ErrRecordNotFound
	}
	id := syllabusID
	c.SyllabusID = &id
	return nil
}

func (m *mockCourseRepo) ClearSyllabus(_ context.Context, courseID, syllabusID string) error {
	if c := m.db.course(courseID); c != nil && c.SyllabusID != nil && *c.SyllabusID == syllabusID {
		c.SyllabusID = nil
	}
	return nil
}

// ── Mock SyllabusRepository ──

type mockSyllabusRepo struct{ db *memDB }

func (m *mockSyllabusRepo) Create(_ context.Context, s *model.Syllabus) error {
	if s.ID == "" {
		s.ID = newID()
	}
	now := m.db.tick()
	s.CreatedAt, s.UpdatedAt = now, now
	m.db.syllabi = append(m.db.syllabi, s)
	return nil
}

func (m *mockSyllabusRepo) GetByID(_ context.Context, id string) (*model.Syllabus, error) {
	for _, s := range m.db.syllabi {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSyllabusRepo) GetLatestByCourse(_ context.Context, courseID string) (*model.Syllabus, error) {
	var latest *model.Syllabus
	for _, s := range m.db.syllabi {
		if s.CourseID == courseID && (latest == nil || s.CreatedAt.After(latest.CreatedAt)) {
			latest = s
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (m *mockSyllabusRepo) ListByCourse(_ context.Context, courseID string) ([]model.Syllabus, error) {
	var out []model.Syllabus
	for _, s := range m.db.syllabi {
		if s.CourseID == courseID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockSyllabusRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Syllabus, error) {
	var out []model.Syllabus
	for _, s := range m.db.syllabi {
		if c := m.db.course(s.CourseID); c != nil && c.CreatedBy == ownerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockSyllabusRepo) Delete(_ context.Context, id string) error {
	var out []*model.Syllabus
	for _, s := range m.db.syllabi {
		if s.ID != id {
			out = append(out, s)
		}
	}
	m.db.syllabi = out
	return nil
}

// ── Mock CourseContentRepository ──

type mockCourseContentRepo struct{ db *memDB }

func (m *mockCourseContentRepo) Create(_ context.Context, c *model.CourseContent) error {
	if c.ID == "" {
		c.ID = newID()
	}
	now := m.db.tick()
	c.CreatedAt, c.UpdatedAt = now, now
	m.db.contents = append(m.db.contents, c)
	return nil
}

func (m *mockCourseContentRepo) GetByID(_ context.Context, id string) (*model.CourseContent, error) {
	for _, c := range m.db.contents {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseContentRepo) ListByCourse(_ context.Context, courseID string) ([]model.CourseContent, error) {
	var out []model.CourseContent
	for _, c := range m.db.contents {
		if c.CourseID == courseID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCourseContentRepo) Delete(_ context.Context, id string) error {
	var out []*model.CourseContent
	for _, c := range m.db.contents {
		if c.ID != id {
			out = append(out, c)
		}
	}
	m.db.contents = out
	return nil
}

// ── Mock AssessmentRepository ──

type mockAssessmentRepo struct{ db *memDB }

func (m *mockAssessmentRepo) Create(_ context.Context, a *model.Assessment) error {
	if a.ID == "" {
		a.ID = newID()
	}
	for i := range a.Questions {
		a.Questions[i].ID = newID()
		a.Questions[i].AssessmentID = a.ID
	}
	now := m.db.tick()
	a.CreatedAt, a.UpdatedAt = now, now
	m.db.assessments = append(m.db.assessments, a)
	return nil
}

func (m *mockAssessmentRepo) GetByID(_ context.Context, id string) (*model.Assessment, error) {
	if a := m.db.assessment(id); a != nil {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssessmentRepo) ListByCourse(_ context.Context, courseID string) ([]model.Assessment, error) {
	var out []model.Assessment
	for _, a := range m.db.assessments {
		if a.CourseID == courseID {
			out = append(out, *a)
		}
	}
	return out, nil
}

// ── Mock SubmissionRepository ──

type mockSubmissionRepo struct{ db *memDB }

func (m *mockSubmissionRepo) Create(_ context.Context, s *model.StudentSubmission) error {
	for _, existing := range m.db.submissions {
		if existing.StudentID == s.StudentID && existing.AssessmentID == s.AssessmentID {
			return uniqueErr("uk_student_submissions_pair")
		}
	}
	if s.ID == "" {
		s.ID = newID()
	}
	for i := range s.Answers {
		s.Answers[i].ID = newID()
		s.Answers[i].SubmissionID = s.ID
	}
	s.SubmittedAt = m.db.tick()
	m.db.submissions = append(m.db.submissions, s)
	return nil
}

func (m *mockSubmissionRepo) detailed(s *model.StudentSubmission) model.StudentSubmission {
	out := *s
	out.Student = m.db.user(s.StudentID)
	out.Assessment = m.db.assessment(s.AssessmentID)
	return out
}

func (m *mockSubmissionRepo) ListByAssessment(_ context.Context, assessmentID string) ([]model.StudentSubmission, error) {
	var out []model.StudentSubmission
	for _, s := range m.db.submissions {
		if s.AssessmentID == assessmentID {
			out = append(out, m.detailed(s))
		}
	}
	return out, nil
}

func (m *mockSubmissionRepo) ListByCourse(_ context.Context, courseID string) ([]model.StudentSubmission, error) {
	var out []model.StudentSubmission
	for _, s := range m.db.submissions {
		if a := m.db.assessment(s.AssessmentID); a != nil && a.CourseID == courseID {
			out = append(out, m.detailed(s))
		}
	}
	return out, nil
}

func (m *mockSubmissionRepo) ListByStudent(_ context.Context, studentID, ownerID string) ([]model.StudentSubmission, error) {
	var out []model.StudentSubmission
	for _, s := range m.db.submissions {
		if s.StudentID != studentID {
			continue
		}
		if ownerID != "" {
			a := m.db.assessment(s.AssessmentID)
			if a == nil {
				continue
			}
			if c := m.db.course(a.CourseID); c == nil || c.CreatedBy != ownerID {
				continue
			}
		}
		out = append(out, m.detailed(s))
	}
	return out, nil
}

// ── Mock ProjectRepository ──

type mockProjectRepo struct{ db *memDB }

func (m *mockProjectRepo) Create(_ context.Context, p *model.Project) error {
	if p.ID == "" {
		p.ID = newID()
	}
	now := m.db.tick()
	p.CreatedAt, p.UpdatedAt = now, now
	m.db.projects = append(m.db.projects, p)
	return nil
}

func (m *mockProjectRepo) GetByID(_ context.Context, id string) (*model.Project, error) {
	if p := m.db.project(id); p != nil {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProjectRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Project, error) {
	var out []model.Project
	for _, p := range m.db.projects {
		if p.CreatedBy == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProjectRepo) ListByCourse(_ context.Context, courseID, category string) ([]model.Project, error) {
	var out []model.Project
	for _, p := range m.db.projects {
		if p.CourseID == courseID && (category == "" || p.Category == category) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProjectRepo) Update(_ context.Context, p *model.Project) error {
	p.UpdatedAt = m.db.tick()
	return nil
}

func (m *mockProjectRepo) Delete(_ context.Context, id string) error {
	var out []*model.Project
	for _, p := range m.db.projects {
		if p.ID != id {
			out = append(out, p)
		}
	}
	m.db.projects = out
	return nil
}

// ── Mock ProjectSubmissionRepository ──

type mockProjectSubmissionRepo struct{ db *memDB }

func (m *mockProjectSubmissionRepo) detailed(s *model.ProjectSubmission) *model.ProjectSubmission {
	s.Project = m.db.project(s.ProjectID)
	s.Student = m.db.user(s.StudentID)
	return s
}

func (m *mockProjectSubmissionRepo) Create(_ context.Context, s *model.ProjectSubmission) error {
	for _, existing := range m.db.projectSubs {
		if existing.ProjectID == s.ProjectID && existing.StudentID == s.StudentID {
			return uniqueErr("uk_project_submissions_pair")
		}
	}
	if s.ID == "" {
		s.ID = newID()
	}
	now := m.db.tick()
	s.SubmittedAt, s.CreatedAt, s.UpdatedAt = now, now, now
	m.db.projectSubs = append(m.db.projectSubs, s)
	return nil
}

func (m *mockProjectSubmissionRepo) GetByID(_ context.Context, id string) (*model.ProjectSubmission, error) {
	for _, s := range m.db.projectSubs {
		if s.ID == id {
			return m.detailed(s), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProjectSubmissionRepo) GetByProjectAndStudent(_ context.Context, projectID, studentID string) (*model.ProjectSubmission, error) {
	for _, s := range m.db.projectSubs {
		if s.ProjectID == projectID && s.StudentID == studentID {
			return m.detailed(s), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProjectSubmissionRepo) list(keep func(*model.ProjectSubmission) bool) []model.ProjectSubmission {
	var out []model.ProjectSubmission
	for _, s := range m.db.projectSubs {
		if keep(s) {
			out = append(out, *m.detailed(s))
		}
	}
	return out
}

func (m *mockProjectSubmissionRepo) ListByProject(_ context.Context, projectID string) ([]model.ProjectSubmission, error) {
	return m.list(func(s *model.ProjectSubmission) bool { return s.ProjectID == projectID }), nil
}

func (m *mockProjectSubmissionRepo) ListByStudent(_ context.Context, studentID, ownerID string) ([]model.ProjectSubmission, error) {
	return m.list(func(s *model.ProjectSubmission) bool {
		if s.StudentID != studentID {
			return false
		}
		if ownerID == "" {
			return true
		}
		p := m.db.project(s.ProjectID)
		return p != nil && p.CreatedBy == ownerID
	}), nil
}

func (m *mockProjectSubmissionRepo) ListByCourse(_ context.Context, courseID string) ([]model.ProjectSubmission, error) {
	return m.list(func(s *model.ProjectSubmission) bool {
		p := m.db.project(s.ProjectID)
		return p != nil && p.CourseID == courseID
	}), nil
}

func (m *mockProjectSubmissionRepo) Update(_ context.Context, s *model.ProjectSubmission) error {
	s.UpdatedAt = m.db.tick()
	return nil
}

func (m *mockProjectSubmissionRepo) Delete(_ context.Context, id string) error {
	var out []*model.ProjectSubmission
	for _, s := range m.db.projectSubs {
		if s.ID != id {
			out = append(out, s)
		}
	}
	m.db.projectSubs = out
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct{ db *memDB }

// Upsert keys on (student, date, course) like the ON CONFLICT clause.
func (m *mockAttendanceRepo) Upsert(_ context.Context, a *model.Attendance) error {
	now := m.db.tick()
	for _, existing := range m.db.attendances {
		if existing.StudentID == a.StudentID && existing.CourseID == a.CourseID && existing.Date.Equal(a.Date) {
			existing.Status = a.Status
			existing.GroomingStatus = a.GroomingStatus
			existing.Remarks = a.Remarks
			existing.MarkedBy = a.MarkedBy
			existing.UpdatedAt = now
			a.ID = existing.ID
			return nil
		}
	}
	if a.ID == "" {
		a.ID = newID()
	}
	a.CreatedAt, a.UpdatedAt = now, now
	stored := *a
	m.db.attendances = append(m.db.attendances, &stored)
	return nil
}

func (m *mockAttendanceRepo) GetByID(_ context.Context, id string) (*model.Attendance, error) {
	for _, a := range m.db.attendances {
		if a.ID == id {
			a.Student = m.db.user(a.StudentID)
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) list(keep func(*model.Attendance) bool) []model.Attendance {
	var out []model.Attendance
	for _, a := range m.db.attendances {
		if keep(a) {
			cp := *a
			cp.Student = m.db.user(a.StudentID)
			out = append(out, cp)
		}
	}
	return out
}

func (m *mockAttendanceRepo) ListByDateAndCourse(_ context.Context, date time.Time, courseID string) ([]model.Attendance, error) {
	return m.list(func(a *model.Attendance) bool { return a.CourseID == courseID && a.Date.Equal(date) }), nil
}

func (m *mockAttendanceRepo) ListByStudent(_ context.Context, f repository.AttendanceFilter) ([]model.Attendance, error) {
	return m.list(func(a *model.Attendance) bool {
		if a.StudentID != f.StudentID {
			return false
		}
		if f.CourseID != "" && a.CourseID != f.CourseID {
			return false
		}
		if f.OwnerID != "" {
			if c := m.db.course(a.CourseID); c == nil || c.CreatedBy != f.OwnerID {
				return false
			}
		}
		if f.From != nil && a.Date.Before(*f.From) {
			return false
		}
		if f.To != nil && a.Date.After(*f.To) {
			return false
		}
		return true
	}), nil
}

func (m *mockAttendanceRepo) ListByCourse(_ context.Context, courseID string) ([]model.Attendance, error) {
	return m.list(func(a *model.Attendance) bool { return a.CourseID == courseID }), nil
}

func (m *mockAttendanceRepo) CountByStatus(_ context.Context, courseID string) ([]repository.StatusCount, error) {
	counts := map[string]int64{}
	for _, a := range m.db.attendances {
		if a.CourseID == courseID {
			counts[a.Status]++
		}
	}
	var out []repository.StatusCount
	for status, n := range counts {
		out = append(out, repository.StatusCount{Status: status, Count: n})
	}
	return out, nil
}

func (m *mockAttendanceRepo) Update(_ context.Context, a *model.Attendance) error {
	a.UpdatedAt = m.db.tick()
	return nil
}

func (m *mockAttendanceRepo) Delete(_ context.Context, id string) error {
	var out []*model.Attendance
	for _, a := range m.db.attendances {
		if a.ID != id {
			out = append(out, a)
		}
	}
	m.db.attendances = out
	return nil
}

// ── Mock ProgressRepository ──

type mockProgressRepo struct{ db *memDB }

func (m *mockProgressRepo) Create(_ context.Context, p *model.Progress) error {
	for _, existing := range m.db.progresses {
		if existing.UserID == p.UserID && existing.CourseID == p.CourseID {
			return uniqueErr("uk_progresses_user_course")
		}
	}
	if p.ID == "" {
		p.ID = newID()
	}
	for i := range p.Days {
		p.Days[i].ID = newID()
		p.Days[i].ProgressID = p.ID
	}
	now := m.db.tick()
	p.CreatedAt, p.UpdatedAt = now, now
	m.db.progresses = append(m.db.progresses, p)
	return nil
}

func (m *mockProgressRepo) GetByUserAndCourse(_ context.Context, userID, courseID string) (*model.Progress, error) {
	for _, p := range m.db.progresses {
		if p.UserID == userID && p.CourseID == courseID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProgressRepo) MarkDayComplete(_ context.Context, progressID string, dayIndex int) (bool, error) {
	for _, p := range m.db.progresses {
		if p.ID != progressID {
			continue
		}
		for i := range p.Days {
			if p.Days[i].DayIndex == dayIndex {
				p.Days[i].Completed = true
				return true, nil
			}
		}
	}
	return false, nil
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct{ db *memDB }

func (m *mockEnrollmentRepo) Create(_ context.Context, e *model.Enrollment) error {
	for _, existing := range m.db.enrollments {
		if existing.UserID == e.UserID && existing.CourseID == e.CourseID {
			return uniqueErr("uk_enrollments_user_course")
		}
	}
	if e.ID == "" {
		e.ID = newID()
	}
	if e.EnrolledAt.IsZero() {
		e.EnrolledAt = m.db.tick()
	}
	m.db.enrollments = append(m.db.enrollments, e)
	return nil
}

func (m *mockEnrollmentRepo) GetByID(_ context.Context, id string) (*model.Enrollment, error) {
	for _, e := range m.db.enrollments {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnrollmentRepo) GetByUserAndCourse(_ context.Context, userID, courseID string) (*model.Enrollment, error) {
	for _, e := range m.db.enrollments {
		if e.UserID == userID && e.CourseID == courseID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnrollmentRepo) ListByUser(_ context.Context, userID string) ([]model.Enrollment, error) {
	var out []model.Enrollment
	for _, e := range m.db.enrollments {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockEnrollmentRepo) UpsertDay(_ context.Context, day *model.EnrollmentDay) error {
	for _, e := range m.db.enrollments {
		if e.ID != day.EnrollmentID {
			continue
		}
		for i := range e.Days {
			if e.Days[i].Date.Equal(day.Date) {
				e.Days[i].Status = day.Status
				e.Days[i].Notes = day.Notes
				e.Days[i].UpdatedAt = day.UpdatedAt
				day.ID = e.Days[i].ID
				return nil
			}
		}
		day.ID = newID()
		e.Days = append(e.Days, *day)
		sort.Slice(e.Days, func(i, j int) bool { return e.Days[i].Date.Before(e.Days[j].Date) })
		return nil
	}
	return gorm.ErrRecordNotFound
}

// ── Mock Storage ──

type mockStorage struct {
	objects   map[string][]byte
	deleted   []string
	putErr    error
	deleteErr error
}

func newMockStorage() *mockStorage {
	return &mockStorage{objects: map[string][]byte{}}
}

func (m *mockStorage) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	if m.putErr != nil {
		return "", m.putErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	m.objects[key] = buf.Bytes()
	return "https://files.test/" + key, nil
}

func (m *mockStorage) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.objects, key)
	return nil
}

var errBoom = errors.New("boom")

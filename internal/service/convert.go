package service

import (
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
)

func toUserResponse(u *model.User) dto.UserResponse {
	inst := u.Institution.Data()
	return dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Phone:       u.Phone,
		StudentID:   u.StudentID,
		TrainerName: u.TrainerName,
		Institution: dto.InstitutionPayload{Name: inst.Name, Address: inst.Address},
		JoiningDate: u.JoiningDate,
		CreatedAt:   u.CreatedAt,
	}
}

func toStudentBrief(u *model.User) *dto.StudentBrief {
	if u == nil {
		return nil
	}
	return &dto.StudentBrief{ID: u.ID, Name: u.Name, Email: u.Email, StudentID: u.StudentID}
}

func toCourseResponse(c *model.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:           c.ID,
		Title:        c.Title,
		Duration:     c.Duration,
		CourseUILink: c.CourseUILink,
		SyllabusID:   c.SyllabusID,
		CreatedBy:    c.CreatedBy,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toCourseResponses(list []model.Course) []dto.CourseResponse {
	out := make([]dto.CourseResponse, 0, len(list))
	for i := range list {
		out = append(out, toCourseResponse(&list[i]))
	}
	return out
}

func toSyllabusResponse(s *model.Syllabus) dto.SyllabusResponse {
	return dto.SyllabusResponse{
		ID:         s.ID,
		CourseID:   s.CourseID,
		Filename:   s.Filename,
		FileURL:    s.FileURL,
		FileType:   s.FileType,
		FileSize:   s.FileSize,
		UploadedBy: s.UploadedBy,
		CreatedAt:  s.CreatedAt,
	}
}

func toCourseContentResponse(c *model.CourseContent) dto.CourseContentResponse {
	return dto.CourseContentResponse{
		ID:         c.ID,
		CourseID:   c.CourseID,
		Title:      c.Title,
		FileURL:    c.FileURL,
		FileType:   c.FileType,
		FileSize:   c.FileSize,
		UploadedBy: c.UploadedBy,
		CreatedAt:  c.CreatedAt,
	}
}

// toAssessmentResponse hides correct answers unless withAnswers is set.
func toAssessmentResponse(a *model.Assessment, withAnswers bool) dto.AssessmentResponse {
	questions := make([]dto.QuestionResponse, 0, len(a.Questions))
	for _, q := range a.Questions {
		qr := dto.QuestionResponse{
			ID:           q.ID,
			QuestionType: q.QuestionType,
			QuestionText: q.QuestionText,
			Options:      []string(q.Options),
		}
		if qr.Options == nil {
			qr.Options = []string{}
		}
		if withAnswers {
			qr.CorrectAnswer = q.CorrectAnswer
		}
		questions = append(questions, qr)
	}
	return dto.AssessmentResponse{
		ID:        a.ID,
		CourseID:  a.CourseID,
		Topic:     a.Topic,
		CreatedBy: a.CreatedBy,
		Questions: questions,
		CreatedAt: a.CreatedAt,
	}
}

func toSubmissionResponse(s *model.StudentSubmission) dto.SubmissionResponse {
	answers := make([]dto.AnswerResponse, 0, len(s.Answers))
	for _, a := range s.Answers {
		answers = append(answers, dto.AnswerResponse{
			QuestionID:     a.QuestionID,
			SelectedAnswer: a.SelectedAnswer,
			IsCorrect:      a.IsCorrect,
		})
	}
	resp := dto.SubmissionResponse{
		ID:           s.ID,
		StudentID:    s.StudentID,
		Student:      toStudentBrief(s.Student),
		AssessmentID: s.AssessmentID,
		Answers:      answers,
		Score:        dto.ScoreResponse{Correct: s.CorrectCount(), Total: len(s.Answers)},
		SubmittedAt:  s.SubmittedAt,
	}
	if s.Assessment != nil {
		resp.Topic = s.Assessment.Topic
		resp.CourseID = s.Assessment.CourseID
	}
	return resp
}

func toSubmissionResponses(list []model.StudentSubmission) []dto.SubmissionResponse {
	out := make([]dto.SubmissionResponse, 0, len(list))
	for i := range list {
		out = append(out, toSubmissionResponse(&list[i]))
	}
	return out
}

func toProjectResponse(p *model.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:           p.ID,
		CourseID:     p.CourseID,
		CreatedBy:    p.CreatedBy,
		Title:        p.Title,
		Category:     p.Category,
		Description:  p.Description,
		Duration:     p.Duration,
		MaxGroupSize: p.MaxGroupSize,
		Resources:    p.Resources,
		Requirements: p.Requirements,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProjectResponses(list []model.Project) []dto.ProjectResponse {
	out := make([]dto.ProjectResponse, 0, len(list))
	for i := range list {
		out = append(out, toProjectResponse(&list[i]))
	}
	return out
}

func toProjectSubmissionResponse(s *model.ProjectSubmission) dto.ProjectSubmissionResponse {
	resp := dto.ProjectSubmissionResponse{
		ID:          s.ID,
		ProjectID:   s.ProjectID,
		StudentID:   s.StudentID,
		Student:     toStudentBrief(s.Student),
		Title:       s.Title,
		GithubLink:  s.GithubLink,
		LiveLink:    s.LiveLink,
		Description: s.Description,
		Status:      s.Status,
		SubmittedAt: s.SubmittedAt,
	}
	if s.Project != nil {
		resp.Project = &dto.ProjectBrief{
			ID:       s.Project.ID,
			Title:    s.Project.Title,
			Category: s.Project.Category,
			CourseID: s.Project.CourseID,
		}
	}
	return resp
}

func toProjectSubmissionResponses(list []model.ProjectSubmission) []dto.ProjectSubmissionResponse {
	out := make([]dto.ProjectSubmissionResponse, 0, len(list))
	for i := range list {
		out = append(out, toProjectSubmissionResponse(&list[i]))
	}
	return out
}

func toAttendanceResponse(a *model.Attendance) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:             a.ID,
		StudentID:      a.StudentID,
		Student:        toStudentBrief(a.Student),
		CourseID:       a.CourseID,
		Date:           a.Date.Format(model.DateLayout),
		Status:         a.Status,
		GroomingStatus: a.GroomingStatus,
		Remarks:        a.Remarks,
		MarkedBy:       a.MarkedBy,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toAttendanceResponses(list []model.Attendance) []dto.AttendanceResponse {
	out := make([]dto.AttendanceResponse, 0, len(list))
	for i := range list {
		out = append(out, toAttendanceResponse(&list[i]))
	}
	return out
}

func toProgressResponse(p *model.Progress) dto.ProgressResponse {
	days := make([]dto.ProgressDayResponse, 0, len(p.Days))
	completed := 0
	for _, d := range p.Days {
		if d.Completed {
			completed++
		}
		days = append(days, dto.ProgressDayResponse{
			DayIndex:  d.DayIndex,
			Content:   d.Content,
			Task:      d.Task,
			Completed: d.Completed,
		})
	}
	return dto.ProgressResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		CourseID:      p.CourseID,
		Days:          days,
		CompletedDays: completed,
		TotalDays:     len(days),
		CreatedAt:     p.CreatedAt,
	}
}

func toEnrollmentResponse(e *model.Enrollment) dto.EnrollmentResponse {
	days := make([]dto.EnrollmentDayResponse, 0, len(e.Days))
	for _, d := range e.Days {
		days = append(days, dto.EnrollmentDayResponse{
			Date:   d.Date.Format(model.DateLayout),
			Status: d.Status,
			Notes:  d.Notes,
		})
	}
	return dto.EnrollmentResponse{
		ID:         e.ID,
		CourseID:   e.CourseID,
		EnrolledAt: e.EnrolledAt,
		Days:       days,
	}
}

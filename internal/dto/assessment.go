package dto

import "time"

// QuestionRequest one question of a new assessment.
type QuestionRequest struct {
	QuestionType  string   `json:"questionType" binding:"required,oneof=mcq shortAnswer"`
	QuestionText  string   `json:"questionText" binding:"required"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer" binding:"required"`
}

// CreateAssessmentRequest POST /api/assessments
type CreateAssessmentRequest struct {
	CourseID  string            `json:"courseId" binding:"required,uuid"`
	Topic     string            `json:"topic" binding:"required,max=200"`
	Questions []QuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

// SubmitAssessmentRequest POST /api/assessment/:id/submit
type SubmitAssessmentRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// QuestionResponse question payload. CorrectAnswer is blank for students.
type QuestionResponse struct {
	ID            string   `json:"id"`
	QuestionType  string   `json:"questionType"`
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
}

// AssessmentResponse assessment payload.
type AssessmentResponse struct {
	ID        string             `json:"id"`
	CourseID  string             `json:"courseId"`
	Topic     string             `json:"topic"`
	CreatedBy string             `json:"createdBy"`
	Questions []QuestionResponse `json:"questions"`
	CreatedAt time.Time          `json:"createdAt"`
}

// AnswerResponse one graded answer.
type AnswerResponse struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer string `json:"selectedAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
}

// ScoreResponse correct out of total, derived from stored flags.
type ScoreResponse struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// SubmissionResponse assessment submission payload.
type SubmissionResponse struct {
	ID           string           `json:"id"`
	StudentID    string           `json:"studentId"`
	Student      *StudentBrief    `json:"student,omitempty"`
	AssessmentID string           `json:"assessmentId"`
	Topic        string           `json:"topic,omitempty"`
	CourseID     string           `json:"courseId,omitempty"`
	Answers      []AnswerResponse `json:"answers"`
	Score        ScoreResponse    `json:"score"`
	SubmittedAt  time.Time        `json:"submittedAt"`
}

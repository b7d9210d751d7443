package service

import "github.com/P-MUGILVANNAN/Student-Tracking/internal/model"

// Grade evaluates answers against every question of the assessment, in
// question order. A question without an answer is stored as an empty,
// incorrect answer; answers keyed by unknown question ids are ignored.
// Matching is exact string equality.
func Grade(questions []model.AssessmentQuestion, answers map[string]string) []model.SubmissionAnswer {
	graded := make([]model.SubmissionAnswer, 0, len(questions))
	for _, q := range questions {
		selected, ok := answers[q.ID]
		graded = append(graded, model.SubmissionAnswer{
			QuestionID:     q.ID,
			SelectedAnswer: selected,
			IsCorrect:      ok && selected == q.CorrectAnswer,
		})
	}
	return graded
}

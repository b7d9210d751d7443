package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
)

func createSampleProject(t *testing.T, f *fixture, category string) *dto.ProjectResponse {
	t.Helper()
	resp, err := f.svc.Project.Create(context.Background(), actorOf(f.admin), &dto.CreateProjectRequest{
		CourseID:    f.course.ID,
		Title:       "Portfolio Site",
		Category:    category,
		Description: "Build a personal portfolio",
		Duration:    "2-weeks",
	})
	require.NoError(t, err)
	return resp
}

func TestProject_CreateDefaultsAndScope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := createSampleProject(t, f, "html-css")
	assert.Equal(t, 1, p.MaxGroupSize)
	assert.Equal(t, f.admin.ID, p.CreatedBy)

	_, err := f.svc.Project.Create(ctx, actorOf(f.other), &dto.CreateProjectRequest{
		CourseID: f.course.ID, Title: "x", Category: "html-css", Description: "x", Duration: "1-week",
	})
	assert.ErrorIs(t, err, ErrCourseNotFound)

	title := "Renamed"
	_, err = f.svc.Project.Update(ctx, actorOf(f.other), p.ID, &dto.UpdateProjectRequest{Title: &title})
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.ErrorIs(t, f.svc.Project.Delete(ctx, actorOf(f.other), p.ID), ErrProjectNotFound)

	updated, err := f.svc.Project.Update(ctx, actorOf(f.admin), p.ID, &dto.UpdateProjectRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)

	got, err := f.svc.Project.Get(ctx, actorOf(f.student), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
}

func TestProject_ListByCourseAndCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	createSampleProject(t, f, "html-css")
	createSampleProject(t, f, "javascript")

	all, err := f.svc.Project.ListByCourse(ctx, actorOf(f.student), f.course.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	js, err := f.svc.Project.ListByCourse(ctx, actorOf(f.admin), f.course.ID, "javascript")
	require.NoError(t, err)
	require.Len(t, js, 1)
	assert.Equal(t, "javascript", js[0].Category)

	_, err = f.svc.Project.ListByCourse(ctx, actorOf(f.admin), f.course.ID, "cobol")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func submitProject(f *fixture, student *model.User, projectID string) (*dto.ProjectSubmissionResponse, error) {
	return f.svc.ProjectSubmission.Create(context.Background(), actorOf(student), &dto.CreateProjectSubmissionRequest{
		ProjectID:   projectID,
		GithubLink:  "https://github.com/asha/portfolio",
		Description: "done",
	})
}

func TestProjectSubmission_OnePerPair(t *testing.T) {
	f := newFixture(t)
	p := createSampleProject(t, f, "html-css")

	sub, err := submitProject(f, f.student, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Portfolio Site", sub.Title)
	assert.Equal(t, model.SubmissionSubmitted, sub.Status)

	_, err = submitProject(f, f.student, p.ID)
	assert.ErrorIs(t, err, ErrProjectAlreadySubmitted)
	assert.Len(t, f.db.projectSubs, 1)

	_, err = submitProject(f, f.student, newID())
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectSubmission_Access(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := createSampleProject(t, f, "html-css")
	sub, err := submitProject(f, f.student, p.ID)
	require.NoError(t, err)
	intruder := f.addUser(model.RoleStudent, "x@test.com", "STU-999", "Priya")

	mine, err := f.svc.ProjectSubmission.GetMine(ctx, actorOf(f.student), p.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, mine.ID)

	_, err = f.svc.ProjectSubmission.GetMine(ctx, actorOf(intruder), p.ID)
	assert.ErrorIs(t, err, ErrProjectSubmissionNotFound)

	_, err = f.svc.ProjectSubmission.Get(ctx, actorOf(intruder), sub.ID)
	assert.ErrorIs(t, err, ErrNoPermission)

	_, err = f.svc.ProjectSubmission.Get(ctx, actorOf(f.other), sub.ID)
	assert.ErrorIs(t, err, ErrProjectSubmissionNotFound)

	byProject, err := f.svc.ProjectSubmission.ListByProject(ctx, actorOf(f.admin), p.ID)
	require.NoError(t, err)
	assert.Len(t, byProject, 1)

	_, err = f.svc.ProjectSubmission.ListByProject(ctx, actorOf(f.other), p.ID)
	assert.ErrorIs(t, err, ErrProjectNotFound)

	byCourse, err := f.svc.ProjectSubmission.ListByCourse(ctx, actorOf(f.admin), f.course.ID)
	require.NoError(t, err)
	assert.Len(t, byCourse, 1)

	byStudent, err := f.svc.ProjectSubmission.ListByStudent(ctx, actorOf(f.other), f.student.ID)
	require.NoError(t, err)
	assert.Empty(t, byStudent, "other admin sees nothing outside their projects")

	_, err = f.svc.ProjectSubmission.ListByStudent(ctx, actorOf(intruder), f.student.ID)
	assert.ErrorIs(t, err, ErrNoPermission)
}

func TestProjectSubmission_UpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := createSampleProject(t, f, "html-css")
	sub, err := submitProject(f, f.student, p.ID)
	require.NoError(t, err)

	live := "https://asha.dev"
	_, err = f.svc.ProjectSubmission.Update(ctx, actorOf(f.admin), sub.ID, &dto.UpdateProjectSubmissionRequest{LiveLink: &live})
	assert.ErrorIs(t, err, ErrNoPermission, "only the author edits")

	updated, err := f.svc.ProjectSubmission.Update(ctx, actorOf(f.student), sub.ID, &dto.UpdateProjectSubmissionRequest{LiveLink: &live})
	require.NoError(t, err)
	assert.Equal(t, live, updated.LiveLink)

	require.NoError(t, f.svc.ProjectSubmission.Delete(ctx, actorOf(f.admin), sub.ID))
	assert.Empty(t, f.db.projectSubs)
}

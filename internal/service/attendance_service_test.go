package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
)

func markRequest(f *fixture, date, status string) *dto.MarkAttendanceRequest {
	return &dto.MarkAttendanceRequest{
		StudentID:      f.student.ID,
		Date:           date,
		CourseID:       f.course.ID,
		Status:         status,
		GroomingStatus: model.AttendancePresent,
	}
}

func TestMarkAttendance_IdempotentPerKey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Attendance.Mark(ctx, actorOf(f.admin), markRequest(f, "2024-05-01", model.AttendancePresent))
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", first.Date)

	second, err := f.svc.Attendance.Mark(ctx, actorOf(f.admin), markRequest(f, "2024-05-01", model.AttendanceLate))
	require.NoError(t, err)

	require.Len(t, f.db.attendances, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, model.AttendanceLate, second.Status)
	assert.Equal(t, model.AttendanceLate, f.db.attendances[0].Status)
	require.NotNil(t, second.MarkedBy)
	assert.Equal(t, f.admin.ID, *second.MarkedBy)

	_, err = f.svc.Attendance.Mark(ctx, actorOf(f.admin), markRequest(f, "2024-05-02", model.AttendanceAbsent))
	require.NoError(t, err)
	assert.Len(t, f.db.attendances, 2)
}

func TestMarkAttendance_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Attendance.Mark(ctx, actorOf(f.admin), markRequest(f, "01-05-2024", model.AttendancePresent))
	assert.ErrorIs(t, err, ErrInvalidDate)

	req := markRequest(f, "2024-05-01", model.AttendancePresent)
	req.StudentID = newID()
	_, err = f.svc.Attendance.Mark(ctx, actorOf(f.admin), req)
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = f.svc.Attendance.Mark(ctx, actorOf(f.other), markRequest(f, "2024-05-01", model.AttendancePresent))
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestMarkBulk_PerStudentOutcome(t *testing.T) {
	f := newFixture(t)
	ghost := newID()

	results, err := f.svc.Attendance.MarkBulk(context.Background(), actorOf(f.admin), &dto.BulkAttendanceRequest{
		Date:     "2024-05-01",
		CourseID: f.course.ID,
		AttendanceRecords: []dto.BulkAttendanceRecord{
			{StudentID: f.student.ID, Status: model.AttendancePresent, GroomingStatus: model.AttendancePresent},
			{StudentID: ghost, Status: model.AttendanceAbsent, GroomingStatus: model.AttendanceAbsent},
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].Success)
	require.NotNil(t, results[0].Attendance)
	assert.Equal(t, f.student.ID, results[0].Attendance.StudentID)

	assert.False(t, results[1].Success)
	assert.Equal(t, ghost, results[1].StudentID)
	assert.Equal(t, ErrStudentNotFound.Error(), results[1].Error)
	assert.Len(t, f.db.attendances, 1)
}

func TestAttendanceQueries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, d := range []string{"2024-05-01", "2024-05-02", "2024-05-03"} {
		_, err := f.svc.Attendance.Mark(ctx, actorOf(f.admin), markRequest(f, d, model.AttendancePresent))
		require.NoError(t, err)
	}

	byDate, err := f.svc.Attendance.ListByDateAndCourse(ctx, actorOf(f.admin), "2024-05-02", f.course.ID)
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, f.student.StudentID, byDate[0].Student.StudentID)

	ranged, err := f.svc.Attendance.ListByStudent(ctx, actorOf(f.student), f.student.ID, &dto.AttendanceQuery{
		StartDate: "2024-05-02", EndDate: "2024-05-03",
	})
	require.NoError(t, err)
	assert.Len(t, ranged, 2)

	intruder := f.addUser(model.RoleStudent, "x@test.com", "STU-999", "Priya")
	_, err = f.svc.Attendance.ListByStudent(ctx, actorOf(intruder), f.student.ID, nil)
	assert.ErrorIs(t, err, ErrNoPermission)

	foreign, err := f.svc.Attendance.ListByStudent(ctx, actorOf(f.other), f.student.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, foreign)
}

func TestAttendance_UpdateDeleteScoped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, err := f.svc.Attendance.Mark(ctx, actorOf(f.admin), markRequest(f, "2024-05-01", model.AttendancePresent))
	require.NoError(t, err)

	holiday := model.AttendanceHoliday
	_, err = f.svc.Attendance.Update(ctx, actorOf(f.other), a.ID, &dto.UpdateAttendanceRequest{Status: &holiday})
	assert.ErrorIs(t, err, ErrAttendanceNotFound)

	updated, err := f.svc.Attendance.Update(ctx, actorOf(f.admin), a.ID, &dto.UpdateAttendanceRequest{Status: &holiday})
	require.NoError(t, err)
	assert.Equal(t, model.AttendanceHoliday, updated.Status)

	assert.ErrorIs(t, f.svc.Attendance.Delete(ctx, actorOf(f.other), a.ID), ErrAttendanceNotFound)
	require.NoError(t, f.svc.Attendance.Delete(ctx, actorOf(f.admin), a.ID))
	assert.Empty(t, f.db.attendances)
}

func TestAttendanceSummary_AllStatuses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Attendance.Mark(ctx, actorOf(f.admin), markRequest(f, "2024-05-01", model.AttendancePresent))
	require.NoError(t, err)
	_, err = f.svc.Attendance.Mark(ctx, actorOf(f.admin), markRequest(f, "2024-05-02", model.AttendanceLate))
	require.NoError(t, err)

	sum, err := f.svc.Attendance.Summary(ctx, actorOf(f.admin), f.course.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), sum.Total)
	assert.Equal(t, []dto.StatusCount{
		{Status: model.AttendancePresent, Count: 1},
		{Status: model.AttendanceAbsent, Count: 0},
		{Status: model.AttendanceLate, Count: 1},
		{Status: model.AttendanceHoliday, Count: 0},
	}, sum.Counts)
}

func TestAttendanceExport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Attendance.Mark(ctx, actorOf(f.admin), markRequest(f, "2024-05-01", model.AttendancePresent))
	require.NoError(t, err)

	buf, filename, err := f.svc.Attendance.Export(ctx, actorOf(f.admin), f.course.ID)
	require.NoError(t, err)
	assert.Regexp(t, `^attendance-intro-to-js-\d{8}\.xlsx$`, filename)

	wb, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, exportHeader, rows[0])
	assert.Equal(t, "2024-05-01", rows[1][0])
	assert.Equal(t, f.student.StudentID, rows[1][1])

	summary, err := wb.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.Equal(t, "1", summary[1][2])

	_, _, err = f.svc.Attendance.Export(ctx, actorOf(f.other), f.course.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

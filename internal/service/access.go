package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/repository"
)

// ErrNoPermission a student touching another student's records.
var ErrNoPermission = errors.New("access denied")

// Actor is the authenticated caller.
type Actor struct {
	ID   string
	Role string
}

// IsAdmin reports whether the caller is an admin.
func (a Actor) IsAdmin() bool { return a.Role == model.RoleAdmin }

// IsStudent reports whether the caller is a student.
func (a Actor) IsStudent() bool { return a.Role == model.RoleStudent }

// CanAccess decides access to a resource owned by ownerID.
// Admins only reach what they own. Students may read course material but never write it.
// Callers pass write=true for owner-only reads as well.
func CanAccess(actor Actor, ownerID string, write bool) bool {
	switch actor.Role {
	case model.RoleAdmin:
		return ownerID != "" && actor.ID == ownerID
	case model.RoleStudent:
		return !write
	default:
		return false
	}
}

// courseForActor loads a course and applies CanAccess. A denied or missing
// course both yield ErrCourseNotFound.
func courseForActor(ctx context.Context, repo *repository.Repository, actor Actor, courseID string, write bool) (*model.Course, error) {
	course, err := repo.Course.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if !CanAccess(actor, course.CreatedBy, write) {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

// studentScope resolves whose data a per-student listing may show.
// Students see only themselves; admins see the student within their own courses.
func studentScope(actor Actor, studentID string) (ownerID string, err error) {
	if actor.IsStudent() {
		if actor.ID != studentID {
			return "", ErrNoPermission
		}
		return "", nil
	}
	if actor.IsAdmin() {
		return actor.ID, nil
	}
	return "", ErrNoPermission
}

// remapNotFound swaps ErrCourseNotFound for the child resource's own not-found error.
func remapNotFound(err, notFound error) error {
	if errors.Is(err, ErrCourseNotFound) {
		return notFound
	}
	return err
}

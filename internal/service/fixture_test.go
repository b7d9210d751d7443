package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/P-MUGILVANNAN/Student-Tracking/config"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/repository"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/jwt"
)

const testPassword = "password123"

// fixture is a service aggregate over mocks, seeded with two admins, a
// student of the first admin and a course owned by the first admin.
type fixture struct {
	t       *testing.T
	cfg     *config.Config
	repo    *repository.Repository
	db      *memDB
	store   *mockStorage
	jwtMgr  *jwt.Manager
	svc     *Service
	admin   *model.User
	other   *model.User
	student *model.User
	course  *model.Course
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret-key-for-unit-testing",
			TokenTTL:   365 * 24 * time.Hour,
			BcryptCost: bcrypt.MinCost,
		},
	}
	repo, db := newMockRepository()
	store := newMockStorage()
	jwtMgr := jwt.NewManager(&cfg.Auth)

	f := &fixture{
		t:      t,
		cfg:    cfg,
		repo:   repo,
		db:     db,
		store:  store,
		jwtMgr: jwtMgr,
		svc:    NewService(cfg, repo, jwtMgr, store, nil, zap.NewNop()),
	}
	f.admin = f.addUser(model.RoleAdmin, "admin@test.com", "ADM-0001", "Priya")
	f.other = f.addUser(model.RoleAdmin, "other@test.com", "ADM-0002", "Ravi")
	f.student = f.addUser(model.RoleStudent, "student@test.com", "STU-001", "Priya")
	f.course = f.addCourse(f.admin, "Intro to JS")
	return f
}

func (f *fixture) addUser(role, email, studentID, trainer string) *model.User {
	f.t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		f.t.Fatal(err)
	}
	u := &model.User{
		Name:         "user " + studentID,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		StudentID:    studentID,
		TrainerName:  trainer,
		Institution:  datatypes.NewJSONType(model.Institution{Name: "Test College"}),
	}
	if err := f.repo.User.Create(context.Background(), u); err != nil {
		f.t.Fatal(err)
	}
	return u
}

func (f *fixture) addCourse(owner *model.User, title string) *model.Course {
	f.t.Helper()
	c := &model.Course{Title: title, Duration: "4 weeks", CreatedBy: owner.ID}
	if err := f.repo.Course.Create(context.Background(), c); err != nil {
		f.t.Fatal(err)
	}
	return c
}

func actorOf(u *model.User) Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

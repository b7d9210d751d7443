package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
)

// UserRepository user data access.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByStudentID(ctx context.Context, studentID string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	ListStudentsByTrainer(ctx context.Context, trainerName string) ([]model.User, error)
	ListCourses(ctx context.Context, userID string) ([]model.Course, error)
	AddCourse(ctx context.Context, userID, courseID string) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo creates a UserRepository.
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByStudentID(ctx context.Context, studentID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("student_id = ?", studentID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) ListStudentsByTrainer(ctx context.Context, trainerName string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND trainer_name = ?", model.RoleStudent, trainerName).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepo) ListCourses(ctx context.Context, userID string) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Joins("JOIN user_courses uc ON uc.course_id = courses.id").
		Where("uc.user_id = ?", userID).
		Order("uc.created_at ASC").
		Find(&courses).Error
	return courses, err
}

// AddCourse appends a course to the user's course list; adding it twice is a no-op.
func (r *userRepo) AddCourse(ctx context.Context, userID, courseID string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.UserCourse{UserID: userID, CourseID: courseID}).Error
}

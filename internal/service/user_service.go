package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/config"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/repository"
)

var ErrStudentNotFound = errors.New("student not found")

// ImportStudentRow one parsed row of a roster workbook.
type ImportStudentRow struct {
	Row       int
	Name      string
	Email     string
	StudentID string
	Phone     string
	Password  string
}

// UserService profiles, the admin's student roster and admin bootstrap.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	GetAdminProfile(ctx context.Context, adminID string) (*dto.UserResponse, error)
	UpdateAdminProfile(ctx context.Context, adminID string, req *dto.UpdateAdminProfileRequest) (*dto.UserResponse, error)
	ListStudents(ctx context.Context, actor Actor) ([]dto.UserResponse, error)
	GetStudentDetail(ctx context.Context, actor Actor, studentID string) (*dto.StudentDetailResponse, error)
	ParseImportFile(reader io.Reader) ([]ImportStudentRow, error)
	ImportStudents(ctx context.Context, actor Actor, rows []ImportStudentRow) (*dto.ImportStudentsResponse, error)
	CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.UserResponse, error)
}

type userService struct {
	cfg      *config.Config
	repo     *repository.Repository
	validate *validator.Validate
	logger   *zap.Logger
}

// NewUserService creates a UserService.
func NewUserService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{
		cfg:      cfg,
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

// ────────────────────── profiles ──────────────────────

func (s *userService) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	courses, err := s.repo.User.ListCourses(ctx, userID)
	if err != nil {
		s.logger.Error("list user courses failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	enrollments, err := s.repo.Enrollment.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list enrollments failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	resp.Courses = toCourseResponses(courses)
	resp.Enrollments = make([]dto.EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		resp.Enrollments = append(resp.Enrollments, toEnrollmentResponse(&enrollments[i]))
	}
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != user.Email {
			if other, err := s.repo.User.GetByEmail(ctx, email); err == nil && other.ID != user.ID {
				return nil, ErrEmailExists
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Error("check email failed", zap.Error(err))
				return nil, err
			}
			user.Email = email
		}
	}

	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

func (s *userService) GetAdminProfile(ctx context.Context, adminID string) (*dto.UserResponse, error) {
	admin, err := s.getUser(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if !admin.IsAdmin() {
		return nil, ErrNotAdmin
	}

	courses, err := s.repo.Course.ListByOwner(ctx, adminID)
	if err != nil {
		s.logger.Error("list owned courses failed", zap.String("admin_id", adminID), zap.Error(err))
		return nil, err
	}
	resp := toUserResponse(admin)
	resp.Courses = toCourseResponses(courses)
	return &resp, nil
}

func (s *userService) UpdateAdminProfile(ctx context.Context, adminID string, req *dto.UpdateAdminProfileRequest) (*dto.UserResponse, error) {
	admin, err := s.getUser(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if !admin.IsAdmin() {
		return nil, ErrNotAdmin
	}

	if req.Name != nil {
		admin.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		admin.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.TrainerName != nil {
		admin.TrainerName = strings.TrimSpace(*req.TrainerName)
	}
	if req.Institution != nil {
		admin.Institution = datatypes.NewJSONType(model.Institution{
			Name:    req.Institution.Name,
			Address: req.Institution.Address,
		})
	}

	if err := s.save(ctx, admin); err != nil {
		return nil, err
	}
	return s.GetAdminProfile(ctx, adminID)
}

// ────────────────────── roster ──────────────────────

// ListStudents returns the students whose trainer name matches the admin's.
func (s *userService) ListStudents(ctx context.Context, actor Actor) ([]dto.UserResponse, error) {
	admin, err := s.getUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if admin.TrainerName == "" {
		return []dto.UserResponse{}, nil
	}

	students, err := s.repo.User.ListStudentsByTrainer(ctx, admin.TrainerName)
	if err != nil {
		s.logger.Error("list students failed", zap.String("admin_id", actor.ID), zap.Error(err))
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(students))
	for i := range students {
		out = append(out, toUserResponse(&students[i]))
	}
	return out, nil
}

// GetStudentDetail returns one of the admin's students with the submissions
// made to the admin's own courses.
func (s *userService) GetStudentDetail(ctx context.Context, actor Actor, studentID string) (*dto.StudentDetailResponse, error) {
	admin, err := s.getUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	student, err := s.repo.User.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("query student failed", zap.Error(err))
		return nil, err
	}
	if student.Role != model.RoleStudent || admin.TrainerName == "" || student.TrainerName != admin.TrainerName {
		return nil, ErrStudentNotFound
	}

	courses, err := s.repo.User.ListCourses(ctx, studentID)
	if err != nil {
		s.logger.Error("list student courses failed", zap.Error(err))
		return nil, err
	}
	subs, err := s.repo.Submission.ListByStudent(ctx, studentID, actor.ID)
	if err != nil {
		s.logger.Error("list student submissions failed", zap.Error(err))
		return nil, err
	}

	resp := &dto.StudentDetailResponse{
		UserResponse: toUserResponse(student),
		Submissions:  toSubmissionResponses(subs),
	}
	resp.Courses = toCourseResponses(courses)
	return resp, nil
}

// ────────────────────── ParseImportFile ──────────────────────

const maxImportRows = 1000

var (
	ErrImportNoData      = errors.New("workbook has no data rows (the first row is the header)")
	ErrImportTooManyRows = fmt.Errorf("workbook exceeds %d data rows", maxImportRows)
	ErrImportBadHeader   = errors.New("workbook header must contain name, email and studentId columns")
	ErrImportUnreadable  = errors.New("file is not a readable xlsx workbook")
)

// ParseImportFile reads the first sheet of an xlsx roster.
func (s *userService) ParseImportFile(reader io.Reader) ([]ImportStudentRow, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportUnreadable, err)
	}
	defer f.Close()

	sheetRows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportUnreadable, err)
	}
	if len(sheetRows) < 2 {
		return nil, ErrImportNoData
	}

	col := parseHeaderIndex(sheetRows[0])
	if col["name"] < 0 || col["email"] < 0 || col["student_id"] < 0 {
		return nil, ErrImportBadHeader
	}

	cell := func(row []string, key string) string {
		if idx := col[key]; idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	var rows []ImportStudentRow
	for i := 1; i < len(sheetRows); i++ {
		r := sheetRows[i]
		item := ImportStudentRow{
			Row:       i + 1,
			Name:      cell(r, "name"),
			Email:     cell(r, "email"),
			StudentID: cell(r, "student_id"),
			Phone:     cell(r, "phone"),
			Password:  cell(r, "password"),
		}
		if item.Name == "" && item.Email == "" && item.StudentID == "" {
			continue
		}
		rows = append(rows, item)
	}

	if len(rows) == 0 {
		return nil, ErrImportNoData
	}
	if len(rows) > maxImportRows {
		return nil, ErrImportTooManyRows
	}
	return rows, nil
}

// parseHeaderIndex maps known column names to their index, -1 when absent.
func parseHeaderIndex(header []string) map[string]int {
	idx := map[string]int{
		"name":       -1,
		"email":      -1,
		"student_id": -1,
		"phone":      -1,
		"password":   -1,
	}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.NewReplacer(" ", "", "_", "").Replace(key)
		switch key {
		case "name", "studentname":
			idx["name"] = i
		case "email", "emailid":
			idx["email"] = i
		case "studentid", "rollno", "registerno":
			idx["student_id"] = i
		case "phone", "mobile":
			idx["phone"] = i
		case "password":
			idx["password"] = i
		}
	}
	return idx
}

// ────────────────────── ImportStudents ──────────────────────

// ImportStudents creates the valid rows in one transaction. Rows without a
// password get a generated one, returned in Credentials.
func (s *userService) ImportStudents(ctx context.Context, actor Actor, rows []ImportStudentRow) (*dto.ImportStudentsResponse, error) {
	admin, err := s.getUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ImportStudentsResponse{Total: len(rows)}
	reject := func(row int, reason string) {
		resp.Failed++
		resp.Errors = append(resp.Errors, dto.ImportRowError{Row: row, Reason: reason})
	}

	// phase 1: validate without writing
	type validRow struct {
		row  ImportStudentRow
		hash string
		temp string
	}
	var valid []validRow
	seenEmail := map[string]bool{}
	seenStudentID := map[string]bool{}

	for _, row := range rows {
		row.Email = normalizeEmail(row.Email)
		if row.Name == "" || row.Email == "" || row.StudentID == "" {
			reject(row.Row, "name, email and studentId are required")
			continue
		}
		if err := s.validate.Var(row.Email, "email"); err != nil {
			reject(row.Row, fmt.Sprintf("invalid email: %s", row.Email))
			continue
		}
		if seenEmail[row.Email] || seenStudentID[row.StudentID] {
			reject(row.Row, "duplicate row in workbook")
			continue
		}
		if err := checkUserUnique(ctx, s.repo, row.Email, row.StudentID); err != nil {
			if errors.Is(err, ErrEmailExists) || errors.Is(err, ErrStudentIDExists) {
				reject(row.Row, err.Error())
				continue
			}
			s.logger.Error("check user uniqueness failed", zap.Error(err))
			return nil, err
		}

		password, temp := row.Password, ""
		if password == "" {
			if temp, err = generateTempPassword(10); err != nil {
				return nil, err
			}
			password = temp
		} else if len(password) < 6 {
			reject(row.Row, "password must be at least 6 characters")
			continue
		}
		hash, err := hashPassword(password, s.cfg.Auth.BcryptCost)
		if err != nil {
			reject(row.Row, "password hashing failed")
			continue
		}

		seenEmail[row.Email] = true
		seenStudentID[row.StudentID] = true
		valid = append(valid, validRow{row: row, hash: hash, temp: temp})
	}

	if len(valid) == 0 {
		return resp, nil
	}

	// phase 2: write every valid row or none
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		for _, v := range valid {
			user := &model.User{
				Name:         v.row.Name,
				Email:        v.row.Email,
				PasswordHash: v.hash,
				Role:         model.RoleStudent,
				Phone:        v.row.Phone,
				StudentID:    v.row.StudentID,
				TrainerName:  admin.TrainerName,
				Institution:  admin.Institution,
			}
			if err := tx.User.Create(ctx, user); err != nil {
				return fmt.Errorf("row %d: %w", v.row.Row, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("import students rolled back", zap.String("admin_id", actor.ID), zap.Error(err))
		return nil, err
	}

	resp.Created = len(valid)
	for _, v := range valid {
		if v.temp != "" {
			resp.Credentials = append(resp.Credentials, dto.ImportedCredential{
				Row: v.row.Row, Email: v.row.Email, TempPassword: v.temp,
			})
		}
	}
	s.logger.Info("students imported",
		zap.String("admin_id", actor.ID), zap.Int("created", resp.Created), zap.Int("failed", resp.Failed))
	return resp, nil
}

// ────────────────────── CreateAdmin ──────────────────────

// CreateAdmin bootstraps an admin account. The student id is generated.
func (s *userService) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*dto.UserResponse, error) {
	email := normalizeEmail(req.Email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email %q", req.Email)
	}
	if len(req.Password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}

	studentID := "ADM-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	if err := checkUserUnique(ctx, s.repo, email, studentID); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password, s.cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	admin := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		Phone:        req.Phone,
		StudentID:    studentID,
		TrainerName:  strings.TrimSpace(req.TrainerName),
		Institution: datatypes.NewJSONType(model.Institution{
			Name:    req.Institution.Name,
			Address: req.Institution.Address,
		}),
	}
	if err := s.repo.User.Create(ctx, admin); err != nil {
		if mapped := userConflict(err); mapped != nil {
			return nil, mapped
		}
		return nil, err
	}

	s.logger.Info("admin created", zap.String("user_id", admin.ID), zap.String("email", admin.Email))
	resp := toUserResponse(admin)
	return &resp, nil
}

// ── internal helpers ──

func (s *userService) getUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("query user failed", zap.String("user_id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *userService) save(ctx context.Context, user *model.User) error {
	if err := s.repo.User.Update(ctx, user); err != nil {
		if mapped := userConflict(err); mapped != nil {
			return mapped
		}
		s.logger.Error("update user failed", zap.String("user_id", user.ID), zap.Error(err))
		return err
	}
	return nil
}

// generateTempPassword returns a random password with at least one letter and one digit.
func generateTempPassword(length int) (string, error) {
	const letters = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"
	const digits = "23456789"
	const all = letters + digits

	if length < 6 {
		length = 10
	}

	pick := func(set string) (byte, error) {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
		if err != nil {
			return 0, err
		}
		return set[n.Int64()], nil
	}

	result := make([]byte, length)
	var err error
	if result[0], err = pick(letters); err != nil {
		return "", err
	}
	if result[1], err = pick(digits); err != nil {
		return "", err
	}
	for i := 2; i < length; i++ {
		if result[i], err = pick(all); err != nil {
			return "", err
		}
	}

	// Fisher-Yates
	for i := length - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		result[i], result[j.Int64()] = result[j.Int64()], result[i]
	}
	return string(result), nil
}

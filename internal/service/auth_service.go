package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/P-MUGILVANNAN/Student-Tracking/config"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/dto"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/model"
	"github.com/P-MUGILVANNAN/Student-Tracking/internal/repository"
	pkgerrors "github.com/P-MUGILVANNAN/Student-Tracking/pkg/errors"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrStudentIDExists    = errors.New("student id already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotAdmin           = errors.New("access denied, admin only")
)

// AuthService signup and login.
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	// AdminLogin is Login restricted to admin accounts.
	AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		logger: logger,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if err := checkUserUnique(ctx, s.repo, email, req.StudentID); err != nil {
		if !errors.Is(err, ErrEmailExists) && !errors.Is(err, ErrStudentIDExists) {
			s.logger.Error("check user uniqueness failed", zap.Error(err))
		}
		return nil, err
	}

	hash, err := hashPassword(req.Password, s.cfg.Auth.BcryptCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleStudent
	}

	user := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Phone:        req.Phone,
		StudentID:    strings.TrimSpace(req.StudentID),
		TrainerName:  strings.TrimSpace(req.TrainerName),
		Institution: datatypes.NewJSONType(model.Institution{
			Name:    req.Institution.Name,
			Address: req.Institution.Address,
		}),
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		if mapped := userConflict(err); mapped != nil {
			return nil, mapped
		}
		s.logger.Error("create user failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("user signed up", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return s.issue(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// AdminLogin rejects non-admin accounts the same way as a wrong password.
func (s *authService) AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *authService) authenticate(ctx context.Context, req *dto.LoginRequest) (*model.User, error) {
	user, err := s.repo.User.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("query user failed", zap.Error(err))
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) issue(user *model.User) (*dto.AuthResponse, error) {
	token, err := s.jwtMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		s.logger.Error("generate token failed", zap.Error(err))
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

// ── helpers shared with UserService ──

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// checkUserUnique reports ErrEmailExists or ErrStudentIDExists before an insert.
func checkUserUnique(ctx context.Context, repo *repository.Repository, email, studentID string) error {
	if _, err := repo.User.GetByEmail(ctx, email); err == nil {
		return ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if studentID == "" {
		return nil
	}
	if _, err := repo.User.GetByStudentID(ctx, studentID); err == nil {
		return ErrStudentIDExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// userConflict maps a unique violation on users to its domain error, or returns nil.
func userConflict(err error) error {
	if !pkgerrors.IsUniqueViolation(err) {
		return nil
	}
	switch pkgerrors.ConstraintName(err) {
	case "uk_users_student_id":
		return ErrStudentIDExists
	default:
		return ErrEmailExists
	}
}

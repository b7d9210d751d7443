package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/P-MUGILVANNAN/Student-Tracking/internal/api/middleware"
	"github.com/P-MUGILVANNAN/Student-Tracking/pkg/response"
)

var githubURLPattern = regexp.MustCompile(`^https?://(www\.)?github\.com/[A-Za-z0-9_.-]+(/[A-Za-z0-9_.-]+)*/?$`)

// RegisterValidators adds the custom binding rules to gin's validator.
// It must run before the first request is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return v.RegisterValidation("githuburl", func(fl validator.FieldLevel) bool {
		return githubURLPattern.MatchString(fl.Field().String())
	})
}

// FieldError one failed binding rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// bindFailed writes the 400 reply for a binding error, listing the failed fields.
func bindFailed(c *gin.Context, err error) {
	if middleware.IsBodyTooLarge(err) {
		response.Error(c, http.StatusRequestEntityTooLarge, 10005, "request body too large")
		return
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{Field: jsonName(fe.Field()), Rule: fe.Tag()})
		}
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "validation failed", details)
		return
	}
	response.BadRequest(c, 10001, "validation failed")
}

// jsonName lower-cases the first letter of a Go field name.
func jsonName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

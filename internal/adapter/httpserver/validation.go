package httpserver

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/differentialHQ/differential/internal/domain"
)

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

var jobIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateJobID validates a job id path segment. Ids are ULIDs, but the
// check stays permissive enough for externally supplied execution ids.
func ValidateJobID(jobID string) ValidationResult {
	if jobID == "" {
		return ValidationResult{
			Valid:  false,
			Errors: []ValidationError{{Field: "id", Code: "REQUIRED", Message: "Job ID is required"}},
		}
	}
	if len(jobID) > 64 {
		return ValidationResult{
			Valid:  false,
			Errors: []ValidationError{{Field: "id", Code: "TOO_LONG", Message: "Job ID is too long (max 64 characters)"}},
		}
	}
	if !jobIDPattern.MatchString(jobID) {
		return ValidationResult{
			Valid:  false,
			Errors: []ValidationError{{Field: "id", Code: "INVALID_FORMAT", Message: "Job ID contains invalid characters"}},
		}
	}
	return ValidationResult{Valid: true}
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

// validationDetails flattens validator errors into a field -> tag map for the
// error envelope details.
func validationDetails(err error) map[string]string {
	verrs := map[string]string{}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			verrs[strings.ToLower(fe.Field())] = fe.Tag()
		}
	}
	return verrs
}

// validateDefinition checks a worker-registered service definition before it
// is upserted. Rate windows are restricted to the units the limiter supports.
func validateDefinition(def domain.ServiceDefinition) error {
	if len(def.Functions) > 256 {
		return fmt.Errorf("%w: too many functions in definition", domain.ErrInvalidArgument)
	}
	for _, fn := range def.Functions {
		if fn.Name == "" {
			return fmt.Errorf("%w: function name required", domain.ErrInvalidArgument)
		}
		if len(fn.Name) > 256 {
			return fmt.Errorf("%w: function name too long: %s", domain.ErrInvalidArgument, fn.Name[:64])
		}
		if fn.Rate != nil {
			if fn.Rate.Per != "minute" && fn.Rate.Per != "hour" {
				return fmt.Errorf("%w: rate per must be minute or hour", domain.ErrInvalidArgument)
			}
			if fn.Rate.Limit < 1 {
				return fmt.Errorf("%w: rate limit must be positive", domain.ErrInvalidArgument)
			}
		}
	}
	return nil
}

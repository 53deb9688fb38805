package users

import (
	"net/mail"
	"strings"
	"time"

	"github.com/2beens/fittracker/internal/apperr"
	"github.com/2beens/fittracker/pkg"
)

// column sizes of the users table
const (
	maxUsernameLen    = 80
	maxEmailLen       = 120
	maxNameLen        = 50
	maxFitnessGoalLen = 100
)

// User is a registered account. The password hash never leaves the service.
type User struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Age          *int       `json:"age"`
	Weight       *float64   `json:"weight"`
	Height       *float64   `json:"height"`
	FitnessGoal  *string    `json:"fitness_goal"`
	CreatedAt    *time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Age         *int     `json:"age"`
	Weight      *float64 `json:"weight"`
	Height      *float64 `json:"height"`
	FitnessGoal *string  `json:"fitness_goal"`
}

func (req RegisterRequest) Validate() error {
	switch {
	case strings.TrimSpace(req.Username) == "":
		return apperr.Validation("username is required")
	case strings.TrimSpace(req.Email) == "":
		return apperr.Validation("email is required")
	case req.Password == "":
		return apperr.Validation("password is required")
	case strings.TrimSpace(req.FirstName) == "":
		return apperr.Validation("first_name is required")
	case strings.TrimSpace(req.LastName) == "":
		return apperr.Validation("last_name is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return apperr.Validation("invalid email [%s]", req.Email)
	}
	// bcrypt only looks at the first 72 bytes
	if len(req.Password) > 72 {
		return apperr.Validation("password too long")
	}
	if err := pkg.CheckAll(
		pkg.CheckMaxLen("username", strings.TrimSpace(req.Username), maxUsernameLen),
		pkg.CheckMaxLen("email", strings.TrimSpace(req.Email), maxEmailLen),
		pkg.CheckMaxLen("first_name", strings.TrimSpace(req.FirstName), maxNameLen),
		pkg.CheckMaxLen("last_name", strings.TrimSpace(req.LastName), maxNameLen),
	); err != nil {
		return apperr.Validation("%s", err)
	}
	return validateProfile(req.Age, req.Weight, req.Height, req.FitnessGoal)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateRequest is a partial profile update: nil fields are left untouched.
// Username, email and password cannot be changed here.
type UpdateRequest struct {
	FirstName   *string  `json:"first_name"`
	LastName    *string  `json:"last_name"`
	Age         *int     `json:"age"`
	Weight      *float64 `json:"weight"`
	Height      *float64 `json:"height"`
	FitnessGoal *string  `json:"fitness_goal"`
}

func (req UpdateRequest) Validate() error {
	if req.FirstName != nil && strings.TrimSpace(*req.FirstName) == "" {
		return apperr.Validation("first_name must not be empty")
	}
	if req.LastName != nil && strings.TrimSpace(*req.LastName) == "" {
		return apperr.Validation("last_name must not be empty")
	}
	if err := pkg.CheckAll(
		pkg.CheckMaxLenPtr("first_name", req.FirstName, maxNameLen),
		pkg.CheckMaxLenPtr("last_name", req.LastName, maxNameLen),
	); err != nil {
		return apperr.Validation("%s", err)
	}
	return validateProfile(req.Age, req.Weight, req.Height, req.FitnessGoal)
}

func validateProfile(age *int, weight, height *float64, fitnessGoal *string) error {
	if err := pkg.CheckAll(
		pkg.CheckInt4("age", age),
		pkg.CheckMaxLenPtr("fitness_goal", fitnessGoal, maxFitnessGoalLen),
	); err != nil {
		return apperr.Validation("%s", err)
	}
	if age != nil && *age < 0 {
		return apperr.Validation("age must not be negative")
	}
	if weight != nil && *weight < 0 {
		return apperr.Validation("weight must not be negative")
	}
	if height != nil && *height < 0 {
		return apperr.Validation("height must not be negative")
	}
	return nil
}

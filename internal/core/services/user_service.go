package services

import (
	"context"
	"errors"
	"strings"

	"rentacuartos/internal/adapters/persistence/models"
	"rentacuartos/internal/adapters/persistence/repositories"
	"rentacuartos/internal/core/domain"
	"rentacuartos/internal/pkg/jwt"
	"rentacuartos/internal/pkg/password"

	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned when a login attempt fails. The message
// is deliberately vague so callers cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("usuario o contrasena incorrectos")

// UserService handles staff accounts and session issuance
type UserService struct {
	userRepo        repositories.UserRepository
	roleRepo        repositories.RoleRepository
	jwtSecret       string
	accessTokenMins int
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	roleRepo repositories.RoleRepository,
	jwtSecret string,
	accessTokenMins int,
) *UserService {
	return &UserService{
		userRepo:        userRepo,
		roleRepo:        roleRepo,
		jwtSecret:       jwtSecret,
		accessTokenMins: accessTokenMins,
	}
}

// UserInput represents user create input
type UserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   uint   `json:"role_id"`
}

// AuthResponse is the login payload: a bearer token plus the user projection.
type AuthResponse struct {
	AccessToken string               `json:"access_token"`
	User        *models.UserResponse `json:"user"`
}

func validateUserInput(input *UserInput) error {
	if strings.TrimSpace(input.Username) == "" {
		return domain.Validationf("El nombre de usuario es obligatorio")
	}
	if len(input.Username) > 50 {
		return domain.Validationf("El nombre de usuario no puede exceder 50 caracteres")
	}
	if strings.TrimSpace(input.Email) == "" {
		return domain.Validationf("El correo es obligatorio")
	}
	if !strings.Contains(input.Email, "@") {
		return domain.Validationf("El correo '%s' no es valido", input.Email)
	}
	if !password.ValidatePassword(input.Password) {
		return domain.Validationf("La contrasena debe tener al menos %d caracteres", password.MinLength)
	}
	if input.RoleID == 0 {
		return domain.Validationf("El rol del usuario es obligatorio")
	}
	return nil
}

// checkUserUniqueness re-checks username and email excluding the record itself.
func (s *UserService) checkUserUniqueness(ctx context.Context, username, email string, excludeID uint) error {
	exists, err := s.userRepo.ExistsByUsername(ctx, username, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.Validationf("Ya existe un usuario con el nombre %s", username)
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.Validationf("Ya existe un usuario con el correo %s", email)
	}
	return nil
}

// Register validates and creates a new staff account
func (s *UserService) Register(ctx context.Context, input *UserInput) (*models.UserResponse, error) {
	if err := validateUserInput(input); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	if err := s.checkUserUniqueness(ctx, username, email, 0); err != nil {
		return nil, err
	}

	roleExists, err := s.roleRepo.ExistsByID(ctx, input.RoleID)
	if err != nil {
		return nil, err
	}
	if !roleExists {
		return nil, domain.NotFound("rol", input.RoleID)
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		RoleID:   input.RoleID,
		IsActive: true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	saved, err := s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, domain.Consistency("usuario", user.ID)
	}

	return saved.ToResponse(), nil
}

// Login verifies credentials and issues an access token. Inactive accounts
// are rejected with the same error as a bad password.
func (s *UserService) Login(ctx context.Context, username, pass string) (*AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if !password.Verify(pass, user.Password) {
		return nil, ErrInvalidCredentials
	}

	roleTitle := ""
	if user.Role != nil {
		roleTitle = user.Role.Title
	}

	token, err := jwt.GenerateAccessToken(user.ID, user.Username, roleTitle, s.jwtSecret, s.accessTokenMins)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		AccessToken: token,
		User:        user.ToResponse(),
	}, nil
}

// ChangePassword verifies the current password and stores a new hash
func (s *UserService) ChangePassword(ctx context.Context, id uint, current, next string) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound("usuario", id)
		}
		return err
	}

	if !password.Verify(current, user.Password) {
		return domain.Validationf("La contrasena actual no es correcta")
	}
	if !password.ValidatePassword(next) {
		return domain.Validationf("La contrasena debe tener al menos %d caracteres", password.MinLength)
	}

	hashed, err := password.Hash(next)
	if err != nil {
		return err
	}

	user.Password = hashed
	return s.userRepo.Update(ctx, user)
}

// ChangeRole reassigns a user to another role
func (s *UserService) ChangeRole(ctx context.Context, id, roleID uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("usuario", id)
		}
		return nil, err
	}

	roleExists, err := s.roleRepo.ExistsByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if !roleExists {
		return nil, domain.NotFound("rol", roleID)
	}

	user.RoleID = roleID
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	saved, err := s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, domain.Consistency("usuario", user.ID)
	}

	return saved.ToResponse(), nil
}

// SetActive enables or disables a staff account
func (s *UserService) SetActive(ctx context.Context, id uint, active bool) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound("usuario", id)
		}
		return nil, err
	}

	user.IsActive = active
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

// GetByID returns a user projection, or nil when the id does not exist
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// List returns projections for all users
func (s *UserService) List(ctx context.Context) ([]*models.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.ToResponse())
	}
	return responses, nil
}

// Delete deletes a user
func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}

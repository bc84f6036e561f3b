package auth

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// CredentialStore looks up stored password hashes for login. Admins and
// employees live in separate tables, so the lookups are separate too.
type CredentialStore interface {
	GetAdminCredentials(email string) (userID int64, passwordHash string, err error)
	GetEmployeeCredentials(email string) (userID int64, passwordHash string, isActive bool, err error)
}

type Service struct {
	credentials    CredentialStore
	tokenGenerator TokenGeneratorAPI
	bcryptCost     int
	logger         *slog.Logger
}

func NewService(credentials CredentialStore, tokenGen TokenGeneratorAPI, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		credentials:    credentials,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// AuthenticateAdmin validates admin credentials and issues a token carrying
// the ADMIN role.
func (s *Service) AuthenticateAdmin(dto LoginDTO) (TokenResponse, error) {
	if err := dto.Validate(); err != nil {
		return TokenResponse{}, err
	}

	userID, storedHash, err := s.credentials.GetAdminCredentials(dto.Email)
	if err != nil {
		s.logger.Warn("admin login failed: lookup", "email", dto.Email)
		return TokenResponse{}, ErrInvalidCredentials
	}

	if err := VerifyPassword(storedHash, dto.Password); err != nil {
		s.logger.Warn("admin login failed: password mismatch", "email", dto.Email)
		return TokenResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.GenerateToken(userID, RoleAdmin)
	if err != nil {
		return TokenResponse{}, err
	}

	s.logger.Info("admin authenticated", "user_id", userID)
	return TokenResponse{Token: token}, nil
}

// AuthenticateEmployee validates employee credentials and issues a token
// carrying the EMPLOYEE role. Inactive accounts cannot log in.
func (s *Service) AuthenticateEmployee(dto LoginDTO) (TokenResponse, error) {
	if err := dto.Validate(); err != nil {
		return TokenResponse{}, err
	}

	userID, storedHash, isActive, err := s.credentials.GetEmployeeCredentials(dto.Email)
	if err != nil {
		s.logger.Warn("employee login failed: lookup", "email", dto.Email)
		return TokenResponse{}, ErrInvalidCredentials
	}

	if err := VerifyPassword(storedHash, dto.Password); err != nil {
		s.logger.Warn("employee login failed: password mismatch", "email", dto.Email)
		return TokenResponse{}, ErrInvalidCredentials
	}

	if !isActive {
		s.logger.Warn("employee login rejected: inactive account", "user_id", userID)
		return TokenResponse{}, ErrAccountInactive
	}

	token, err := s.tokenGenerator.GenerateToken(userID, RoleEmployee)
	if err != nil {
		return TokenResponse{}, err
	}

	s.logger.Info("employee authenticated", "user_id", userID)
	return TokenResponse{Token: token}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

func (s *Service) HashPassword(password string) (string, error) {
	return HashPassword(password, s.bcryptCost)
}

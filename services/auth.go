package services

import (
	"context"
	"errors"

	"noticeboard-backend/models"
	"noticeboard-backend/repository"
	"noticeboard-backend/utils"
	"noticeboard-backend/utils/logger"
)

// AuthService checks credentials against the seeded directory and owns the
// profile and password-change rules. Token minting is delegated to the JWT
// manager through the TokenIssuer interface.
type AuthService struct {
	adminRepo        repository.AdminRepositoryInterface
	organizationRepo repository.OrganizationRepositoryInterface
	tokens           TokenIssuer
	logger           logger.Logger
}

func NewAuthService(adminRepo repository.AdminRepositoryInterface, organizationRepo repository.OrganizationRepositoryInterface, tokens TokenIssuer, log logger.Logger) *AuthService {
	return &AuthService{
		adminRepo:        adminRepo,
		organizationRepo: organizationRepo,
		tokens:           tokens,
		logger:           log,
	}
}

// Login verifies the credential pair and returns a token plus the account
// context the consoles store client-side. Unknown email and wrong password
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}

	if !utils.CheckPassword(admin.PasswordHash, password) {
		s.logger.Warnf("Failed login attempt for %s", email)
		return nil, ErrBadCredentials
	}

	token, err := s.tokens.GenerateToken(admin)
	if err != nil {
		return nil, err
	}

	result := &models.LoginResult{
		Token: token,
		ID:    admin.ID,
		Name:  admin.Name,
		Role:  admin.Role,
		OrgID: admin.OrganizationID,
	}

	if admin.OrganizationID != "" {
		if org, orgErr := s.organizationRepo.GetByID(ctx, admin.OrganizationID); orgErr == nil {
			result.OrgName = org.Name
		}
	}

	return result, nil
}

// Logout revokes the token so it stops validating before its natural expiry.
// An already invalid token is treated as a failed credential check.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return ErrBadCredentials
	}
	s.tokens.RevokeToken(claims)
	return nil
}

// ChangePassword enforces the password rules before any store access: the
// confirmation must match and the new password must be at least 8 characters.
func (s *AuthService) ChangePassword(ctx context.Context, adminID string, req *models.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return NewValidationError("confirmPassword", "new passwords do not match")
	}
	if len(req.NewPassword) < 8 {
		return NewValidationError("newPassword", "password must be at least 8 characters")
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}

	if !utils.CheckPassword(admin.PasswordHash, req.CurrentPassword) {
		return ErrBadCredentials
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.adminRepo.SetPassword(ctx, adminID, hash)
}

func (s *AuthService) Profile(ctx context.Context, adminID string) (*models.Admin, error) {
	return s.adminRepo.GetByID(ctx, adminID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, adminID string, patch *models.AdminPatch) (*models.Admin, error) {
	return s.adminRepo.Update(ctx, adminID, patch)
}

package services

import (
	"errors"
	"fmt"

	"github.com/comedyconnector/backend/internal/models"
	"gorm.io/gorm"
)

// UserService maintains the link between external identity subjects and app
// users. Creation is idempotent on identity_id: the signup webhook and the
// first authenticated request can both race to create the row.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// EnsureUser returns the user for an identity subject, creating the row if
// it does not exist yet. The email is kept in sync with the token claim;
// everything else is immutable after creation.
func (s *UserService) EnsureUser(identityID, email string) (*models.User, error) {
	if identityID == "" {
		return nil, errors.New("missing identity subject")
	}

	var user models.User
	err := s.db.Where("identity_id = ?", identityID).First(&user).Error
	if err == nil {
		if email != "" && user.Email != email {
			if err := s.db.Model(&user).Update("email", email).Error; err != nil {
				return nil, fmt.Errorf("failed to update user email: %w", err)
			}
			user.Email = email
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{IdentityID: identityID, Email: email}
	if err := s.db.Create(&user).Error; err != nil {
		// Lost a race with the webhook or a concurrent request.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := s.db.Where("identity_id = ?", identityID).First(&user).Error; err != nil {
				return nil, err
			}
			return &user, nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

package repository

import "cvscanner/models"

// UserRepository defines the interface for user operations. Update-style
// methods report the number of rows affected so callers can distinguish
// "not found" from success.
type UserRepository interface {
	Exists(username, email string) (bool, error)
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetHashByEmailActive(email string) (string, error)
	UpdateLastLogin(email string) error
	UpdatePassword(email, passwordHash string) error
	UpdateProfile(email, firstName, lastName string) (int64, error)
	Update(user *models.User) (int64, error)
	Delete(email string) (int64, error)
	List() ([]models.User, error)
	Search(query string) ([]models.User, error)
	FilterByRole(role string) ([]models.User, error)
}

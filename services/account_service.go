package services

import (
	"os"

	"cvscanner/apperrors"
	"cvscanner/models"
	"cvscanner/repository"
	"cvscanner/utils"
)

// AccountService orchestrates registration, login, password and profile
// management, admin user CRUD and the category set. Every failure it
// returns is an *apperrors.Error carrying the client-facing status and
// message.
type AccountService interface {
	Register(req *models.RegisterRequest) error
	Login(req *models.LoginRequest) error
	ChangePassword(req *models.ChangePasswordRequest) error
	GetCurrentUser(email string) (*models.UserInfo, error)
	ListUsers() ([]models.UserInfo, error)
	SearchUsers(query string) ([]models.UserInfo, error)
	FilterUsers(role string) ([]models.UserInfo, error)
	AddUser(req *models.AdminUserRequest) error
	EditUser(req *models.AdminUserRequest) error
	DeleteUser(email string) error
	UpdateProfile(req *models.UpdateProfileRequest) error
	GetCategories() (models.CategorySet, error)
	UpdateCategories(payload map[string][]any) error
}

type accountService struct {
	users      repository.UserRepository
	categories *repository.CategoryRepo
}

func NewAccountService(users repository.UserRepository, categories *repository.CategoryRepo) AccountService {
	return &accountService{users: users, categories: categories}
}

func (s *accountService) Register(req *models.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return apperrors.BadRequest("All fields are required.")
	}

	exists, err := s.users.Exists(req.Username, req.Email)
	if err != nil {
		return apperrors.ErrInternalServer
	}
	if exists {
		return apperrors.BadRequest("Username or email already exists.")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return apperrors.ErrInternalServer
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         "user",
		IsActive:     true,
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.users.Create(user); err != nil {
		return apperrors.ErrInternalServer
	}
	return nil
}

// Login verifies credentials only; no session or token is issued. An
// unknown email and a wrong password produce the identical response so
// the endpoint cannot be used to enumerate users.
func (s *accountService) Login(req *models.LoginRequest) error {
	if err := req.Validate(); err != nil {
		return apperrors.BadRequest("Email and password are required.")
	}

	hash, err := s.users.GetHashByEmailActive(req.Email)
	if err != nil {
		return apperrors.ErrInternalServer
	}
	if hash == "" || !utils.CheckPassword(hash, req.Password) {
		return apperrors.Unauthorized("Invalid email or password.")
	}

	if err := s.users.UpdateLastLogin(req.Email); err != nil {
		return apperrors.ErrInternalServer
	}
	return nil
}

func (s *accountService) ChangePassword(req *models.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return apperrors.BadRequest("All fields are required.")
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return apperrors.ErrInternalServer
	}
	if user == nil {
		// Historical contract: reported as a 400, unlike /auth/me.
		return apperrors.BadRequest("User not found.")
	}

	if !utils.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return apperrors.BadRequest("Current password is incorrect.")
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.ErrInternalServer
	}
	if err := s.users.UpdatePassword(req.Email, hash); err != nil {
		return apperrors.ErrInternalServer
	}
	return nil
}

func (s *accountService) GetCurrentUser(email string) (*models.UserInfo, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, apperrors.ErrInternalServer
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found.")
	}
	info := user.Info()
	return &info, nil
}

func (s *accountService) ListUsers() ([]models.UserInfo, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, apperrors.ErrInternalServer
	}
	return projectUsers(users), nil
}

func (s *accountService) SearchUsers(query string) ([]models.UserInfo, error) {
	users, err := s.users.Search(query)
	if err != nil {
		return nil, apperrors.ErrInternalServer
	}
	return projectUsers(users), nil
}

func (s *accountService) FilterUsers(role string) ([]models.UserInfo, error) {
	users, err := s.users.FilterByRole(role)
	if err != nil {
		return nil, apperrors.ErrInternalServer
	}
	return projectUsers(users), nil
}

// AddUser is the admin-facing create. Same uniqueness rules as Register
// but the role may be set freely.
func (s *accountService) AddUser(req *models.AdminUserRequest) error {
	if err := req.Validate(); err != nil || req.Password == "" {
		return apperrors.BadRequest("All fields are required.")
	}

	exists, err := s.users.Exists(req.Username, req.Email)
	if err != nil {
		return apperrors.ErrInternalServer
	}
	if exists {
		return apperrors.BadRequest("Username or email already exists.")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return apperrors.ErrInternalServer
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         "user",
		IsActive:     true,
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.users.Create(user); err != nil {
		return apperrors.ErrInternalServer
	}
	return nil
}

// EditUser updates the row identified by email. A new password, when
// supplied, is re-hashed and stored too.
func (s *accountService) EditUser(req *models.AdminUserRequest) error {
	if err := req.Validate(); err != nil {
		return apperrors.BadRequest("All fields are required.")
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		IsActive:  true,
	}
	if user.Role == "" {
		user.Role = "user"
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	rows, err := s.users.Update(user)
	if err != nil {
		return apperrors.ErrInternalServer
	}
	if rows == 0 {
		return apperrors.NotFound("User not found.")
	}

	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return apperrors.ErrInternalServer
		}
		if err := s.users.UpdatePassword(req.Email, hash); err != nil {
			return apperrors.ErrInternalServer
		}
	}
	return nil
}

// DeleteUser removes the row outright; there is no soft-delete flag.
func (s *accountService) DeleteUser(email string) error {
	rows, err := s.users.Delete(email)
	if err != nil {
		return apperrors.ErrInternalServer
	}
	if rows == 0 {
		return apperrors.NotFound("User not found.")
	}
	return nil
}

func (s *accountService) UpdateProfile(req *models.UpdateProfileRequest) error {
	if err := req.Validate(); err != nil {
		return apperrors.BadRequest("All fields are required.")
	}

	rows, err := s.users.UpdateProfile(req.Email, req.FirstName, req.LastName)
	if err != nil {
		return apperrors.ErrInternalServer
	}
	if rows == 0 {
		return apperrors.NotFound("User not found.")
	}
	return nil
}

func (s *accountService) GetCategories() (models.CategorySet, error) {
	categories, err := s.categories.Load()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NotFound("Categories not found.")
		}
		return nil, apperrors.ErrInternalServer
	}
	return categories, nil
}

// UpdateCategories checks that every label of every category is a
// string, then replaces the backing file wholesale.
func (s *accountService) UpdateCategories(payload map[string][]any) error {
	categories := make(models.CategorySet, len(payload))
	for name, labels := range payload {
		list := make([]string, 0, len(labels))
		for _, label := range labels {
			str, ok := label.(string)
			if !ok {
				return apperrors.BadRequest("All category values must be strings.")
			}
			list = append(list, str)
		}
		categories[name] = list
	}

	if err := s.categories.Save(categories); err != nil {
		return apperrors.ErrInternalServer
	}
	return nil
}

func projectUsers(users []models.User) []models.UserInfo {
	infos := make([]models.UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, users[i].Info())
	}
	return infos
}

package services

import (
	"strings"

	"github.com/google/uuid"

	"smartkumbh-http-service/config"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/storage"
)

// InterfaceUserService defines the user service interface
type InterfaceUserService interface {
	GetAllUsers() []*models.User
	CreateUser(user *models.User) *models.User
	UpdateUser(id string, updates map[string]interface{}) (*models.User, error)
}

// UserService provides pilgrim and admin account operations
type UserService struct {
	Store  *storage.Store
	Config *config.Config
}

// NewUserService creates a new user service
func NewUserService(store *storage.Store, cfg *config.Config) InterfaceUserService {
	return &UserService{
		Store:  store,
		Config: cfg,
	}
}

// 1 GetAllUsers returns all users
func (s *UserService) GetAllUsers() []*models.User {
	return s.Store.Users.List()
}

// 2 CreateUser creates a new user, assigning the public QR identifier
// exactly once. The QR id never changes for the lifetime of the user.
func (s *UserService) CreateUser(user *models.User) *models.User {
	if user.Role == "" {
		user.Role = models.RolePilgrim
	}
	if user.QRID == "" {
		user.QRID = "KMB-" + strings.ToUpper(uuid.NewString()[:8])
	}
	return s.Store.Users.Create(user)
}

// 3 UpdateUser merges the given fields onto an existing user. The QR
// identifier is protected from overwrite.
func (s *UserService) UpdateUser(id string, updates map[string]interface{}) (*models.User, error) {
	delete(updates, "qrId")
	return s.Store.Users.Update(id, updates)
}

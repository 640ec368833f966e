package service

import (
	"fmt"
	"strings"

	"go-inventario/internal/model"
	"go-inventario/internal/repository"

	"github.com/google/uuid"
)

type UserService interface {
	CreateUser(req *CreateUserRequest, actor Actor) (*model.User, error)
	UpdateUser(userID uuid.UUID, req *UpdateUserRequest, actor Actor) (*model.User, error)
	DeleteUser(userID uuid.UUID, actor Actor) error
	UpdateUserPrivileges(userID uuid.UUID, privilegeCodes []string, actor Actor) (*model.User, error)
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
	GetAllRoles() ([]model.Role, error)
	GetAllPrivileges() ([]model.Privilege, error)
}

// UserProfile holds the fields shared by create and update.
type UserProfile struct {
	Email       string `json:"email" validate:"required,email"`
	FullName    string `json:"full_name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"max=20"`
	RoleID      uint   `json:"role_id" validate:"required"`
}

func (p *UserProfile) normalize() {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.FullName = strings.TrimSpace(p.FullName)
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
}

func (p UserProfile) applyTo(u *model.User, role *model.Role) {
	u.Email = p.Email
	u.FullName = p.FullName
	u.PhoneNumber = p.PhoneNumber
	u.RoleID = &role.ID
}

type CreateUserRequest struct {
	UserProfile
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest leaves the password and active flag unchanged when nil.
type UpdateUserRequest struct {
	UserProfile
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	IsActive *bool   `json:"is_active"`
}

type userService struct {
	users      repository.UserRepository
	privileges repository.PrivilegeRepository
	roles      repository.RoleRepository
}

func NewUserService(users repository.UserRepository, privileges repository.PrivilegeRepository, roles repository.RoleRepository) UserService {
	return &userService{users: users, privileges: privileges, roles: roles}
}

func (s *userService) role(id uint) (*model.Role, error) {
	role, err := s.roles.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrRoleNotFound)
	}
	return role, nil
}

func (s *userService) CreateUser(req *CreateUserRequest, actor Actor) (*model.User, error) {
	req.normalize()
	if err := validate(req); err != nil {
		return nil, err
	}
	if taken, err := s.users.EmailTaken(req.Email, uuid.Nil); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailExists
	}
	role, err := s.role(req.RoleID)
	if err != nil {
		return nil, err
	}

	// New users start with their role's privileges.
	user := &model.User{IsActive: true, Privileges: role.Privileges}
	req.applyTo(user, role)
	user.Stamp(actor.ID)
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return s.users.FindByID(user.ID)
}

func (s *userService) UpdateUser(userID uuid.UUID, req *UpdateUserRequest, actor Actor) (*model.User, error) {
	req.normalize()
	if err := validate(req); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	if taken, err := s.users.EmailTaken(req.Email, userID); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailExists
	}
	role, err := s.role(req.RoleID)
	if err != nil {
		return nil, err
	}

	roleChanged := user.RoleID == nil || *user.RoleID != role.ID
	revoke := false

	req.applyTo(user, role)
	if req.IsActive != nil {
		revoke = user.IsActive && !*req.IsActive
		user.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		revoke = true
	}
	if revoke {
		user.TokenVersion = uuid.NewString()
	}
	user.Touch(actor.ID)

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	if roleChanged {
		if err := s.users.UpdatePrivileges(userID, role.Privileges); err != nil {
			return nil, err
		}
	}
	return s.users.FindByID(userID)
}

func (s *userService) DeleteUser(userID uuid.UUID, actor Actor) error {
	if actor.ID == userID.String() {
		return fmt.Errorf("%w: users cannot delete themselves", ErrValidation)
	}
	return notFound(s.users.Delete(userID, actor.ID), ErrUserNotFound)
}

func (s *userService) UpdateUserPrivileges(userID uuid.UUID, codes []string, actor Actor) (*model.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	privs, err := s.privileges.FindByCodes(codes)
	if err != nil {
		return nil, err
	}
	if len(privs) != len(uniqueCodes(codes)) {
		return nil, fmt.Errorf("%w: unknown privilege code", ErrValidation)
	}

	if err := s.users.UpdatePrivileges(userID, privs); err != nil {
		return nil, err
	}
	user.Touch(actor.ID)
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return s.users.FindByID(userID)
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.users.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]model.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToResponse())
	}
	return out, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) GetAllRoles() ([]model.Role, error) {
	return s.roles.FindAll()
}

func (s *userService) GetAllPrivileges() ([]model.Privilege, error) {
	return s.privileges.FindAll()
}

func uniqueCodes(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

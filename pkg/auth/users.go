package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"waleki.xyz/water-level-service/pkg/models"
	"waleki.xyz/water-level-service/pkg/telemetry"
)

type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     models.UserRole
}

type UserUpdate struct {
	Username *string
	Email    *string
	Role     *models.UserRole
}

func validRole(role models.UserRole) bool {
	return role == models.UserRoleAdmin || role == models.UserRoleUser
}

func (a *Auth) CreateUser(input *CreateUserInput) (*models.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, telemetry.NewValidationError("Username, email, and password are required")
	}
	if !validRole(input.Role) {
		return nil, telemetry.NewValidationError("Role must be admin or user")
	}

	var count int64
	if err := a.Db.Conn.Model(&models.User{}).
		Where("username = ? OR email = ?", input.Username, input.Email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &telemetry.ConflictError{Message: "Username or email already in use"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
	}
	if err := a.Db.Conn.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (a *Auth) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := a.Db.Conn.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &telemetry.NotFoundError{Resource: "user", ID: id}
		}
		return nil, err
	}
	return &user, nil
}

func (a *Auth) ListUsers() ([]models.User, error) {
	var users []models.User
	err := a.Db.Conn.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (a *Auth) UpdateUser(id uint, updates *UserUpdate) (*models.User, error) {
	user, err := a.GetUser(id)
	if err != nil {
		return nil, err
	}

	columns := map[string]any{}
	if updates.Username != nil {
		columns["username"] = *updates.Username
	}
	if updates.Email != nil {
		columns["email"] = *updates.Email
	}
	if updates.Role != nil {
		if !validRole(*updates.Role) {
			return nil, telemetry.NewValidationError("Role must be admin or user")
		}
		columns["role"] = *updates.Role
	}
	if len(columns) == 0 {
		return user, nil
	}

	if username, ok := columns["username"]; ok {
		var count int64
		if err := a.Db.Conn.Model(&models.User{}).
			Where("username = ? AND id <> ?", username, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, &telemetry.ConflictError{Message: "Username already in use"}
		}
	}

	if err := a.Db.Conn.Model(user).Updates(columns).Error; err != nil {
		return nil, err
	}
	return a.GetUser(id)
}

func (a *Auth) DeleteUser(id uint) error {
	user, err := a.GetUser(id)
	if err != nil {
		return err
	}
	return a.Db.Conn.Delete(user).Error
}

func (a *Auth) ChangePassword(id uint, currentPassword, newPassword string) error {
	if newPassword == "" {
		return telemetry.NewValidationError("New password is required")
	}

	user, err := a.GetUser(id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return a.Db.Conn.Model(user).Update("password_hash", string(hash)).Error
}

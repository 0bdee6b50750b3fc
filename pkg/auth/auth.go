package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"waleki.xyz/water-level-service/pkg/common"
	"waleki.xyz/water-level-service/pkg/db"
	"waleki.xyz/water-level-service/pkg/models"
)

const DefaultSessionTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type Auth struct {
	Db         db.DB
	Sessions   SessionStore
	SessionTTL time.Duration
}

func (a *Auth) ttl() time.Duration {
	if a.SessionTTL > 0 {
		return a.SessionTTL
	}
	return DefaultSessionTTL
}

// Login verifies the password and issues an opaque bearer token.
func (a *Auth) Login(username, password string) (*models.User, string, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameAuth,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySession),
	)

	var user models.User
	if err := a.Db.Conn.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	a.Sessions.Put(token, Session{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(a.ttl()),
	})

	logger.Info("Session created", zap.Uint("user_id", user.ID))

	return &user, token, nil
}

func (a *Auth) Logout(token string) {
	a.Sessions.Delete(token)
}

// Authenticate resolves a bearer token to its user, dropping the session
// when the token is unknown, expired, or orphaned.
func (a *Auth) Authenticate(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	session, ok := a.Sessions.Get(token)
	if !ok {
		return nil, ErrInvalidToken
	}

	var user models.User
	if err := a.Db.Conn.First(&user, session.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			a.Sessions.Delete(token)
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return &user, nil
}

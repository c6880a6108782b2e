package fleet

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/engine-maintenance-service/pkg/auth"
	"liyu1981.xyz/engine-maintenance-service/pkg/common"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
)

func (f *Fleet) register(username, email, password string, role models.Role) (*models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryUser),
	)

	if role == "" {
		role = models.RoleTechnician
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := f.Db.Conn.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, persistence("create user", err)
	}

	logger.Info("User registered", zap.Uint("user_id", user.ID), zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return &user, nil
}

func (f *Fleet) authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := f.Db.Conn.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (f *Fleet) getUser(userID uint) (*models.User, error) {
	var user models.User
	if err := f.Db.Conn.First(&user, userID).Error; err != nil {
		return nil, notFound(err, ErrNotFound)
	}
	return &user, nil
}

type IUserImpl struct {
	fleet *Fleet
}

func (iu *IUserImpl) Register(username, email, password string, role models.Role) (*models.User, error) {
	return iu.fleet.register(username, email, password, role)
}

func (iu *IUserImpl) Authenticate(username, password string) (*models.User, error) {
	return iu.fleet.authenticate(username, password)
}

func (iu *IUserImpl) GetUser(userID uint) (*models.User, error) {
	return iu.fleet.getUser(userID)
}

func (f *Fleet) GetIUser() IUser {
	return &IUserImpl{fleet: f}
}

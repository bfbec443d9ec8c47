package soil

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"plantita.mx/soil-log-service/pkg/common"
	"plantita.mx/soil-log-service/pkg/models"
)

// findOrCreateUser resolves a user by email, creating it when absent. A
// unique-violation race against a concurrent creator resolves by re-reading.
func findOrCreateUser(tx *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := tx.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{Email: email, CreatedAt: PacificNow()}
	if err := tx.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			var existing models.User
			if err := tx.Where("email = ?", email).First(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}
	return &user, nil
}

func findOrCreateDevice(tx *gorm.DB, udid string) (*models.Device, error) {
	var device models.Device
	err := tx.Where("udid = ?", udid).First(&device).Error
	if err == nil {
		return &device, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	device = models.Device{Udid: udid, CreatedAt: PacificNow()}
	if err := tx.Create(&device).Error; err != nil {
		if isUniqueViolation(err) {
			var existing models.Device
			if err := tx.Where("udid = ?", udid).First(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}
	return &device, nil
}

// findOrCreateOwnership is a no-op when the (user, device) pair already holds
// an ownership row.
func findOrCreateOwnership(tx *gorm.DB, userID uint, deviceID uint) error {
	var ownership models.Ownership
	err := tx.Where("user_id = ? AND device_id = ?", userID, deviceID).First(&ownership).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	ownership = models.Ownership{UserID: userID, DeviceID: deviceID, CreatedAt: PacificNow()}
	if err := tx.Create(&ownership).Error; err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return err
	}
	return nil
}

func (s *Soil) register(udid string, email string) (*models.Device, *models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSoilCore,
		zap.String(common.LoggerFieldSoilCategory, common.LoggerCategorySoilRegister),
	)

	if udid == "" || email == "" {
		return nil, nil, NewValidationError("Se requiere udid y email")
	}

	var device *models.Device
	var user *models.User

	err := s.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var err error
		if user, err = findOrCreateUser(tx, email); err != nil {
			return err
		}
		if device, err = findOrCreateDevice(tx, udid); err != nil {
			return err
		}
		return findOrCreateOwnership(tx, user.ID, device.ID)
	})
	if err != nil {
		return nil, nil, NewStorageError(err)
	}

	logger.Info("Registered device for user",
		zap.String("udid", device.Udid),
		zap.String("email", user.Email))

	return device, user, nil
}

type IRegistryImpl struct {
	soil *Soil
}

func (ir *IRegistryImpl) Register(udid string, email string) (*models.Device, *models.User, error) {
	return ir.soil.register(udid, email)
}

func (s *Soil) GetIRegistry() IRegistry {
	return &IRegistryImpl{soil: s}
}

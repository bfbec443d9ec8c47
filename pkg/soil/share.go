package soil

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"plantita.mx/soil-log-service/pkg/common"
	"plantita.mx/soil-log-service/pkg/models"
)

// share is the verified variant: every failed precondition is accumulated into
// one message before responding, and nothing mutates on the failure path.
func (s *Soil) share(udid string, ownerEmail string, targetEmail string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSoilCore,
		zap.String(common.LoggerFieldSoilCategory, common.LoggerCategorySoilShare),
	)

	var alerta string

	var device models.Device
	deviceFound := true
	if err := s.Db.Conn.Where("udid = ?", udid).First(&device).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return NewStorageError(err)
		}
		deviceFound = false
		alerta += "Dispositivo no encontrado. "
	}

	var owner models.User
	if err := s.Db.Conn.Where("email = ?", ownerEmail).First(&owner).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return NewStorageError(err)
		}
		alerta += "Usuario primario no encontrado. "
	} else if deviceFound {
		var ownership models.Ownership
		err := s.Db.Conn.Where("user_id = ? AND device_id = ?", owner.ID, device.ID).First(&ownership).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			alerta += "Dispositivo no asociado al usuario primario. "
		} else if err != nil {
			return NewStorageError(err)
		}
	}

	if alerta != "" {
		return NewAuthorizationError(alerta)
	}

	err := s.Db.Conn.Transaction(func(tx *gorm.DB) error {
		target, err := findOrCreateUser(tx, targetEmail)
		if err != nil {
			return err
		}
		return findOrCreateOwnership(tx, target.ID, device.ID)
	})
	if err != nil {
		return NewStorageError(err)
	}

	logger.Info("Shared device",
		zap.String("udid", udid),
		zap.String("owner", ownerEmail),
		zap.String("target", targetEmail))

	return nil
}

// shareDirect is the legacy variant kept for backward compatibility: it skips
// the owner-verification step entirely and shares on udid + target email.
func (s *Soil) shareDirect(udid string, targetEmail string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSoilCore,
		zap.String(common.LoggerFieldSoilCategory, common.LoggerCategorySoilShare),
	)

	var device models.Device
	if err := s.Db.Conn.Where("udid = ?", udid).First(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("Dispositivo no encontrado")
		}
		return NewStorageError(err)
	}

	err := s.Db.Conn.Transaction(func(tx *gorm.DB) error {
		target, err := findOrCreateUser(tx, targetEmail)
		if err != nil {
			return err
		}
		return findOrCreateOwnership(tx, target.ID, device.ID)
	})
	if err != nil {
		return NewStorageError(err)
	}

	logger.Info("Shared device without owner verification",
		zap.String("udid", udid),
		zap.String("target", targetEmail))

	return nil
}

type ISharingImpl struct {
	soil *Soil
}

func (is *ISharingImpl) Share(udid string, ownerEmail string, targetEmail string) error {
	return is.soil.share(udid, ownerEmail, targetEmail)
}

func (is *ISharingImpl) ShareDirect(udid string, targetEmail string) error {
	return is.soil.shareDirect(udid, targetEmail)
}

func (s *Soil) GetISharing() ISharing {
	return &ISharingImpl{soil: s}
}

package soil

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"plantita.mx/soil-log-service/pkg/common"
	"plantita.mx/soil-log-service/pkg/models"
)

const DefaultPageSize = 10

// ReadingFilter selects which readings a listing returns. The filters are
// mutually exclusive and apply in a fixed priority order: All, Since, Latest,
// Days, Amount, then offset pagination. Days and Amount are only reachable
// from the legacy route family.
type ReadingFilter struct {
	All      bool
	Since    *time.Time
	Latest   bool
	Days     int
	Amount   int
	Page     int
	PageSize int
}

// readingOrder breaks identical timestamps by insertion order, newest first.
const readingOrder = "created_at DESC, id DESC"

func (s *Soil) listReadings(deviceID uint, filter ReadingFilter) ([]models.Reading, error) {
	base := s.Db.Conn.Where("device_id = ?", deviceID).Order(readingOrder)

	var readings []models.Reading
	var err error

	switch {
	case filter.All:
		err = base.Find(&readings).Error
	case filter.Since != nil:
		err = base.Where("created_at >= ?", *filter.Since).Find(&readings).Error
	case filter.Latest:
		err = base.Limit(1).Find(&readings).Error
	case filter.Days > 0:
		cutoff := PacificNow().AddDate(0, 0, -filter.Days)
		err = base.Where("created_at >= ?", cutoff).Find(&readings).Error
	case filter.Amount > 0:
		err = base.Limit(filter.Amount).Find(&readings).Error
	default:
		page := filter.Page
		if page < 1 {
			page = 1
		}
		pageSize := filter.PageSize
		if pageSize < 1 {
			pageSize = DefaultPageSize
		}
		err = base.Offset((page - 1) * pageSize).Limit(pageSize).Find(&readings).Error
	}

	if err != nil {
		return nil, NewStorageError(err)
	}
	return readings, nil
}

func (s *Soil) listDeviceReadings(udid string, filter ReadingFilter) ([]models.Reading, error) {
	var device models.Device
	if err := s.Db.Conn.Where("udid = ?", udid).First(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Dispositivo no encontrado")
		}
		return nil, NewStorageError(err)
	}
	return s.listReadings(device.ID, filter)
}

func (s *Soil) listUserDeviceReadings(email string, udid string, filter ReadingFilter) ([]models.Reading, error) {
	var user models.User
	if err := s.Db.Conn.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Usuario no encontrado")
		}
		return nil, NewStorageError(err)
	}

	var device models.Device
	if err := s.Db.Conn.Where("udid = ?", udid).First(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Dispositivo no encontrado")
		}
		return nil, NewStorageError(err)
	}

	var ownership models.Ownership
	err := s.Db.Conn.Where("user_id = ? AND device_id = ?", user.ID, device.ID).First(&ownership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewAuthorizationError("Dispositivo no asociado al usuario")
	} else if err != nil {
		return nil, NewStorageError(err)
	}

	return s.listReadings(device.ID, filter)
}

func (s *Soil) listUserDevices(email string) ([]string, error) {
	var user models.User
	if err := s.Db.Conn.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Email no registrado")
		}
		return nil, NewStorageError(err)
	}

	var devices []models.Device
	err := s.Db.Conn.
		Joins("JOIN ownerships ON ownerships.device_id = devices.id").
		Where("ownerships.user_id = ?", user.ID).
		Find(&devices).Error
	if err != nil {
		return nil, NewStorageError(err)
	}

	return common.Mapper(devices, func(d models.Device) string { return d.Udid }), nil
}

// DeviceSummary is one row of the debug listing: a device paired with each
// owner it is registered to, plus its total reading count. Unowned devices
// appear once with a nil owner.
type DeviceSummary struct {
	Udid         string  `gorm:"column:udid" json:"udid"`
	RegisteredTo *string `gorm:"column:registered_to" json:"registered_to"`
	LogsCount    int64   `gorm:"column:logs_count" json:"logs_count"`
}

func (s *Soil) deviceSummaries() ([]DeviceSummary, error) {
	var summaries []DeviceSummary
	err := s.Db.Conn.
		Table("devices").
		Select("devices.udid AS udid, users.email AS registered_to, count(readings.id) AS logs_count").
		Joins("LEFT JOIN ownerships ON ownerships.device_id = devices.id").
		Joins("LEFT JOIN users ON users.id = ownerships.user_id").
		Joins("LEFT JOIN readings ON readings.device_id = devices.id").
		Group("devices.udid, users.email").
		Scan(&summaries).Error
	if err != nil {
		return nil, NewStorageError(err)
	}
	return summaries, nil
}

type IQueryImpl struct {
	soil *Soil
}

func (iq *IQueryImpl) ListDeviceReadings(udid string, filter ReadingFilter) ([]models.Reading, error) {
	return iq.soil.listDeviceReadings(udid, filter)
}

func (iq *IQueryImpl) ListUserDeviceReadings(email string, udid string, filter ReadingFilter) ([]models.Reading, error) {
	return iq.soil.listUserDeviceReadings(email, udid, filter)
}

func (iq *IQueryImpl) ListUserDevices(email string) ([]string, error) {
	return iq.soil.listUserDevices(email)
}

func (iq *IQueryImpl) DeviceSummaries() ([]DeviceSummary, error) {
	return iq.soil.deviceSummaries()
}

func (s *Soil) GetIQuery() IQuery {
	return &IQueryImpl{soil: s}
}

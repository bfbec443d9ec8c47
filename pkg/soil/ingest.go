package soil

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"plantita.mx/soil-log-service/pkg/common"
	"plantita.mx/soil-log-service/pkg/models"
)

// submitReading appends one sample for a known device. Devices are never
// auto-created here; an unknown udid fails before any write.
func (s *Soil) submitReading(udid string, input *models.Reading) (*models.Reading, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameSoilCore,
		zap.String(common.LoggerFieldSoilCategory, common.LoggerCategorySoilReading),
	)

	if udid == "" {
		return nil, NewValidationError("Campos requeridos faltantes")
	}

	var device models.Device
	if err := s.Db.Conn.Where("udid = ?", udid).First(&device).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Dispositivo no encontrado")
		}
		return nil, NewStorageError(err)
	}

	reading := models.Reading{
		DeviceID:     device.ID,
		Temp:         input.Temp,
		MoistureDirt: input.MoistureDirt,
		MoistureAir:  input.MoistureAir,
		RawSoil:      input.RawSoil,
		RawCalMin:    input.RawCalMin,
		RawCalMax:    input.RawCalMax,
		SoilType:     input.SoilType,
		CreatedAt:    PacificNow(),
	}

	err := s.Db.Conn.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&reading).Error
	})
	if err != nil {
		return nil, NewStorageError(err)
	}

	logger.Info("Stored reading", zap.String("udid", udid), zap.Uint("reading_id", reading.ID))

	return &reading, nil
}

type IIngestImpl struct {
	soil *Soil
}

func (ii *IIngestImpl) SubmitReading(udid string, input *models.Reading) (*models.Reading, error) {
	return ii.soil.submitReading(udid, input)
}

func (s *Soil) GetIIngest() IIngest {
	return &IIngestImpl{soil: s}
}

package soil

import (
	"plantita.mx/soil-log-service/pkg/db"
	"plantita.mx/soil-log-service/pkg/models"
)

//go:generate mockgen -source=soil.go -destination=mocks/soil_mock.go -package=mocks

type IRegistry interface {
	Register(udid string, email string) (*models.Device, *models.User, error)
}

type ISharing interface {
	Share(udid string, ownerEmail string, targetEmail string) error
	ShareDirect(udid string, targetEmail string) error
}

type IIngest interface {
	SubmitReading(udid string, input *models.Reading) (*models.Reading, error)
}

type IQuery interface {
	ListDeviceReadings(udid string, filter ReadingFilter) ([]models.Reading, error)
	ListUserDeviceReadings(email string, udid string, filter ReadingFilter) ([]models.Reading, error)
	ListUserDevices(email string) ([]string, error)
	DeviceSummaries() ([]DeviceSummary, error)
}

type Soil struct {
	Db       db.DB
	Registry IRegistry
	Sharing  ISharing
	Ingest   IIngest
	Query    IQuery
}

type ServiceOpts struct {
	Registry IRegistry
	Sharing  ISharing
	Ingest   IIngest
	Query    IQuery
}

func (s *Soil) WithServices(opts ServiceOpts) *Soil {
	if opts.Registry != nil {
		s.Registry = opts.Registry
	}
	if opts.Sharing != nil {
		s.Sharing = opts.Sharing
	}
	if opts.Ingest != nil {
		s.Ingest = opts.Ingest
	}
	if opts.Query != nil {
		s.Query = opts.Query
	}
	return s
}

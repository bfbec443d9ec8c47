package http

import (
	"plantita.mx/soil-log-service/pkg/common"
	"plantita.mx/soil-log-service/pkg/models"
)

// ReadingView is the full wire projection of a reading. LegacyReadingView is
// what the legacy listing endpoints return: the raw calibration values and
// soil classifier are omitted.
type ReadingView struct {
	Temp         float64  `json:"temp"`
	MoistureDirt float64  `json:"moisture_dirt"`
	MoistureAir  float64  `json:"moisture_air"`
	RawSoil      *float64 `json:"raw_soil"`
	RawCalMin    *float64 `json:"raw_calMin"`
	RawCalMax    *float64 `json:"raw_calMax"`
	SoilType     *int     `json:"soil_type"`
	Timestamp    string   `json:"timestamp"`
}

type LegacyReadingView struct {
	Temp         float64 `json:"temp"`
	MoistureDirt float64 `json:"moisture_dirt"`
	MoistureAir  float64 `json:"moisture_air"`
	Timestamp    string  `json:"timestamp"`
}

func projectReadings(readings []models.Reading, full bool) any {
	if full {
		return common.Mapper(readings, func(r models.Reading) ReadingView {
			return ReadingView{
				Temp:         r.Temp,
				MoistureDirt: r.MoistureDirt,
				MoistureAir:  r.MoistureAir,
				RawSoil:      r.RawSoil,
				RawCalMin:    r.RawCalMin,
				RawCalMax:    r.RawCalMax,
				SoilType:     r.SoilType,
				Timestamp:    r.CreatedAt.Format(timestampLayout),
			}
		})
	}
	return common.Mapper(readings, func(r models.Reading) LegacyReadingView {
		return LegacyReadingView{
			Temp:         r.Temp,
			MoistureDirt: r.MoistureDirt,
			MoistureAir:  r.MoistureAir,
			Timestamp:    r.CreatedAt.Format(timestampLayout),
		}
	})
}

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"plantita.mx/soil-log-service/pkg/models"
	"plantita.mx/soil-log-service/pkg/soil"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

// timestampLayout is the wire format for reading timestamps and the `since`
// filter: ISO-8601 at second precision, no timezone suffix.
const timestampLayout = "2006-01-02T15:04:05"

type RegisterRequest struct {
	Udid  string `json:"udid"`
	Email string `json:"email"`
}

var registerRequestSchema = z.Struct(z.Shape{
	"Udid":  z.String().Required(),
	"Email": z.String().Required(),
})

func (rs *RestfulServer) RegisterDevice(c *gin.Context) {
	var req RegisterRequest
	if err := registerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Se requiere udid y email"})
		return
	}

	device, user, err := rs.Soil.Registry.Register(req.Udid, req.Email)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Dispositivo registrado",
		"udid":    device.Udid,
		"email":   user.Email,
	})
}

type ShareRequest struct {
	Udid          string `json:"udid"`
	EmailPersonal string `json:"email_personal"`
	Email         string `json:"email"`
}

// Shape keys name the struct fields; the wire keys come from the json tags.
var shareRequestSchema = z.Struct(z.Shape{
	"Udid":          z.String().Required(),
	"EmailPersonal": z.String().Required(),
	"Email":         z.String().Required(),
})

func (rs *RestfulServer) ShareDevice(c *gin.Context) {
	var req ShareRequest
	if err := shareRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Se requiere udid, email_personal y email"})
		return
	}

	if err := rs.Soil.Sharing.Share(req.Udid, req.EmailPersonal, req.Email); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dispositivo compartido exitosamente"})
}

type ShareDirectRequest struct {
	Udid  string `json:"udid"`
	Email string `json:"email"`
}

var shareDirectRequestSchema = z.Struct(z.Shape{
	"Udid":  z.String().Required(),
	"Email": z.String().Required(),
})

// ShareDeviceDirect is the legacy unverified share: no ownership gate, kept
// as a distinct backward-compatibility surface.
func (rs *RestfulServer) ShareDeviceDirect(c *gin.Context) {
	var req ShareDirectRequest
	if err := shareDirectRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Se requiere udid y email"})
		return
	}

	if err := rs.Soil.Sharing.ShareDirect(req.Udid, req.Email); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dispositivo compartido exitosamente"})
}

type SubmitReadingRequest struct {
	Udid         string  `json:"udid"`
	Temp         float64 `json:"temp"`
	MoistureDirt float64 `json:"moisture_dirt"`
	MoistureAir  float64 `json:"moisture_air"`
	RawSoil      float64 `json:"raw_soil"`
	RawCalMin    float64 `json:"raw_calMin"`
	RawCalMax    float64 `json:"raw_calMax"`
	SoilType     int     `json:"soil_type"`
}

var submitReadingRequestSchema = z.Struct(z.Shape{
	"Udid":         z.String().Required(),
	"Temp":         z.Float64().Required(),
	"MoistureDirt": z.Float64().Required(),
	"MoistureAir":  z.Float64().Required(),
	"RawSoil":      z.Float64().Required(),
	"RawCalMin":    z.Float64().Required(),
	"RawCalMax":    z.Float64().Required(),
	"SoilType":     z.Int().Required(),
})

var submitReadingLegacyRequestSchema = z.Struct(z.Shape{
	"Udid":         z.String().Required(),
	"Temp":         z.Float64().Required(),
	"MoistureDirt": z.Float64().Required(),
	"MoistureAir":  z.Float64().Required(),
})

// SubmitReading ingests one sample. The current family requires the full
// 8-field payload; the legacy family the 3-measurement one, leaving the raw
// calibration values and soil classifier unset.
func (rs *RestfulServer) SubmitReading(fullFields bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitReadingRequest

		schema := submitReadingLegacyRequestSchema
		if fullFields {
			schema = submitReadingRequestSchema
		}
		if err := schema.Parse(zhttp.Request(c.Request), &req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Campos requeridos faltantes"})
			return
		}

		input := models.Reading{
			Temp:         req.Temp,
			MoistureDirt: req.MoistureDirt,
			MoistureAir:  req.MoistureAir,
		}
		if fullFields {
			rawSoil, rawCalMin, rawCalMax := req.RawSoil, req.RawCalMin, req.RawCalMax
			soilType := req.SoilType
			input.RawSoil = &rawSoil
			input.RawCalMin = &rawCalMin
			input.RawCalMax = &rawCalMax
			input.SoilType = &soilType
		}

		if _, err := rs.Soil.Ingest.SubmitReading(req.Udid, &input); err != nil {
			abortWithError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Datos guardados"})
	}
}

// parseReadingFilter reads the listing query parameters. Days and amount are
// only honored on the legacy family. A malformed `since` is the single
// validation failure; unparsable integers fall back to their defaults, as the
// deployed service did.
func parseReadingFilter(c *gin.Context, legacy bool) (soil.ReadingFilter, error) {
	var filter soil.ReadingFilter

	filter.All = equalsTrue(c.Query("all"))
	filter.Latest = equalsTrue(c.Query("latest"))

	// Only the winning filter is applied, so a since value behind `all` is
	// ignored rather than validated.
	if sinceStr := c.Query("since"); sinceStr != "" && !filter.All {
		since, err := time.Parse(timestampLayout, sinceStr)
		if err != nil {
			return filter, soil.NewValidationError("Formato de fecha inválido. Usa YYYY-MM-DDTHH:MM:SS")
		}
		filter.Since = &since
	}

	if legacy {
		filter.Days = intQuery(c, "days", 0)
		filter.Amount = intQuery(c, "amount", 0)
	}

	filter.Page = intQuery(c, "page", 1)
	filter.PageSize = intQuery(c, "page_size", soil.DefaultPageSize)

	return filter, nil
}

func equalsTrue(v string) bool {
	return v == "true" || v == "True" || v == "TRUE"
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}

func (rs *RestfulServer) ListDeviceReadings(legacy bool) gin.HandlerFunc {
	param := "key"
	if legacy {
		param = "udid"
	}
	return func(c *gin.Context) {
		udid := c.Param(param)

		filter, err := parseReadingFilter(c, legacy)
		if err != nil {
			abortWithError(c, err)
			return
		}

		readings, err := rs.Soil.Query.ListDeviceReadings(udid, filter)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, projectReadings(readings, !legacy))
	}
}

func (rs *RestfulServer) ListUserDeviceReadings(legacy bool) gin.HandlerFunc {
	emailParam := "key"
	if legacy {
		emailParam = "email"
	}
	return func(c *gin.Context) {
		email := c.Param(emailParam)
		udid := c.Param("udid")

		filter, err := parseReadingFilter(c, legacy)
		if err != nil {
			abortWithError(c, err)
			return
		}

		readings, err := rs.Soil.Query.ListUserDeviceReadings(email, udid, filter)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, projectReadings(readings, !legacy))
	}
}

func (rs *RestfulServer) ListUserDevices(c *gin.Context) {
	udids, err := rs.Soil.Query.ListUserDevices(c.Param("email"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	if udids == nil {
		udids = []string{}
	}
	c.JSON(http.StatusOK, udids)
}

func (rs *RestfulServer) DebugList(c *gin.Context) {
	summaries, err := rs.Soil.Query.DeviceSummaries()
	if err != nil {
		abortWithError(c, err)
		return
	}

	if summaries == nil {
		summaries = []soil.DeviceSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"devices": summaries})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"plantita.mx/soil-log-service/pkg/soil"
)

// Tier is one of the per-route rate classes carried over from the deployed
// service: mild for log listings, medium for registration and debug, strict
// for sharing and ingestion.
type Tier struct {
	Name  string
	Rate  rate.Limit
	Burst int
}

// Default tier rates, expressed per second. Overridable via RestfulServer
// fields before Setup.
var (
	TierMild   = Tier{Name: "mild", Rate: rate.Limit(10.0 / 60.0), Burst: 10}
	TierMedium = Tier{Name: "medium", Rate: rate.Limit(5.0 / 60.0), Burst: 5}
	TierStrict = Tier{Name: "strict", Rate: rate.Limit(2.0 / 60.0), Burst: 2}
)

type RestfulServer struct {
	Server           *gin.Engine
	Soil             *soil.Soil
	RateLimiterStore *soil.RateLimiterStore

	Mild   Tier
	Medium Tier
	Strict Tier
}

// Limit returns a middleware enforcing tier for each client IP. With no
// limiter store configured every request passes.
func (rs *RestfulServer) Limit(tier Tier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rs.RateLimiterStore == nil {
			c.Next()
			return
		}
		key := c.ClientIP() + "|" + tier.Name
		if !rs.RateLimiterStore.Allow(key, tier.Rate, tier.Burst) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}

// RedirectHTTPS answers proxied plain-http requests with a permanent redirect.
// Applied to the current route family only, matching the deployed behavior.
func RedirectHTTPS() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Forwarded-Proto") == "http" {
			target := "https://" + c.Request.Host + c.Request.URL.RequestURI()
			c.Redirect(http.StatusMovedPermanently, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rs *RestfulServer) Setup() {
	if rs.Mild.Name == "" {
		rs.Mild = TierMild
	}
	if rs.Medium.Name == "" {
		rs.Medium = TierMedium
	}
	if rs.Strict.Name == "" {
		rs.Strict = TierStrict
	}

	rs.Server.GET("/healthz", rs.HealthCheck)

	// Current family. The shared :key segment is a udid on the one-segment
	// logs route and an email on the two-segment one.
	iot := rs.Server.Group("/iot", RedirectHTTPS())
	{
		iot.GET("/debug-list", rs.Limit(rs.Medium), rs.DebugList)
		iot.POST("/register", rs.Limit(rs.Medium), rs.RegisterDevice)
		iot.POST("/share", rs.Limit(rs.Strict), rs.ShareDevice)
		iot.GET("/:email", rs.Limit(rs.Strict), rs.ListUserDevices)
	}
	logs := rs.Server.Group("/logs", RedirectHTTPS())
	{
		logs.POST("/submit", rs.Limit(rs.Strict), rs.SubmitReading(true))
		logs.GET("/:key", rs.Limit(rs.Mild), rs.ListDeviceReadings(false))
		logs.GET("/:key/:udid", rs.Limit(rs.Mild), rs.ListUserDeviceReadings(false))
	}

	// Legacy family: unverified share, 3-field ingestion, trimmed projection,
	// days/amount filters.
	api := rs.Server.Group("/api")
	{
		api.GET("/devices/debug-list", rs.Limit(rs.Mild), rs.DebugList)
		api.POST("/iot/register", rs.Limit(rs.Strict), rs.RegisterDevice)
		api.POST("/iot/share", rs.Limit(rs.Medium), rs.ShareDeviceDirect)
		api.GET("/iot/:email", rs.Limit(rs.Medium), rs.ListUserDevices)
		api.POST("/logs/submit", rs.Limit(rs.Strict), rs.SubmitReading(false))
		api.GET("/logs/device/:udid", rs.Limit(rs.Mild), rs.ListDeviceReadings(true))
		api.GET("/logs/user-device/:email/:udid", rs.Limit(rs.Mild), rs.ListUserDeviceReadings(true))
	}
}

// statusFor maps core error kinds onto transport status codes.
func statusFor(err error) int {
	switch soil.KindOf(err) {
	case soil.KindValidation:
		return http.StatusBadRequest
	case soil.KindNotFound:
		return http.StatusNotFound
	case soil.KindAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the wire shape of every failure: {"error": "<message>"}.
// Storage errors keep their message for the debug field; connection details
// must not appear here in production deployments.
func errorBody(err error) gin.H {
	return gin.H{"error": strings.TrimSpace(err.Error())}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFor(err), errorBody(err))
}

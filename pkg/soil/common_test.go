package soil

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/google/uuid"
	"plantita.mx/soil-log-service/pkg/db"
)

// GetTestSoilWithMemorySqliteDialector wires a Soil core against the shared
// in-memory sqlite instance with all real services.
func GetTestSoilWithMemorySqliteDialector() *Soil {
	dbInstance := db.GetInstance(db.UseMemorySqliteDialector())
	soilInstance := &Soil{Db: *dbInstance}
	soilInstance.WithServices(ServiceOpts{
		Registry: soilInstance.GetIRegistry(),
		Sharing:  soilInstance.GetISharing(),
		Ingest:   soilInstance.GetIIngest(),
		Query:    soilInstance.GetIQuery(),
	})
	return soilInstance
}

func testUdid() string {
	return "ESP32-" + uuid.NewString()
}

func testEmail() string {
	return uuid.NewString() + "@test.local"
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

package soil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"plantita.mx/soil-log-service/pkg/common"
	"plantita.mx/soil-log-service/pkg/models"
	_ "plantita.mx/soil-log-service/pkg/testing"
)

func TestRegister(t *testing.T) {
	common.SetTestLoggerNop()

	soilObj := GetTestSoilWithMemorySqliteDialector()

	udid := testUdid()
	email := testEmail()

	device, user, err := soilObj.Registry.Register(udid, email)
	require.NoError(t, err)
	assert.Equal(t, udid, device.Udid)
	assert.Equal(t, email, user.Email)
	assert.NotZero(t, device.ID)
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	var ownership models.Ownership
	err = soilObj.Db.Conn.Where("user_id = ? AND device_id = ?", user.ID, device.ID).First(&ownership).Error
	assert.NoError(t, err)
}

func TestRegister_Idempotent(t *testing.T) {
	common.SetTestLoggerNop()

	soilObj := GetTestSoilWithMemorySqliteDialector()

	udid := testUdid()
	email := testEmail()

	device1, user1, err := soilObj.Registry.Register(udid, email)
	require.NoError(t, err)

	device2, user2, err := soilObj.Registry.Register(udid, email)
	require.NoError(t, err)

	assert.Equal(t, device1.ID, device2.ID)
	assert.Equal(t, user1.ID, user2.ID)

	var userCount, deviceCount, ownershipCount int64
	soilObj.Db.Conn.Model(&models.User{}).Where("email = ?", email).Count(&userCount)
	soilObj.Db.Conn.Model(&models.Device{}).Where("udid = ?", udid).Count(&deviceCount)
	soilObj.Db.Conn.Model(&models.Ownership{}).
		Where("user_id = ? AND device_id = ?", user1.ID, device1.ID).Count(&ownershipCount)

	assert.Equal(t, int64(1), userCount)
	assert.Equal(t, int64(1), deviceCount)
	assert.Equal(t, int64(1), ownershipCount)
}

func TestRegister_SharedDeviceKeepsOwners(t *testing.T) {
	common.SetTestLoggerNop()

	soilObj := GetTestSoilWithMemorySqliteDialector()

	udid := testUdid()

	_, userA, err := soilObj.Registry.Register(udid, testEmail())
	require.NoError(t, err)
	device, userB, err := soilObj.Registry.Register(udid, testEmail())
	require.NoError(t, err)

	assert.NotEqual(t, userA.ID, userB.ID)

	var ownershipCount int64
	soilObj.Db.Conn.Model(&models.Ownership{}).Where("device_id = ?", device.ID).Count(&ownershipCount)
	assert.Equal(t, int64(2), ownershipCount)
}

func TestRegister_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	soilObj := GetTestSoilWithMemorySqliteDialector()

	_, _, err := soilObj.Registry.Register("", testEmail())
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	_, _, err = soilObj.Registry.Register(testUdid(), "")
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestRegister_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	soilObj := GetTestSoilWithMemorySqliteDialector()

	udid := testUdid()
	email := testEmail()

	_, _, err := soilObj.Registry.Register(udid, email)
	require.NoError(t, err)

	logs := ParseLogs(buf)

	found := false
	for _, log := range logs {
		lobj := log.(map[string]any)
		if lobj["category"] == "register" &&
			lobj["logger"] == "soil_core" &&
			lobj["msg"] == "Registered device for user" &&
			lobj["udid"] == udid &&
			lobj["email"] == email {
			found = true
		}
	}
	assert.True(t, found, "log not found")
}

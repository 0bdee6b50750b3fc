package telemetry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waleki.xyz/water-level-service/pkg/common"
	"waleki.xyz/water-level-service/pkg/models"
	. "waleki.xyz/water-level-service/pkg/telemetry"
	_ "waleki.xyz/water-level-service/pkg/testing"
)

func TestAddReading(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := MustCreateTestDevice(t, core, 0.5, 5.0)

	reading, err := core.Reading.AddReading(device.ID, &ReadingInput{
		Level:        2.4,
		Temperature:  floatPtr(21.5),
		BatteryLevel: intPtr(88),
	})
	require.NoError(t, err)
	require.NotZero(t, reading.ID)
	assert.Equal(t, device.ID, reading.DeviceID)
	assert.Equal(t, 2.4, reading.Level)
	assert.WithinDuration(t, time.Now(), reading.Timestamp, time.Second)

	// a stored sample promotes the device and stamps last_seen
	var saved models.Device
	require.NoError(t, core.Db.Conn.First(&saved, device.ID).Error)
	assert.Equal(t, models.DeviceStatusActive, saved.Status)
	require.NotNil(t, saved.LastSeen)
	assert.WithinDuration(t, time.Now(), *saved.LastSeen, time.Second)
}

func TestAddReading_ExplicitTimestamp(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := MustCreateTestDevice(t, core, 0.5, 5.0)

	past := time.Now().Add(-3 * time.Hour).Truncate(time.Second)
	reading, err := core.Reading.AddReading(device.ID, &ReadingInput{
		Level:     1.2,
		Timestamp: &past,
	})
	require.NoError(t, err)
	assert.True(t, reading.Timestamp.Equal(past))
}

func TestAddReading_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := MustCreateTestDevice(t, core, 0.5, 5.0)

	var validationErr *ValidationError
	var notFoundErr *NotFoundError

	_, err := core.Reading.AddReading(device.ID, &ReadingInput{Level: -0.1})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Water level cannot be negative", validationErr.Message)

	_, err = core.Reading.AddReading(device.ID, &ReadingInput{Level: 1.0, Temperature: floatPtr(120)})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Temperature must be between -50°C and 100°C", validationErr.Message)

	_, err = core.Reading.AddReading(device.ID, &ReadingInput{Level: 1.0, BatteryLevel: intPtr(101)})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Battery level must be between 0% and 100%", validationErr.Message)

	_, err = core.Reading.AddReading(99999, &ReadingInput{Level: 1.0})
	require.ErrorAs(t, err, &notFoundErr)
	assert.EqualValues(t, 99999, notFoundErr.ID)

	// boundary values are accepted
	_, err = core.Reading.AddReading(device.ID, &ReadingInput{
		Level:        0,
		Temperature:  floatPtr(-50),
		BatteryLevel: intPtr(0),
	})
	assert.NoError(t, err)
}

func TestGetReadings(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := MustCreateTestDevice(t, core, 0.5, 5.0)

	base := time.Now().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		ts := base.Add(-time.Duration(i) * time.Hour)
		_, err := core.Reading.AddReading(device.ID, &ReadingInput{
			Level:     float64(i + 1),
			Timestamp: &ts,
		})
		require.NoError(t, err)
	}

	readings, err := core.Reading.GetReadings(device.ID, ReadingQuery{})
	require.NoError(t, err)
	require.Len(t, readings, 5)

	// newest first
	assert.Equal(t, 1.0, readings[0].Level)
	assert.Equal(t, 5.0, readings[4].Level)

	readings, err = core.Reading.GetReadings(device.ID, ReadingQuery{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, readings, 2)

	// bounds are inclusive
	start := base.Add(-2 * time.Hour)
	end := base.Add(-1 * time.Hour)
	readings, err = core.Reading.GetReadings(device.ID, ReadingQuery{StartTime: &start, EndTime: &end})
	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.Equal(t, 2.0, readings[0].Level)
	assert.Equal(t, 3.0, readings[1].Level)
}

func TestGetReadings_TimestampTies(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := MustCreateTestDevice(t, core, 0.5, 5.0)

	shared := time.Now().Add(-time.Hour).Truncate(time.Second)
	for i := 0; i < 3; i++ {
		_, err := core.Reading.AddReading(device.ID, &ReadingInput{
			Level:     float64(i + 1),
			Timestamp: &shared,
		})
		require.NoError(t, err)
	}

	readings, err := core.Reading.GetReadings(device.ID, ReadingQuery{})
	require.NoError(t, err)
	require.Len(t, readings, 3)

	// equal timestamps fall back to descending id, so the most
	// recently stored row wins
	assert.Equal(t, 3.0, readings[0].Level)
	assert.Equal(t, 2.0, readings[1].Level)
	assert.Equal(t, 1.0, readings[2].Level)
	assert.True(t, readings[0].ID > readings[1].ID)
	assert.True(t, readings[1].ID > readings[2].ID)

	// a bound sitting exactly on the shared timestamp still includes all rows
	readings, err = core.Reading.GetReadings(device.ID, ReadingQuery{StartTime: &shared, EndTime: &shared})
	require.NoError(t, err)
	assert.Len(t, readings, 3)
}

func TestGetReadings_UnknownDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	var notFoundErr *NotFoundError
	_, err := core.Reading.GetReadings(42, ReadingQuery{})
	require.ErrorAs(t, err, &notFoundErr)
}

func TestDeleteReadingsForDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := MustCreateTestDevice(t, core, 0.5, 5.0)
	other := MustCreateTestDevice(t, core, 0.5, 5.0)

	for i := 0; i < 3; i++ {
		_, err := core.Reading.AddReading(device.ID, &ReadingInput{Level: 1.0})
		require.NoError(t, err)
	}
	_, err := core.Reading.AddReading(other.ID, &ReadingInput{Level: 1.0})
	require.NoError(t, err)

	require.NoError(t, core.Reading.DeleteReadingsForDevice(device.ID))

	var count int64
	require.NoError(t, core.Db.Conn.Model(&models.WaterReading{}).Where("device_id = ?", device.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	require.NoError(t, core.Db.Conn.Model(&models.WaterReading{}).Where("device_id = ?", other.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

package telemetry_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"

	"waleki.xyz/water-level-service/pkg/common"
	"waleki.xyz/water-level-service/pkg/models"
	. "waleki.xyz/water-level-service/pkg/telemetry"
	_ "waleki.xyz/water-level-service/pkg/testing"
)

func TestIngest(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := MustCreateTestDevice(t, core, 0.5, 5.0)

	result, err := core.Ingest.Ingest(&ReadingPayload{
		DeviceID: device.ID,
		Level:    floatPtr(2.5),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Reading)
	assert.Equal(t, 2.5, result.Reading.Level)
	assert.Empty(t, result.Alerts)

	// Verify that the reading was inserted
	var saved models.WaterReading
	require.NoError(t, core.Db.Conn.Where("device_id = ?", device.ID).First(&saved).Error)
	assert.Equal(t, 2.5, saved.Level)
}

func TestIngest_Alerts(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := MustCreateTestDevice(t, core, 0.5, 5.0)

	low, err := core.Ingest.Ingest(&ReadingPayload{DeviceID: device.ID, Level: floatPtr(0.3)})
	require.NoError(t, err)
	require.Len(t, low.Alerts, 1)
	assert.Equal(t, "Water level critically low: 0.3m (threshold: 0.5m)", low.Alerts[0])

	high, err := core.Ingest.Ingest(&ReadingPayload{DeviceID: device.ID, Level: floatPtr(6)})
	require.NoError(t, err)
	require.Len(t, high.Alerts, 1)
	assert.Equal(t, "Water level critically high: 6m (threshold: 5m)", high.Alerts[0])

	// thresholds are inclusive
	atLow, err := core.Ingest.Ingest(&ReadingPayload{DeviceID: device.ID, Level: floatPtr(0.5)})
	require.NoError(t, err)
	assert.Len(t, atLow.Alerts, 1)
}

func TestIngest_MisconfiguredThresholds(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	// low above high: both bounds trip at once
	device := MustCreateTestDevice(t, core, 5.0, 1.0)

	result, err := core.Ingest.Ingest(&ReadingPayload{DeviceID: device.ID, Level: floatPtr(3)})
	require.NoError(t, err)
	assert.Len(t, result.Alerts, 2)
}

func TestIngest_AlertLogging(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	ctrl, core, _, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := MustCreateTestDevice(t, core, 0.5, 5.0)

	_, err := core.Ingest.Ingest(&ReadingPayload{DeviceID: device.ID, Level: floatPtr(0.2)})
	require.NoError(t, err)

	found := false
	for _, entry := range ParseLogs(&buf) {
		if m, ok := entry.(map[string]any); ok && m["msg"] == "Alert thresholds crossed" {
			found = true
			assert.Equal(t, "ingest", m["category"])
		}
	}
	assert.True(t, found, "expected an alert log entry")
}

func TestIngest_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	var validationErr *ValidationError
	var notFoundErr *NotFoundError

	_, err := core.Ingest.Ingest(&ReadingPayload{Level: floatPtr(1)})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Device ID and water level are required", validationErr.Message)

	_, err = core.Ingest.Ingest(&ReadingPayload{DeviceID: 1})
	require.ErrorAs(t, err, &validationErr)

	_, err = core.Ingest.Ingest(&ReadingPayload{DeviceID: 777, Level: floatPtr(1)})
	require.ErrorAs(t, err, &notFoundErr)
}

func TestIngest_Delegation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, mockIReading, mockIDevice, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, true, true, false, false)
	defer ctrl.Finish()

	device := &models.Device{ID: 7, AlertThresholdLow: 0.5, AlertThresholdHigh: 5.0}
	reading := &models.WaterReading{ID: 1, DeviceID: 7, Level: 2.0}

	mockIReading.
		EXPECT().
		AddReading(gomock.Eq(uint(7)), gomock.Any()).
		Return(reading, nil).
		Times(1)
	mockIDevice.
		EXPECT().
		GetDevice(gomock.Eq(uint(7))).
		Return(device, nil).
		Times(1)

	result, err := core.Ingest.Ingest(&ReadingPayload{DeviceID: 7, Level: floatPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, reading, result.Reading)

	// force the reading service away to cause services not available
	core.Reading = nil
	_, err = core.Ingest.Ingest(&ReadingPayload{DeviceID: 7, Level: floatPtr(2)})
	require.Error(t, err)
}

func TestIngestBatch(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	device := MustCreateTestDevice(t, core, 0.5, 5.0)

	payloads := []ReadingPayload{
		{DeviceID: device.ID, Level: floatPtr(1.0)},
		{DeviceID: device.ID, Level: floatPtr(-2)},
		{DeviceID: 9999, Level: floatPtr(1.0)},
		{DeviceID: device.ID, Level: floatPtr(2.0)},
	}

	result, err := core.Ingest.IngestBatch(payloads)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 2, result.ErrorCount)
	require.Len(t, result.Results, 2)
	require.Len(t, result.Errors, 2)

	// errors keep their position in the submitted batch
	assert.Equal(t, 1, result.Errors[0].Index)
	assert.Equal(t, "Water level cannot be negative", result.Errors[0].Error)
	assert.Equal(t, 2, result.Errors[1].Index)
	assert.Equal(t, 3, result.Results[1].Index)

	var count int64
	require.NoError(t, core.Db.Conn.Model(&models.WaterReading{}).Where("device_id = ?", device.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestIngestBatch_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	var validationErr *ValidationError

	_, err := core.Ingest.IngestBatch(nil)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Readings array is required and cannot be empty", validationErr.Message)

	oversized := make([]ReadingPayload, MaxBatchSize+1)
	for i := range oversized {
		oversized[i] = ReadingPayload{DeviceID: 1, Level: floatPtr(1)}
	}
	_, err = core.Ingest.IngestBatch(oversized)
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, fmt.Sprintf("Maximum %d readings per batch", MaxBatchSize), validationErr.Message)
}

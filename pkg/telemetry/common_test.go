package telemetry_test

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"waleki.xyz/water-level-service/pkg/db"
	"waleki.xyz/water-level-service/pkg/models"
	. "waleki.xyz/water-level-service/pkg/telemetry"
	"waleki.xyz/water-level-service/pkg/telemetry/mocks"
)

func GetMockTelemetryWithMemorySqliteDialector(t *testing.T, useMockIReading, useMockIDevice, useMockIStats, useMockIIngest bool) (
	*gomock.Controller,
	*Telemetry,
	*mocks.MockIReading,
	*mocks.MockIDevice,
	*mocks.MockIStats,
	*mocks.MockIIngest,
) {
	ctrl := gomock.NewController(t)

	mockIReading := mocks.NewMockIReading(ctrl)
	mockIDevice := mocks.NewMockIDevice(ctrl)
	mockIStats := mocks.NewMockIStats(ctrl)
	mockIIngest := mocks.NewMockIIngest(ctrl)

	// every test holds its own database so stats queries cannot see
	// rows written by a neighbouring test
	dbInstance, err := db.New(db.UseNamedMemorySqliteDialector(uuid.NewString()))
	require.NoError(t, err)

	core := &Telemetry{Db: *dbInstance}

	readingService := core.GetIReading()
	if useMockIReading {
		readingService = mockIReading
	}

	deviceService := core.GetIDevice()
	if useMockIDevice {
		deviceService = mockIDevice
	}

	statsService := core.GetIStats()
	if useMockIStats {
		statsService = mockIStats
	}

	ingestService := core.GetIIngest()
	if useMockIIngest {
		ingestService = mockIIngest
	}

	core.WithServices(ServiceOpts{
		Reading: readingService,
		Device:  deviceService,
		Stats:   statsService,
		Ingest:  ingestService,
	})

	return ctrl, core, mockIReading, mockIDevice, mockIStats, mockIIngest
}

func MustCreateTestDevice(t *testing.T, core *Telemetry, low, high float64) *models.Device {
	t.Helper()

	device := &models.Device{
		Name:                uuid.NewString(),
		Location:            "Test Field",
		Status:              models.DeviceStatusInactive,
		MeasurementInterval: 15,
		AlertThresholdLow:   low,
		AlertThresholdHigh:  high,
		CalibrationScale:    1,
	}
	require.NoError(t, core.Db.Conn.Create(device).Error)
	return device
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

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

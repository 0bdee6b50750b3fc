package telemetry

import (
	"time"

	"waleki.xyz/water-level-service/pkg/db"
	"waleki.xyz/water-level-service/pkg/models"
)

// ReadingInput is a single telemetry sample as validated by the reading
// store. Timestamp defaults to the server clock when absent.
type ReadingInput struct {
	Level        float64
	Temperature  *float64
	BatteryLevel *int
	Timestamp    *time.Time
}

// ReadingQuery bounds a range query. Bounds are inclusive; Limit <= 0 means
// no limit. There is no pagination cursor, callers page via the bounds.
type ReadingQuery struct {
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
}

type IReading interface {
	AddReading(deviceID uint, input *ReadingInput) (*models.WaterReading, error)
	GetReadings(deviceID uint, query ReadingQuery) ([]models.WaterReading, error)
	DeleteReadingsForDevice(deviceID uint) error
}

type IDevice interface {
	CreateDevice(input *DeviceInput) (*models.Device, error)
	GetDevice(id uint) (*models.Device, error)
	ListDevices() ([]models.Device, error)
	UpdateDevice(id uint, updates *DeviceUpdate) (*models.Device, error)
	DeleteDevice(id uint) error
	MarkSeen(id uint) error
}

type IStats interface {
	DashboardStats() (*DashboardStats, error)
	ChartSeries(deviceID uint, timeRange TimeRange) ([]ChartPoint, error)
	Summarize(points []ChartPoint) *SummaryStatistics
}

type IIngest interface {
	Ingest(payload *ReadingPayload) (*IngestResult, error)
	IngestBatch(payloads []ReadingPayload) (*BatchResult, error)
}

type Telemetry struct {
	Db      db.DB
	Reading IReading
	Device  IDevice
	Stats   IStats
	Ingest  IIngest

	// optional; mutations are announced here when set
	Changes *ChangeFeed
}

type ServiceOpts struct {
	Reading IReading
	Device  IDevice
	Stats   IStats
	Ingest  IIngest
}

func (t *Telemetry) WithServices(opts ServiceOpts) *Telemetry {
	if opts.Reading != nil {
		t.Reading = opts.Reading
	}
	if opts.Device != nil {
		t.Device = opts.Device
	}
	if opts.Stats != nil {
		t.Stats = opts.Stats
	}
	if opts.Ingest != nil {
		t.Ingest = opts.Ingest
	}
	return t
}

package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waleki.xyz/water-level-service/pkg/common"
	. "waleki.xyz/water-level-service/pkg/telemetry"
	_ "waleki.xyz/water-level-service/pkg/testing"
)

func TestChangeFeed(t *testing.T) {
	feed := NewChangeFeed()

	events, cancel := feed.Subscribe(4)
	defer cancel()

	feed.Publish(ChangeEvent{Kind: ChangeReadingAdded, DeviceID: 1})
	feed.Publish(ChangeEvent{Kind: ChangeDeviceDeleted, DeviceID: 2})

	first := <-events
	assert.Equal(t, ChangeReadingAdded, first.Kind)
	assert.EqualValues(t, 1, first.DeviceID)

	second := <-events
	assert.Equal(t, ChangeDeviceDeleted, second.Kind)
}

func TestChangeFeed_SlowSubscriberDropsEvents(t *testing.T) {
	feed := NewChangeFeed()

	events, cancel := feed.Subscribe(1)
	defer cancel()

	// nobody drains, so only the first event fits
	feed.Publish(ChangeEvent{Kind: ChangeReadingAdded, DeviceID: 1})
	feed.Publish(ChangeEvent{Kind: ChangeReadingAdded, DeviceID: 2})

	got := <-events
	assert.EqualValues(t, 1, got.DeviceID)

	select {
	case extra := <-events:
		t.Errorf("expected second event to be dropped, got %+v", extra)
	default:
	}
}

func TestChangeFeed_Cancel(t *testing.T) {
	feed := NewChangeFeed()

	events, cancel := feed.Subscribe(1)
	cancel()
	cancel() // safe to call twice

	_, ok := <-events
	assert.False(t, ok, "expected channel closed after cancel")

	// publishing to a cancelled subscriber must not panic
	feed.Publish(ChangeEvent{Kind: ChangeReadingAdded, DeviceID: 1})
}

func TestStoreMutationsPublishChanges(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false, false)
	defer ctrl.Finish()

	core.Changes = NewChangeFeed()
	events, cancel := core.Changes.Subscribe(8)
	defer cancel()

	device, err := core.Device.CreateDevice(&DeviceInput{
		Name:     "Canal Gate Monitor",
		Location: "Canal Gate",
		Settings: fullSettingsInput(),
	})
	require.NoError(t, err)

	_, err = core.Reading.AddReading(device.ID, &ReadingInput{Level: 1.5})
	require.NoError(t, err)

	require.NoError(t, core.Device.DeleteDevice(device.ID))

	var kinds []ChangeKind
	for i := 0; i < 3; i++ {
		kinds = append(kinds, (<-events).Kind)
	}
	assert.Equal(t, []ChangeKind{ChangeDeviceCreated, ChangeReadingAdded, ChangeDeviceDeleted}, kinds)
}

package telemetry

import "sync"

type ChangeKind string

const (
	ChangeReadingAdded  ChangeKind = "reading_added"
	ChangeDeviceCreated ChangeKind = "device_created"
	ChangeDeviceUpdated ChangeKind = "device_updated"
	ChangeDeviceDeleted ChangeKind = "device_deleted"
)

type ChangeEvent struct {
	Kind     ChangeKind `json:"kind"`
	DeviceID uint       `json:"deviceId"`
}

// ChangeFeed fans store mutations out to subscribers so a dashboard can
// refresh without polling. A subscriber that stops draining loses events
// instead of blocking writers.
type ChangeFeed struct {
	mu   sync.Mutex
	subs map[uint64]chan ChangeEvent
	next uint64
}

func NewChangeFeed() *ChangeFeed {
	return &ChangeFeed{subs: make(map[uint64]chan ChangeEvent)}
}

// Subscribe returns an event channel and a cancel function. Cancel closes
// the channel; calling it more than once is safe.
func (f *ChangeFeed) Subscribe(buffer int) (<-chan ChangeEvent, func()) {
	if buffer < 1 {
		buffer = 1
	}

	ch := make(chan ChangeEvent, buffer)

	f.mu.Lock()
	id := f.next
	f.next++
	f.subs[id] = ch
	f.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, id)
			f.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (f *ChangeFeed) Publish(event ChangeEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// publishChange is a no-op until someone wires a feed in.
func (t *Telemetry) publishChange(kind ChangeKind, deviceID uint) {
	if t.Changes != nil {
		t.Changes.Publish(ChangeEvent{Kind: kind, DeviceID: deviceID})
	}
}

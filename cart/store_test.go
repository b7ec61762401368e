package cart

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mug() Item {
	return Item{ProductID: "p1", Name: "Ceramic Mug", Price: decimal.NewFromFloat(10.00), ImageURL: "/mug.jpg"}
}

func bowl() Item {
	return Item{ProductID: "p2", Name: "Walnut Bowl", Price: decimal.NewFromFloat(5.00), ImageURL: "/bowl.jpg"}
}

func newLoadedStore(storage Storage) *Store {
	s := NewStore(storage)
	s.Load()
	return s
}

func TestAdd_NewItem(t *testing.T) {
	s := newLoadedStore(nil)

	s.Add(mug(), 2)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAdd_MergesQuantityForSameProduct(t *testing.T) {
	s := newLoadedStore(nil)

	s.Add(mug(), 1)
	s.Add(mug(), 3)
	s.Add(mug(), 2)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 6, lines[0].Quantity)
}

func TestAdd_Notifications(t *testing.T) {
	s := newLoadedStore(nil)

	var events []Event
	s.Subscribe(func(e Event) { events = append(events, e) })

	s.Add(mug(), 1)
	s.Add(mug(), 1)

	require.Len(t, events, 2)
	assert.Equal(t, EventItemAdded, events[0].Type)
	assert.Equal(t, "Ceramic Mug", events[0].Name)
	assert.Equal(t, EventQuantityUpdated, events[1].Type)
}

func TestRemove(t *testing.T) {
	s := newLoadedStore(nil)
	s.Add(mug(), 1)
	s.Add(bowl(), 1)

	var events []Event
	s.Subscribe(func(e Event) { events = append(events, e) })

	s.Remove("p1")

	require.Len(t, s.Lines(), 1)
	assert.Equal(t, "p2", s.Lines()[0].ProductID)
	require.Len(t, events, 1)
	assert.Equal(t, EventItemRemoved, events[0].Type)
	assert.Equal(t, "Ceramic Mug", events[0].Name)
}

func TestRemove_AbsentIsSilentNoop(t *testing.T) {
	s := newLoadedStore(nil)
	s.Add(mug(), 1)

	var events []Event
	s.Subscribe(func(e Event) { events = append(events, e) })

	s.Remove("missing")

	assert.Len(t, s.Lines(), 1)
	assert.Empty(t, events)
}

func TestSetQuantity_Overwrites(t *testing.T) {
	s := newLoadedStore(nil)
	s.Add(mug(), 5)

	s.SetQuantity("p1", 2)

	assert.Equal(t, 2, s.Lines()[0].Quantity)
}

func TestSetQuantity_ZeroEqualsRemove(t *testing.T) {
	viaSet := newLoadedStore(nil)
	viaSet.Add(mug(), 3)
	viaSet.Add(bowl(), 1)
	viaSet.SetQuantity("p1", 0)

	viaRemove := newLoadedStore(nil)
	viaRemove.Add(mug(), 3)
	viaRemove.Add(bowl(), 1)
	viaRemove.Remove("p1")

	assert.Equal(t, viaRemove.Lines(), viaSet.Lines())
}

func TestSetQuantity_NegativeRemoves(t *testing.T) {
	s := newLoadedStore(nil)
	s.Add(mug(), 3)

	s.SetQuantity("p1", -1)

	assert.Empty(t, s.Lines())
}

func TestSetQuantity_UnknownProductIgnored(t *testing.T) {
	s := newLoadedStore(nil)
	s.Add(mug(), 3)

	s.SetQuantity("missing", 7)

	assert.Equal(t, 3, s.Lines()[0].Quantity)
}

func TestClear(t *testing.T) {
	s := newLoadedStore(nil)
	s.Add(mug(), 1)
	s.Add(bowl(), 2)

	var events []Event
	s.Subscribe(func(e Event) { events = append(events, e) })

	s.Clear()

	assert.Empty(t, s.Lines())
	require.Len(t, events, 1)
	assert.Equal(t, EventCleared, events[0].Type)
}

func TestDerivedReads(t *testing.T) {
	s := newLoadedStore(nil)
	s.Add(mug(), 2)
	s.Add(bowl(), 1)

	assert.True(t, s.Subtotal().Equal(decimal.NewFromFloat(25.00)),
		"subtotal = %s", s.Subtotal())
	assert.Equal(t, 3, s.ItemCount())
}

// recordingStorage counts saves so tests can assert the load-then-save
// ordering invariant.
type recordingStorage struct {
	lines   []Line
	loadErr error
	saves   int
}

func (r *recordingStorage) Load() ([]Line, error) {
	return r.lines, r.loadErr
}

func (r *recordingStorage) Save(lines []Line) error {
	r.saves++
	r.lines = make([]Line, len(lines))
	copy(r.lines, lines)
	return nil
}

func TestPersistence_SuppressedUntilLoaded(t *testing.T) {
	storage := &recordingStorage{lines: []Line{
		{ProductID: "p9", Name: "Persisted", Price: decimal.NewFromInt(1), Quantity: 4},
	}}
	s := NewStore(storage)

	// A mutation before Load must not clobber the persisted blob.
	s.Add(mug(), 1)
	assert.Zero(t, storage.saves)

	s.Load()
	s.Add(bowl(), 1)
	assert.Equal(t, 1, storage.saves)
}

func TestLoad_RestoresPersistedLines(t *testing.T) {
	storage := &recordingStorage{lines: []Line{
		{ProductID: "p9", Name: "Persisted", Price: decimal.NewFromInt(1), Quantity: 4},
	}}
	s := NewStore(storage)
	s.Load()

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p9", lines[0].ProductID)
	assert.Equal(t, 4, lines[0].Quantity)
}

func TestLoad_MalformedStartsEmpty(t *testing.T) {
	storage := &recordingStorage{loadErr: errors.New("malformed cart blob")}
	s := NewStore(storage)
	s.Load()

	assert.Empty(t, s.Lines())

	// The store still works and persists after a failed load.
	s.Add(mug(), 1)
	assert.Equal(t, 1, storage.saves)
}

func TestRoundTrip_MemoryStorage(t *testing.T) {
	storage := NewMemoryStorage()

	first := newLoadedStore(storage)
	first.Add(mug(), 2)
	first.Add(bowl(), 1)

	second := newLoadedStore(storage)
	lines := second.Lines()
	require.Len(t, lines, 2)

	byID := map[string]Line{}
	for _, line := range lines {
		byID[line.ProductID] = line
	}
	assert.Equal(t, 2, byID["p1"].Quantity)
	assert.True(t, byID["p1"].Price.Equal(decimal.NewFromFloat(10.00)))
	assert.Equal(t, 1, byID["p2"].Quantity)
	assert.True(t, byID["p2"].Price.Equal(decimal.NewFromFloat(5.00)))
}

package cart

// Storage is the durable slot a Store persists its line set to. Load
// returns nil lines when nothing has been persisted yet.
type Storage interface {
	Load() ([]Line, error)
	Save(lines []Line) error
}

// MemoryStorage keeps the persisted blob in memory. Useful for tests and
// for sessions that opt out of durability.
type MemoryStorage struct {
	lines []Line
	saved bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load() ([]Line, error) {
	if !m.saved {
		return nil, nil
	}
	out := make([]Line, len(m.lines))
	copy(out, m.lines)
	return out, nil
}

func (m *MemoryStorage) Save(lines []Line) error {
	m.lines = make([]Line, len(lines))
	copy(m.lines, lines)
	m.saved = true
	return nil
}

package store

import "github.com/sadopc/planr/internal/export"

// Storage is where a session's records come from and go to.
type Storage interface {
	Load() ([]export.Record, error)
	Save(records []export.Record) error
}

// Memory keeps records in process. Useful for tests and dry runs.
type Memory struct {
	Records []export.Record
	Saves   int
}

func (m *Memory) Load() ([]export.Record, error) {
	return append([]export.Record(nil), m.Records...), nil
}

func (m *Memory) Save(records []export.Record) error {
	m.Records = append([]export.Record(nil), records...)
	m.Saves++
	return nil
}

// Tee loads from primary and saves to primary followed by every mirror.
// A failing mirror does not undo the primary write.
func Tee(primary Storage, mirrors ...Storage) Storage {
	return tee{primary: primary, mirrors: mirrors}
}

type tee struct {
	primary Storage
	mirrors []Storage
}

func (t tee) Load() ([]export.Record, error) {
	return t.primary.Load()
}

func (t tee) Save(records []export.Record) error {
	if err := t.primary.Save(records); err != nil {
		return err
	}
	for _, m := range t.mirrors {
		if err := m.Save(records); err != nil {
			return err
		}
	}
	return nil
}

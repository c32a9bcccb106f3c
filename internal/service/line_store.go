package service

import "github.com/MKhiriev/go-content-sync/models"

// lineStore remembers every line key flushed during one dump run.
// It is owned by a single run and never shared.
type lineStore struct {
	seen map[models.LineKey]struct{}
}

func newLineStore() *lineStore {
	return &lineStore{seen: make(map[models.LineKey]struct{})}
}

// recordAndDedupe filters a batch before it is written. Deletes whose row
// also has an insert in the same batch are dropped, then every line whose
// key was already flushed in this run (or earlier in the batch) is dropped.
// The surviving keys are recorded.
func (s *lineStore) recordAndDedupe(set models.ChangeSet) models.ChangeSet {
	inserted := make(map[rowRef]struct{}, len(set.Inserts))
	for _, line := range set.Inserts {
		inserted[refOf(line.Key)] = struct{}{}
	}

	var out models.ChangeSet
	for _, line := range set.Deletes {
		if _, ok := inserted[refOf(line.Key)]; ok {
			continue
		}
		if s.record(line.Key) {
			out.Deletes = append(out.Deletes, line)
		}
	}
	for _, line := range set.Inserts {
		if s.record(line.Key) {
			out.Inserts = append(out.Inserts, line)
		}
	}
	return out
}

// record stores key and reports whether it was new.
func (s *lineStore) record(key models.LineKey) bool {
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

func (s *lineStore) len() int {
	return len(s.seen)
}

type rowRef struct {
	table string
	id    string
}

func refOf(key models.LineKey) rowRef {
	return rowRef{table: key.Table, id: key.ID}
}

// Package store persists playground sessions in a bolt database.
//
// Each recorded step holds the encoded tree it produced and a summary of the
// change-list, keyed by a monotonically increasing sequence number. A
// session can be listed or replayed later without re-running its steps.
package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"
	"vtree.dev/pkg/diff"
	"vtree.dev/pkg/view"
)

const bucketStep = "step"

// ErrNoSuchStep is returned by (*Store).Step when the sequence number does
// not exist.
var ErrNoSuchStep = errors.New("no such step")

var initDB = map[string]func(tx *bolt.Tx) error{
	"initialize step table": func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketStep))
		return err
	},
}

// Store is a bolt-backed session store. It is safe for concurrent use.
type Store struct {
	db *bolt.DB
}

// Open opens the database at path, creating it and its tables if needed.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// StepRecord is one persisted step.
type StepRecord struct {
	Seq     int             `json:"-"`
	Tree    json.RawMessage `json:"tree"`
	Changes []ChangeSummary `json:"changes"`
}

// ChangeSummary is the persisted form of one change.
type ChangeSummary struct {
	Op   string `json:"op"`
	Path string `json:"path"`
}

// AddStep records a step's resulting tree and changes, returning the
// sequence number assigned to it.
func (s *Store) AddStep(tree view.Node, changes []diff.Change) (int, error) {
	encoded, err := view.Marshal(tree)
	if err != nil {
		return 0, err
	}
	summaries := make([]ChangeSummary, len(changes))
	for i, c := range changes {
		summaries[i] = ChangeSummary{Op: c.Op.String(), Path: c.Path.String()}
	}
	value, err := json.Marshal(StepRecord{Tree: encoded, Changes: summaries})
	if err != nil {
		return 0, err
	}
	var seq uint64
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketStep))
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), value)
	})
	return int(seq), err
}

// NextSeq returns the sequence number the next recorded step will get.
func (s *Store) NextSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		seq = tx.Bucket([]byte(bucketStep)).Sequence() + 1
		return nil
	})
	return int(seq), err
}

// Step retrieves the record with the given sequence number.
func (s *Store) Step(seq int) (StepRecord, error) {
	var record StepRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketStep)).Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoSuchStep
		}
		if err := json.Unmarshal(v, &record); err != nil {
			return err
		}
		record.Seq = seq
		return nil
	})
	return record, err
}

// IterateSteps calls f for each record with from <= seq < upto, in sequence
// order.
func (s *Store) IterateSteps(from, upto int, f func(StepRecord)) error {
	return s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketStep)).Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			var record StepRecord
			if err := json.Unmarshal(v, &record); err != nil {
				return err
			}
			record.Seq = int(unmarshalSeq(k))
			f(record)
		}
		return nil
	})
}

// TreeNode decodes the tree stored in a record.
func (r StepRecord) TreeNode() (view.Node, error) {
	return view.Unmarshal(r.Tree)
}

func marshalSeq(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

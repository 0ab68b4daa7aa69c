package storage

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/tbjoern/sudoku-solver/internal/domain"
)

var puzzleBucket = []byte("puzzles")

// Bolt persists puzzles in a single bbolt file, keyed by puzzle ID with
// JSON values. An alternative to FS when everything should live in one
// file.
type Bolt struct{ db *bolt.DB }

// OpenBolt opens (or creates) the database at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "open puzzle db")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(puzzleBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create puzzle bucket")
	}
	return &Bolt{db: db}, nil
}

func (s *Bolt) Close() error { return s.db.Close() }

func (s *Bolt) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "encode puzzle")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(puzzleBucket).Put([]byte(p.ID), data)
	})
}

func (s *Bolt) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	var out *domain.Puzzle
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(puzzleBucket).Get([]byte(id))
		if data == nil {
			return os.ErrNotExist
		}
		var p domain.Puzzle
		if err := json.Unmarshal(data, &p); err != nil {
			return errors.Wrapf(err, "decode puzzle %s", id)
		}
		out = &p
		return nil
	})
	return out, err
}

func (s *Bolt) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(puzzleBucket).ForEach(func(k, v []byte) error {
			var p domain.Puzzle
			if err := json.Unmarshal(v, &p); err != nil || p.ID == "" {
				return nil // skip unreadable entries
			}
			out = append(out, domain.PuzzleMeta{
				ID:         p.ID,
				Name:       p.Name,
				Difficulty: p.Difficulty,
				CreatedAt:  p.CreatedAt,
			})
			return nil
		})
	})
	return out, err
}

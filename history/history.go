// Copyright 2023 The Xonsh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package history persists REPL command lines in a bolt database.
//
// Entries are keyed by a monotonic sequence number so that prefix
// searches can walk backward from the end of history, the way an
// interactive shell's up-arrow does.
package history

import (
	"encoding/binary"
	"errors"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

// ErrNoMatch is returned by Cmd, Prev, and Next when no entry
// satisfies the query.
var ErrNoMatch = errors.New("history: no matching command")

var bucketCmds = []byte("cmds")

// A Cmd is one recorded command line.
type Cmd struct {
	Seq  int
	Text string
}

// A Store records command lines in a bolt database.
// It is safe for concurrent use by multiple goroutines.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the history database at path.
// Open fails after one second if another process holds the file lock.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCmds)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error { return s.db.Close() }

// Add appends a command line and returns its sequence number.
// A line equal to the most recent entry is not recorded again;
// Add returns the existing entry's sequence number.
func (s *Store) Add(text string) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCmds)
		if k, v := b.Cursor().Last(); k != nil && string(v) == text {
			seq = unmarshalSeq(k)
			return nil
		}
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(text))
	})
	return int(seq), err
}

// NextSeq returns the sequence number the next entry will receive.
func (s *Store) NextSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		seq = tx.Bucket(bucketCmds).Sequence() + 1
		return nil
	})
	return int(seq), err
}

// Len returns the number of stored entries.
func (s *Store) Len() (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(bucketCmds).Stats().KeyN
		return nil
	})
	return n, err
}

// Cmd returns the text of the entry with the given sequence number.
func (s *Store) Cmd(seq int) (string, error) {
	var text string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketCmds).Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoMatch
		}
		text = string(v)
		return nil
	})
	return text, err
}

// Last returns the most recent n entries, oldest first.
func (s *Store) Last(n int) ([]Cmd, error) {
	var cmds []Cmd
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketCmds).Cursor()
		for k, v := c.Last(); k != nil && len(cmds) < n; k, v = c.Prev() {
			cmds = append(cmds, Cmd{Seq: int(unmarshalSeq(k)), Text: string(v)})
		}
		return nil
	})
	for i, j := 0, len(cmds)-1; i < j; i, j = i+1, j-1 {
		cmds[i], cmds[j] = cmds[j], cmds[i]
	}
	return cmds, err
}

// Prev finds the most recent entry before seq (exclusive) whose text
// begins with prefix. An empty prefix matches every entry.
func (s *Store) Prev(seq int, prefix string) (Cmd, error) {
	var cmd Cmd
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketCmds).Cursor()

		var v []byte
		k, _ := c.Seek(marshalSeq(uint64(seq)))
		if k == nil { // seq is past the last entry
			k, v = c.Last()
			if k == nil {
				return ErrNoMatch
			}
		} else {
			k, v = c.Prev()
		}

		for ; k != nil; k, v = c.Prev() {
			if strings.HasPrefix(string(v), prefix) {
				cmd = Cmd{Seq: int(unmarshalSeq(k)), Text: string(v)}
				return nil
			}
		}
		return ErrNoMatch
	})
	return cmd, err
}

// Next finds the first entry at or after seq whose text begins with
// prefix.
func (s *Store) Next(seq int, prefix string) (Cmd, error) {
	var cmd Cmd
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketCmds).Cursor()
		for k, v := c.Seek(marshalSeq(uint64(seq))); k != nil; k, v = c.Next() {
			if strings.HasPrefix(string(v), prefix) {
				cmd = Cmd{Seq: int(unmarshalSeq(k)), Text: string(v)}
				return nil
			}
		}
		return ErrNoMatch
	})
	return cmd, err
}

// Walk calls f for each entry in sequence order until f returns false.
func (s *Store) Walk(f func(Cmd) bool) error {
	return s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketCmds).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if !f(Cmd{Seq: int(unmarshalSeq(k)), Text: string(v)}) {
				break
			}
		}
		return nil
	})
}

func marshalSeq(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}

func unmarshalSeq(k []byte) uint64 {
	return binary.BigEndian.Uint64(k)
}

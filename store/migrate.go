package store

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"go.etcd.io/bbolt"

	"github.com/ayoisaiah/breathe/internal/timeutil"
)

const schemaVersion = 1

func createBuckets(tx *bbolt.Tx) error {
	for _, name := range []string{
		presetBucket,
		favoriteBucket,
		sessionBucket,
		metaBucket,
	} {
		if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
			return err
		}
	}

	return nil
}

// migrateSessionKeys rekeys history records by the start time stored in the
// record itself.
func migrateSessionKeys(tx *bbolt.Tx) error {
	bucket := tx.Bucket([]byte(sessionBucket))

	type record struct {
		key, value []byte
	}

	var records []record

	err := bucket.ForEach(func(k, v []byte) error {
		records = append(records, record{
			key:   bytes.Clone(k),
			value: bytes.Clone(v),
		})

		return nil
	})
	if err != nil {
		return err
	}

	for _, r := range records {
		var s struct {
			StartTime time.Time `json:"start_time"`
		}

		if err := json.Unmarshal(r.value, &s); err != nil {
			return err
		}

		newKey := timeutil.ToKey(s.StartTime)
		if bytes.Equal(newKey, r.key) {
			continue
		}

		if err := bucket.Delete(r.key); err != nil {
			return err
		}

		if err := bucket.Put(newKey, r.value); err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) migrate(tx *bbolt.Tx) error {
	if err := createBuckets(tx); err != nil {
		return err
	}

	meta := tx.Bucket([]byte(metaBucket))

	version, _ := strconv.Atoi(string(meta.Get([]byte(keySchemaVersion))))
	if version >= schemaVersion {
		return nil
	}

	if err := migrateSessionKeys(tx); err != nil {
		return err
	}

	return meta.Put([]byte(keySchemaVersion), []byte(strconv.Itoa(schemaVersion)))
}

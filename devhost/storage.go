package devhost

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

func openStorage(dir string) (*badger.DB, error) {
	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(dir)
	}
	opts = opts.WithLogger(nil)
	return badger.Open(opts)
}

// storageSet persists the value as JSON so any shape the adapter forwards
// round-trips.
func (d *DevHost) storageSet(key string, data any) error {
	enc, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode storage value: %w", err)
	}
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), enc)
	})
}

// storageGet returns nil for an absent key: the host's empty marker, not
// an error.
func (d *DevHost) storageGet(key string) (any, error) {
	var raw []byte
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage: %w", err)
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode storage value: %w", err)
	}
	return v, nil
}

func (d *DevHost) storageRemove(key string) error {
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (d *DevHost) storageClear() error {
	return d.db.DropAll()
}

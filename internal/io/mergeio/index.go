package mergeio

import (
	"log/slog"
	"strconv"

	"github.com/dgraph-io/badger/v2"
	"github.com/gnames/gnfmt"
	"github.com/pubdex/pubdex/internal/ent/kv"
	"github.com/pubdex/pubdex/internal/ent/publication"
)

// indexPublications stores the dataset position of every publication
// under its ID in the key-value store.
func (m *mergeio) indexPublications(ds *publication.Dataset) error {
	err := m.idx.Open()
	if err != nil {
		slog.Error("Cannot open key-value store", "error", err)
		return err
	}

	enc := gnfmt.GNgob{}
	records := make([]kv.Record, len(ds.Publications))
	for i, p := range ds.Publications {
		var val []byte
		val, err = enc.Encode(i)
		if err != nil {
			slog.Error("Cannot encode record position", "error", err)
			return err
		}
		records[i] = kv.Record{
			Key:   []byte(strconv.Itoa(p.ID)),
			Value: val,
		}
	}

	txn, err := m.idx.GetTransaction()
	if err != nil {
		slog.Error("Cannot make key-val transaction", "error", err)
		return err
	}
	for _, rec := range records {
		if err = txn.Set(rec.Key, rec.Value); err == badger.ErrTxnTooBig {
			if err = txn.Commit(); err != nil {
				slog.Error("Cannot commit key/value transaction", "error", err)
				return err
			}
			txn, err = m.idx.GetTransaction()
			if err != nil {
				slog.Error("Cannot recreate key-val transaction", "error", err)
				return err
			}
			err = txn.Set(rec.Key, rec.Value)
		}
		if err != nil {
			slog.Error("Cannot set key/value", "error", err)
			return err
		}
	}
	return txn.Commit()
}

// lookup resolves a finding ID to its record's position in the
// dataset. Unknown IDs report false.
func (m *mergeio) lookup(id int) (int, bool) {
	bs, err := m.idx.GetValue([]byte(strconv.Itoa(id)))
	if err != nil || bs == nil {
		return 0, false
	}

	enc := gnfmt.GNgob{}
	var pos int
	if err = enc.Decode(bs, &pos); err != nil {
		return 0, false
	}
	return pos, true
}

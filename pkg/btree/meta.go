package btree

import (
	"btreeindex/pkg/codec"
	"btreeindex/pkg/record"
	"btreeindex/pkg/recordstore"
)

// metaSlot is the single slot the metadata store ever uses.
const metaSlot = 0

func metaSchema() record.Schema {
	return record.Schema{Fields: []record.FieldSpec{
		{Name: "root_id", Kind: codec.Int()},
	}}
}

// metaStore is a single-record store holding the tree's root_id at slot 0.
type metaStore struct {
	store *recordstore.Store
}

func openMetaStore(path string) (*metaStore, error) {
	store, err := recordstore.Open(path, record.NewLayout(metaSchema()))
	if err != nil {
		return nil, err
	}
	return &metaStore{store: store}, nil
}

func (m *metaStore) load() (rootID int64, exists bool, err error) {
	values, exists, err := m.store.FindByID(metaSlot)
	if err != nil || !exists {
		return 0, exists, err
	}
	return values[0].Int, true, nil
}

func (m *metaStore) save(rootID int64) error {
	_, err := m.store.Save(metaSlot, []codec.Value{codec.IntValue(rootID)})
	return err
}

func (m *metaStore) drop() error  { return m.store.Drop() }
func (m *metaStore) close() error { return m.store.Close() }

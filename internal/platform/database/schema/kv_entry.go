package schema

// KVEntryTable represents the 'closet.kv_entries' table backing the key-value store
type KVEntryTable struct {
	Table     string
	Key       string
	Value     string
	UpdatedAt string
}

// KVEntry is the schema definition for closet.kv_entries
var KVEntry = KVEntryTable{
	Table:     "closet.kv_entries",
	Key:       "key",
	Value:     "value",
	UpdatedAt: "updatedat",
}

package keeper

import (
	"encoding/json"
)

// State records are persisted as JSON-encoded typed structs and validated on
// read. The surrounding store treats values as opaque bytes.

func marshalRecord(v any) ([]byte, error) {
	return json.Marshal(v)
}

func unmarshalRecord(bz []byte, v any) error {
	return json.Unmarshal(bz, v)
}

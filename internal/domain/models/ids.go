package models

import (
	"encoding/json"
	"fmt"
)

// FlexID is a string id that tolerates numeric JSON ids when unmarshaling.
// The carousel slides were originally seeded with numeric literal ids while
// everything created later uses generated string ids; normalizing to a string
// at the decode boundary removes the mixed-type equality hazard, and data
// persisted by older builds still hydrates cleanly.
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = FlexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number, got %s", data)
	}
	*id = FlexID(n.String())
	return nil
}

func (id FlexID) String() string {
	return string(id)
}

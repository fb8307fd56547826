package postservice

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/lib/pq"
)

// Tags is an ordered list of labels stored in a text[] column. Order and
// duplicates survive the round trip; a nil list is written and read as empty.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "{}", nil
	}
	return pq.StringArray(t).Value()
}

func (t *Tags) Scan(src any) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}

	if arr == nil {
		arr = pq.StringArray{}
	}
	*t = Tags(arr)

	return nil
}

func (t Tags) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

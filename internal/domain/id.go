package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ID is the numeric key of a stored record. Ids are assigned by the store and
// never change once assigned. The zero ID matches no record.
type ID int64

// ParseID normalizes an id that arrived as text (route parameter, query string,
// form value). Anything that is not a number becomes the zero ID, so a lookup
// with it simply finds nothing.
func ParseID(s string) ID {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ID(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return ID(int64(f))
	}
	return 0
}

// String returns the decimal form of the id.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// UnmarshalJSON accepts both numbers and numeric strings ("3" and 3 are the
// same id). Unparseable values decode to the zero ID instead of failing.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ParseID(s)
		return nil
	}
	*id = ParseID(string(data))
	return nil
}

// MaxID returns the largest id among records, or 0 when there are none.
func MaxID[T Entity[T]](records []T) ID {
	var max ID
	for _, r := range records {
		if r.EntityID() > max {
			max = r.EntityID()
		}
	}
	return max
}

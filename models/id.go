package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID identifies a record inside its collection. Older documents use integer
// ids for income and assets and timestamp strings for expenses and
// properties, so an ID keeps whichever JSON form it was created or read with.
type ID struct {
	num   int64
	str   string
	isStr bool
	valid bool
}

func IntID(n int64) ID { return ID{num: n, valid: true} }

func StringID(s string) ID { return ID{str: s, isStr: true, valid: true} }

// IsZero reports whether the id was never set (absent or null in JSON).
func (id ID) IsZero() bool { return !id.valid }

// Int returns the numeric value of the id. String ids holding a base-10
// integer (timestamp ids) are numeric too.
func (id ID) Int() (int64, bool) {
	if !id.valid {
		return 0, false
	}
	if !id.isStr {
		return id.num, true
	}
	n, err := strconv.ParseInt(id.str, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (id ID) String() string {
	if !id.valid {
		return ""
	}
	if id.isStr {
		return id.str
	}
	return strconv.FormatInt(id.num, 10)
}

// Equal compares canonical text forms, so IntID(1) equals StringID("1").
func (id ID) Equal(other ID) bool {
	return id.valid == other.valid && id.String() == other.String()
}

func (id ID) MarshalJSON() ([]byte, error) {
	if !id.valid {
		return []byte("null"), nil
	}
	if id.isStr {
		return json.Marshal(id.str)
	}
	return []byte(strconv.FormatInt(id.num, 10)), nil
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ID{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a number or a string")
	}
	if i, err := n.Int64(); err == nil {
		*id = IntID(i)
		return nil
	}
	f, err := n.Float64()
	if err != nil || f != float64(int64(f)) {
		return fmt.Errorf("id must be an integer, got %s", n)
	}
	*id = IntID(int64(f))
	return nil
}

// ParseID interprets command line or query input: digits become an integer
// id, anything else a string id.
func ParseID(s string) ID {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntID(n)
	}
	return StringID(s)
}

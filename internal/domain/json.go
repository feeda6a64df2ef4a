// JSON-backed column types.
//
// SQLite has no native document columns, so participant lists, dietary tags,
// and the opaque cart snapshot are stored as JSON text. The types below
// implement driver.Valuer and sql.Scanner so GORM can persist them
// transparently while keeping the Go-side representation structured.
package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Participant is one diner registered in a table session. Names are unique
// within a session (case-insensitive) and the list preserves insertion order.
type Participant struct {
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joined_at"`
}

// ParticipantList is a JSON-encoded slice of participants.
type ParticipantList []Participant

// Value marshals the list to JSON for storage. A nil list is stored as "[]"
// so the column never holds SQL NULL.
func (p ParticipantList) Value() (driver.Value, error) {
	if p == nil {
		p = ParticipantList{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan unmarshals a JSON column value into the list. NULL scans to an empty
// list.
func (p *ParticipantList) Scan(src any) error {
	return scanJSON(src, p, "ParticipantList")
}

// JSONMap is an opaque JSON object column. The session layer persists and
// returns it verbatim; its internal shape belongs to the ordering subsystem.
type JSONMap map[string]any

// NewCartSnapshot returns the initial cart payload for a fresh session.
func NewCartSnapshot() JSONMap {
	return JSONMap{"items": []any{}}
}

// Value marshals the map to JSON for storage. A nil map is stored as "{}".
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		m = JSONMap{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan unmarshals a JSON column value into the map.
func (m *JSONMap) Scan(src any) error {
	return scanJSON(src, m, "JSONMap")
}

// StringList is a JSON-encoded slice of strings.
type StringList []string

// Value marshals the slice to JSON for storage. A nil slice is stored as "[]".
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan unmarshals a JSON column value into the slice.
func (s *StringList) Scan(src any) error {
	return scanJSON(src, s, "StringList")
}

// scanJSON decodes a database value (string, []byte, or NULL) into dst.
func scanJSON(src, dst any, typeName string) error {
	if src == nil {
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("%s: cannot scan %T", typeName, src)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}

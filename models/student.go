package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Student is the canonical student shape handed to the dashboard.
type Student struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	SchoolName string `json:"schoolName,omitempty"`
	RouteNo    string `json:"routeNo,omitempty"`
}

func (s Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// rawStudent accepts the field spellings seen in upstream payloads.
type rawStudent struct {
	ID         flexID `json:"id"`
	MongoID    flexID `json:"_id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Name       string `json:"name"`
	SchoolName string `json:"schoolName"`
	School     *struct {
		Name string `json:"name"`
	} `json:"school"`
	RouteNo string `json:"routeNo"`
}

func (r rawStudent) canonical() Student {
	s := Student{
		ID:         string(r.ID),
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		SchoolName: r.SchoolName,
		RouteNo:    r.RouteNo,
	}
	if s.ID == "" {
		s.ID = string(r.MongoID)
	}
	if s.FirstName == "" && s.LastName == "" && r.Name != "" {
		parts := strings.Fields(r.Name)
		if len(parts) > 0 {
			s.FirstName = parts[0]
			s.LastName = strings.Join(parts[1:], " ")
		}
	}
	if s.SchoolName == "" && r.School != nil {
		s.SchoolName = r.School.Name
	}
	return s
}

func (r rawStudent) empty() bool {
	return r.ID == "" && r.MongoID == "" && r.FirstName == "" && r.LastName == "" && r.Name == ""
}

// flexID accepts ids written as strings, numbers or extended JSON {"$oid": "..."}.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
	case '{':
		var oid struct {
			OID string `json:"$oid"`
		}
		if err := json.Unmarshal(b, &oid); err != nil {
			return err
		}
		*f = flexID(oid.OID)
	default:
		*f = flexID(string(b))
	}
	return nil
}

// NormalizeStudents turns any of the student payload shapes served upstream
// (a bare array, {"data": [...]}, {"students": [...]}, or a single student
// object) into one canonical []Student. Unrecognized shapes yield an empty
// slice; only malformed JSON is an error.
func NormalizeStudents(raw []byte) ([]Student, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []Student{}, nil
	}
	return normalizeStudents(raw, 0)
}

func normalizeStudents(raw []byte, depth int) ([]Student, error) {
	switch raw[0] {
	case '[':
		var items []rawStudent
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("failed to decode student list: %w", err)
		}
		students := make([]Student, 0, len(items))
		for _, item := range items {
			if item.empty() {
				continue
			}
			students = append(students, item.canonical())
		}
		return students, nil

	case '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, fmt.Errorf("failed to decode student object: %w", err)
		}
		if depth < 2 {
			for _, key := range []string{"data", "students"} {
				inner := bytes.TrimSpace(envelope[key])
				if len(inner) > 0 && (inner[0] == '[' || inner[0] == '{') {
					return normalizeStudents(inner, depth+1)
				}
			}
		}

		var single rawStudent
		if err := json.Unmarshal(raw, &single); err != nil || single.empty() {
			return []Student{}, nil
		}
		return []Student{single.canonical()}, nil
	}

	return []Student{}, nil
}

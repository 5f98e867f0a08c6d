package workspace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// Parse decodes a workspace document. Any decoding failure is reported as
// ErrMalformedDocument.
func Parse(data []byte) (*Document, error) {
	doc := NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return doc, nil
}

// Encode renders a document as two-space indented JSON with a trailing
// newline. Top-level keys come out as folders, tasks, then the extraneous
// keys in sorted order, so equal documents always encode to equal bytes.
func Encode(doc *Document) ([]byte, error) {
	compact, err := encodeValue(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workspace: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent workspace: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (d Document) MarshalJSON() ([]byte, error) {
	folders := d.Folders
	if folders == nil {
		folders = []Folder{}
	}
	members := []member{{key: "folders", value: folders}}
	if d.Tasks != nil {
		members = append(members, member{key: "tasks", value: d.Tasks})
	}
	return encodeObject(members, d.Extra)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	var folders []Folder
	var tasks *TaskSet
	extra, err := decodeObject(data, map[string]any{
		"folders": &folders,
		"tasks":   &tasks,
	})
	if err != nil {
		return err
	}
	if folders == nil {
		folders = []Folder{}
	}
	d.Folders = folders
	d.Tasks = tasks
	d.Extra = extra
	return nil
}

// MarshalJSON implements json.Marshaler. Like Task, only members that are
// set are written.
func (ts TaskSet) MarshalJSON() ([]byte, error) {
	var members []member
	if ts.Version != "" {
		members = append(members, member{key: "version", value: ts.Version})
	}
	if ts.Tasks != nil {
		members = append(members, member{key: "tasks", value: ts.Tasks})
	}
	return encodeObject(members, ts.Extra)
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *TaskSet) UnmarshalJSON(data []byte) error {
	var out TaskSet
	extra, err := decodeObject(data, map[string]any{
		"version": &out.Version,
		"tasks":   &out.Tasks,
	})
	if err != nil {
		return err
	}
	out.Extra = extra
	*ts = out
	return nil
}

// MarshalJSON implements json.Marshaler. Known members are only written
// when set so tasks that never had them are not altered. Members that were
// read with a zero value, such as "args": null, come back through Extra.
func (t Task) MarshalJSON() ([]byte, error) {
	var members []member
	if t.Label != "" {
		members = append(members, member{key: "label", value: t.Label})
	}
	if t.Type != "" {
		members = append(members, member{key: "type", value: t.Type})
	}
	if t.Command != "" {
		members = append(members, member{key: "command", value: t.Command})
	}
	if t.Args != nil {
		members = append(members, member{key: "args", value: t.Args})
	}
	return encodeObject(members, t.Extra)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Task) UnmarshalJSON(data []byte) error {
	var out Task
	extra, err := decodeObject(data, map[string]any{
		"label":   &out.Label,
		"type":    &out.Type,
		"command": &out.Command,
		"args":    &out.Args,
	})
	if err != nil {
		return err
	}
	out.Extra = extra
	*t = out
	return nil
}

type member struct {
	key   string
	value any
}

// encodeValue marshals v without HTML escaping.
func encodeValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// encodeObject writes the known members in order followed by the extra
// members sorted by key. Extra keys shadowed by a known member are dropped.
func encodeObject(members []member, extra map[string]json.RawMessage) ([]byte, error) {
	var buf bytes.Buffer
	seen := make(map[string]bool, len(members))
	buf.WriteByte('{')

	write := func(key string, val []byte) error {
		if len(seen) > 0 {
			buf.WriteByte(',')
		}
		k, err := encodeValue(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
		seen[key] = true
		return nil
	}

	for _, m := range members {
		val, err := encodeValue(m.value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %q: %w", m.key, err)
		}
		if err := write(m.key, val); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		val := []byte(extra[k])
		if len(val) == 0 {
			val = []byte("null")
		}
		if err := write(k, val); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeObject decodes the known members of a JSON object into their
// targets and returns the rest untouched. A known member that decodes to its
// zero value is also returned, so encoding writes it back as it was read.
func decodeObject(data []byte, known map[string]any) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("expected a JSON object, got null")
	}

	for key, target := range known {
		val, ok := raw[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(val, target); err != nil {
			return nil, fmt.Errorf("invalid %q: %w", key, err)
		}
		if !reflect.ValueOf(target).Elem().IsZero() {
			delete(raw, key)
		}
	}
	return raw, nil
}

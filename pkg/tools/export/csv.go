package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"ai-datachat-be/pkg/store"
)

// BuildCSV turns a sequence of JSON records into a downloadable CSV file.
// The header row is the keys of the FIRST record in encounter order, which is
// why records travel as raw JSON: unmarshalling into a map first would lose
// the order.
func BuildCSV(records []json.RawMessage, filename string) (*store.FileArtifact, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no data provided for export")
	}

	header, err := orderedKeys(records[0])
	if err != nil {
		return nil, fmt.Errorf("invalid first record: %w", err)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("first record has no fields")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i, raw := range records {
		row, err := decodeRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid record %d: %w", i, err)
		}
		fields := make([]string, len(header))
		for j, key := range header {
			fields[j] = stringify(row[key])
		}
		if err := w.Write(fields); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &store.FileArtifact{
		Filename: NormalizeFilename(filename),
		MimeType: "text/csv",
		Content:  buf.Bytes(),
	}, nil
}

// NormalizeFilename guarantees the exported file carries a .csv extension.
func NormalizeFilename(filename string) string {
	name := strings.TrimSpace(filename)
	if name == "" {
		name = "export"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".csv") {
		name += ".csv"
	}
	return name
}

// orderedKeys walks the tokens of a JSON object and returns its top-level
// keys in encounter order.
func orderedKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("record is not a JSON object")
	}

	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", keyTok)
		}
		keys = append(keys, key)

		// consume the value, nested or not
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func decodeRecord(raw json.RawMessage) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var row map[string]interface{}
	if err := dec.Decode(&row); err != nil {
		return nil, err
	}
	return row, nil
}

// stringify renders a decoded JSON value as a CSV field. Null and absent
// values become empty fields; composite values stay JSON.
func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}

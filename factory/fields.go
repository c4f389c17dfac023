package factory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Hellzyr/Nominer/generic"
	"github.com/Hellzyr/Nominer/nomina"
)

// =============================================================================
// FIELD FILES - flat payroll forms stored as JSON or TOML
// =============================================================================

// ParseFields decodes a flat JSON object into form fields. Numbers, booleans
// and strings are all accepted and kept as their text form.
func ParseFields(data []byte) (nomina.Fields, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse fields JSON: %w", err)
	}
	return flatten(raw)
}

// LoadFieldsFile reads a field file. Files ending in .toml are decoded as
// TOML, anything else as JSON.
func LoadFieldsFile(path string) (nomina.Fields, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fields file: %w", err)
	}
	if !isTOML(path) {
		return ParseFields(data)
	}

	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse fields TOML %s: %w", path, err)
	}
	return flatten(raw)
}

func flatten(raw map[string]any) (nomina.Fields, error) {
	fields := make(nomina.Fields, len(raw))
	for key, v := range raw {
		switch x := v.(type) {
		case nil:
			fields[key] = ""
		case string:
			fields[key] = x
		case json.Number:
			fields[key] = x.String()
		case bool:
			fields[key] = strconv.FormatBool(x)
		case int64:
			fields[key] = strconv.FormatInt(x, 10)
		case float64:
			fields[key] = strconv.FormatFloat(x, 'f', -1, 64)
		case time.Time:
			// TOML local dates: fechaInicioContrato = 2025-01-01
			fields[key] = x.Format(generic.DateLayout)
		default:
			return nil, fmt.Errorf("field %q: nested values are not supported (%T)", key, v)
		}
	}
	return fields, nil
}

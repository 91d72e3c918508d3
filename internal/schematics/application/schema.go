package application

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/simonhull/kestrel/fledge/schema"
)

//go:embed schema.json
var schemaJSON []byte

var optionsSchema = schema.MustCompile("application.schema.json", schemaJSON)

// Schema returns the raw JSON Schema describing Options.
func Schema() []byte {
	return bytes.Clone(schemaJSON)
}

// DecodeOptions validates a JSON option bag against the schema and decodes it.
func DecodeOptions(data []byte) (Options, error) {
	var opts Options
	if err := optionsSchema.Validate(data); err != nil {
		return opts, fmt.Errorf("invalid application options: %w", err)
	}
	if err := json.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("decoding application options: %w", err)
	}
	return opts, nil
}

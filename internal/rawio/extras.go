package rawio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/daehong-lab/gonggo-pipeline/constants"
	"github.com/daehong-lab/gonggo-pipeline/internal/entity"
)

// extrasSchema constrains the extras_json bag: an object whose known
// keys are strings and whose unknown keys are scalars. Crawlers that
// start shipping nested structures fail loudly here instead of
// corrupting normalization downstream.
func extrasSchema() map[string]any {
	str := map[string]any{"type": "string"}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"panId":         str,
			"houseManageNo": str,
			"pblancId":      str,
			"category":      str,
			"sigungu_code":  str,
			"dong":          str,
			"status":        str,
		},
		"additionalProperties": map[string]any{
			"type": []any{"string", "number", "boolean", "null"},
		},
	}
}

// ExtrasDecoder validates and types extras_json bags.
type ExtrasDecoder struct {
	schema *jsonschema.Schema
}

func NewExtrasDecoder() (*ExtrasDecoder, error) {
	b, err := json.Marshal(extrasSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal extras schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("extras.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add extras schema: %w", err)
	}
	schema, err := compiler.Compile("extras.json")
	if err != nil {
		return nil, fmt.Errorf("compile extras schema: %w", err)
	}
	return &ExtrasDecoder{schema: schema}, nil
}

// Decode parses one extras_json value into the typed union. Known keys
// become fields, everything else lands in Rest stringified. An empty
// payload is fine: the record simply has no platform hints.
func (d *ExtrasDecoder) Decode(platform constants.Platform, raw string) (entity.PlatformExtras, error) {
	out := entity.PlatformExtras{Platform: platform}
	if !constants.IsKnownPlatform(string(platform)) {
		return out, fmt.Errorf("unknown platform %q", platform)
	}
	if raw == "" || raw == "{}" {
		return out, nil
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return out, fmt.Errorf("extras_json: %w", err)
	}
	if err := d.schema.Validate(v); err != nil {
		return out, fmt.Errorf("extras_json does not match schema: %w", err)
	}

	m, ok := v.(map[string]any)
	if !ok {
		return out, fmt.Errorf("extras_json: not an object")
	}

	for k, val := range m {
		s := stringify(val)
		switch k {
		case "panId":
			out.PanID = s
		case "houseManageNo":
			out.HouseManageNo = s
		case "pblancId":
			out.PblancID = s
		case "category":
			out.CategoryLabel = s
		case "sigungu_code":
			out.SigunguCode = s
		case "dong":
			out.Dong = s
		case "status":
			out.NoticeStatus = s
		default:
			if out.Rest == nil {
				out.Rest = map[string]string{}
			}
			out.Rest[k] = s
		}
	}
	return out, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

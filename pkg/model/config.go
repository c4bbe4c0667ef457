package model

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads a JSON configuration array. Nil options/validation slices are
// normalised to empty slices so re-exports keep the array shape.
func Decode(r io.Reader) (Config, error) {
	if r == nil {
		return nil, fmt.Errorf("model: reader is nil")
	}
	var cfg Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("model: decode config: %w", err)
	}
	for i := range cfg {
		cfg[i].Field.normalize()
	}
	return cfg, nil
}

// Encode writes cfg as indented JSON. A nil Config is written as [].
func Encode(w io.Writer, cfg Config) error {
	if cfg == nil {
		cfg = Config{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("model: encode config: %w", err)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	out := make(Config, len(c))
	for i, item := range c {
		out[i] = item.Clone()
	}
	return out
}

// Find returns the index of the record with the given id, or -1.
func (c Config) Find(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the record.
func (item ConfigItem) Clone() ConfigItem {
	out := item
	out.Field.ValidationRules = append([]ValidationRule(nil), item.Field.ValidationRules...)
	out.Field.Options = append([]DropdownOption(nil), item.Field.Options...)
	out.Field.normalize()
	if item.Field.APIConfig != nil {
		api := *item.Field.APIConfig
		api.LabelKey = append([]string(nil), api.LabelKey...)
		if api.Headers != nil {
			api.Headers = make(map[string]string, len(item.Field.APIConfig.Headers))
			for k, v := range item.Field.APIConfig.Headers {
				api.Headers[k] = v
			}
		}
		if api.Params != nil {
			api.Params = make(map[string]any, len(item.Field.APIConfig.Params))
			for k, v := range item.Field.APIConfig.Params {
				api.Params[k] = v
			}
		}
		out.Field.APIConfig = &api
	}
	if item.Field.OutputTransform != nil {
		transform := *item.Field.OutputTransform
		out.Field.OutputTransform = &transform
	}
	out.ScreenContexts = make([]ScreenContext, len(item.ScreenContexts))
	for i, sc := range item.ScreenContexts {
		if sc.Disabled != nil {
			sc.Disabled = Bool(*sc.Disabled)
		}
		out.ScreenContexts[i] = sc
	}
	return out
}

// MarshalJSON keeps validation_rules and options as arrays even when unset.
func (f Field) MarshalJSON() ([]byte, error) {
	type plain Field
	out := plain(f)
	if out.ValidationRules == nil {
		out.ValidationRules = []ValidationRule{}
	}
	if out.Options == nil {
		out.Options = []DropdownOption{}
	}
	return json.Marshal(out)
}

func (f *Field) normalize() {
	if f.ValidationRules == nil {
		f.ValidationRules = []ValidationRule{}
	}
	if f.Options == nil {
		f.Options = []DropdownOption{}
	}
}

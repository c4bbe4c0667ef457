// Package sample ships a reference configuration showing the full record
// shape, including API lookups, static options and output transforms that
// generation alone never produces.
package sample

import (
	"bytes"
	_ "embed"

	"github.com/goliatone/go-planconfig/pkg/model"
)

//go:embed sample.json
var sampleJSON []byte

// JSON returns a copy of the raw sample document.
func JSON() []byte {
	return append([]byte(nil), sampleJSON...)
}

// Config decodes the sample into a fresh Config on every call.
func Config() (model.Config, error) {
	return model.Decode(bytes.NewReader(sampleJSON))
}

// MustConfig is Config for callers that treat a broken embed as fatal.
func MustConfig() model.Config {
	cfg, err := Config()
	if err != nil {
		panic(err)
	}
	return cfg
}

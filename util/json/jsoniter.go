//go:build !stdjson

// Package json switches the JSON codec at build time,
// json-iterator by default, or encoding/json with the stdjson build tag.
package json

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	Marshal   = json.Marshal
	Unmarshal = json.Unmarshal
	Valid     = json.Valid
)

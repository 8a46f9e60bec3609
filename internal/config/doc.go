// Package config loads optional settings for the pascal-triangle CLI.
//
// Settings files may be YAML (.yaml, .yml), parsed with gopkg.in/yaml.v3, or
// JSON with comments, stripped with github.com/tidwall/jsonc and parsed with
// encoding/json. Keys absent from the file keep their Default values.
package config

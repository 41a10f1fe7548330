// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package model

import (
	"encoding/json"
	"io"
)

// Model types.
const (
	TypeElement = "element"
	TypeArray   = "array"
)

// File is the decoded content of a model description
// file.
type File struct {
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Vertices    []float32 `json:"vertices"`
	Indices     []uint32  `json:"indices"`
	Description string    `json:"description"`
}

// ParseFile decodes and validates a model description.
// It is a JSON object with the fields:
//
//	type         "element" (indexed) or "array"
//	name         model name
//	vertices     flat array of numbers
//	indices      flat array of unsigned integers
//	             (required by "element" models only)
//	description  vertex layout, as in ParseLayout
func ParseFile(r io.Reader) (*File, error) {
	var f File
	dec := json.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, newModelErr("invalid JSON: " + err.Error())
	}
	switch f.Type {
	case TypeElement:
		if f.Indices == nil {
			return nil, newModelErr("element model lacks indices")
		}
	case TypeArray:
		f.Indices = nil
	case "":
		return nil, newModelErr("missing model type")
	default:
		return nil, newModelErr("invalid model type: " + f.Type)
	}
	switch {
	case f.Name == "":
		return nil, newModelErr("missing model name")
	case f.Description == "":
		return nil, newModelErr("missing layout description")
	case f.Vertices == nil:
		return nil, newModelErr("missing vertices")
	}
	return &f, nil
}

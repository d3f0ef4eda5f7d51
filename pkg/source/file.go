package source

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// fileDoc is the on-disk layout of a TOML adjacency file:
//
//	[devices]
//	"sweden-pe1.example.com" = ["norway-pe1.example.com", "sweden-a1.example.com"]
//	"sweden-a1.example.com"  = ["sweden-pe1.example.com"]
//
// Array order is significant and preserved; key order within the table is
// not (lookups are by device identifier).
type fileDoc struct {
	Devices map[string][]string `toml:"devices"`
}

// LoadFile reads a TOML adjacency file and returns it as a [Static] source.
func LoadFile(path string) (*Static, error) {
	var doc fileDoc
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if len(doc.Devices) == 0 {
		return nil, fmt.Errorf("load %s: no [devices] table", path)
	}
	return NewStatic(doc.Devices), nil
}

// SPDX-License-Identifier: MIT

package protocol

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a protocol file, choosing the decoder by extension:
// .yaml and .yml for YAML, .hcl for HCL.
func Load(path string) (*Protocol, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".hcl":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("protocol: Load: %w", err)
	}
	if ext == ".hcl" {
		return ParseHCL(data, path)
	}

	return ParseYAML(data)
}

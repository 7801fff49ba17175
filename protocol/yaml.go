// SPDX-License-Identifier: MIT

package protocol

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML protocol. Unknown fields are rejected.
func ParseYAML(data []byte) (*Protocol, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrInvalidProtocol, err)
	}

	return doc.build()
}

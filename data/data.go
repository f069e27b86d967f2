// Package data embeds the built-in vocabulary dataset. Deployments can
// point dataset.path at an external JSON file to replace it.
package data

import _ "embed"

//go:embed vocabulary.json
var Vocabulary []byte

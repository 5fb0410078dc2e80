package assets

import "embed"

// Ships holds the ship frame definitions.
//
//go:embed ships/*.json
var Ships embed.FS

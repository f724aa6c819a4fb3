// Package palette maps tiles to terminal colors loaded from an embedded table.
package palette

import "embed"

// dataFS embeds the color tables at build time.
//
//go:embed *.json
var dataFS embed.FS

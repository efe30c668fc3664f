// Package configs embeds the default JSON configuration files.
package configs

import "embed"

// FS holds game.json
//
//go:embed *.json
var FS embed.FS

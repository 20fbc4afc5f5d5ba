// Package gamedata holds the creature catalog and island maps, embedded at
// build time, and the helpers that turn them into game values.
package gamedata

import "embed"

//go:embed creatures.json maps.json
var dataFS embed.FS

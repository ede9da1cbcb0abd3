// Package assets embeds the files the game ships with.
package assets

import "embed"

// Config holds the default game tuning.
//
//go:embed config/*.json
var Config embed.FS

// SettingsFile is the path of the default settings inside Config.
const SettingsFile = "config/settings.json"

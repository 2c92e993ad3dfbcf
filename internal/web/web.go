// Package web embeds the static dashboard page.
package web

import "embed"

//go:embed static
var Static embed.FS

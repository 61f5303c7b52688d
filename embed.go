package postzaper

import "embed"

// EmbeddedAssets contains files shipped with the binary:
// shell.html (page skeleton), tools.yaml (seed catalog),
// privacy-policy.md and terms.md (legal pages).
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

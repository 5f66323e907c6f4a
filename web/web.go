// Package web holds the static pages served at the root and by the
// content-negotiated fallback.
package web

import _ "embed"

//go:embed index.html
var IndexPage []byte

//go:embed 404.html
var NotFoundPage []byte

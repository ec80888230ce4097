// Package web carries the embedded browser chat widget.
package web

import _ "embed"

//go:embed chat.html
var ChatPage []byte

// Package web содержит HTML-шаблоны и статику, зашитые в бинарник,
// чтобы сервер не зависел от рабочей директории.
package web

import "embed"

//go:embed templates static
var FS embed.FS

// Package schemas содержит JSON Schema тел запросов. Схемы встраиваются в бинарник.
package schemas

import "embed"

//go:embed requests
var SchemasFS embed.FS

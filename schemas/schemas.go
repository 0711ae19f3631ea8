// Package schemas содержит JSON-схемы контрактов: входящие REST-запросы
// и события, публикуемые в брокер.
package schemas

import "embed"

//go:embed requests events
var SchemasFS embed.FS

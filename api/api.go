// Package api embeds the OpenAPI contract of the HTTP interface.
//
// The server stubs in internal/generated/servers are produced from it:
//
//go:generate oapi-codegen -config oapi-codegen.yaml openapi.yaml
package api

import _ "embed"

//go:embed openapi.yaml
var OpenAPI []byte

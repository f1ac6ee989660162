// Package docboost indexes technical documentation into a local full-text
// index and exposes it to a command line and to assistant tooling speaking
// the line-delimited MCP JSON-RPC protocol.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, trafilatura/).
package docboost

/*
Package session implements the registry of live widgets used by the server adapters.

Widgets are not safe for concurrent use, so every access from an HTTP or MCP
request goes through Manager.WithLock, which serializes calls per widget ID
with reference-counted mutexes.
*/
package session

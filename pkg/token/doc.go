// Package token mints and verifies the short-lived HMAC-signed access
// tokens returned by the authenticate endpoint. A token carries the
// authenticated principal's identity, role and company so request
// handling never touches the credentials table.
package token

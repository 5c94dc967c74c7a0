// Package main implements tenantgatectl, a role-gated company and user
// management server.
//
// tenantgate guards a two-level resource hierarchy (companies and each
// company's users) behind a role gate: administrators manage everything,
// company owners are scoped to their own company, and customers hold no
// management privileges.
//
// # Quick Start
//
//	# Generate a token signing key
//	export TENANTGATE_TOKEN_KEY="$(tenantgatectl token generate)"
//
//	# Run database migrations
//	tenantgatectl db migrate
//
//	# Create an administrator
//	tenantgatectl admin create --name Root --email root@example.com
//
//	# Start the server
//	tenantgatectl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - TENANTGATE_TOKEN_KEY: Base64-encoded key for signing access tokens
//   - TENANTGATE_LOG_LEVEL: Log level (debug, info, warn, error)
//   - TENANTGATE_AUDIT_ENABLED: Set to "false" to disable audit logging
//   - TENANTGATE_CONFIG_PATH: Directory holding tenantgate.yml
//   - PORT: Server port (default: 8000)
package main

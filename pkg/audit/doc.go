// Package audit provides audit logging for security-relevant tenantgate
// operations.
//
// Events cover authentication attempts, role gate decisions, and
// company/user mutations. Each event is written as an RFC5424 syslog
// line with structured data, suitable for security monitoring and
// compliance pipelines.
package audit

// Package logtail reads the end of the pitch log file for display.
//
// The logger writes one JSON object per line. Read returns the last N raw
// lines in one pass with O(N) memory using a ring buffer; Tail parses them
// into Entry values whose String method gives a compact terminal form:
//
//	15:04:05 WARN  [assets] image load failed path=northwind/team.png
//
// Lines that are not JSON are passed through unchanged. A missing log file
// yields no lines and no error, since logging may be disabled.
package logtail

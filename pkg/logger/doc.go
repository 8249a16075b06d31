// Package logger is a small factory over log/slog with the handful of
// options this toolkit needs: level, text or JSON output, destination and
// static attributes.
package logger

// Package view isolates direct surface manipulation behind a small adapter
// interface so navigation, notification and animation logic stays testable
// without a real browser environment.
package view

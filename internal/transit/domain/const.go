// Package domain defines core transit encryption domain models.
package domain

const (
	// MaxTransitKeyNameLength is the maximum allowed length for transit key
	// names. Keeps identifiers short enough for blob strings and log lines.
	MaxTransitKeyNameLength = 255
)

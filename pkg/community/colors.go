// Package community holds the guild upkeep handlers: greeting members and auditing deleted messages.
package community

const (
	colorGreen = 0x2ecc71
	colorBlue  = 0x3498db
	colorRed   = 0xe74c3c
)

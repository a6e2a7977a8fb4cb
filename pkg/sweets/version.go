// Package sweets holds module-level metadata.
package sweets

// Version is the released version of the sweets module.
const Version = "0.1.0"

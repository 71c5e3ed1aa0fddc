// Package stockroom holds release metadata for the stockroom module.
package stockroom

// Version is the stockroom release version.
const Version = "0.1.0"

// Package utils provides small shared helpers: destination format
// validation for verification codes, display formatting for amounts,
// decoding of compressed API payloads, and device identifier generation.
package utils

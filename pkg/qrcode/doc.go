// Package qrcode renders scannable enrollment payloads. Two-factor
// enrollment hands the otpauth URI to GenerateDataURI and embeds the
// result directly in the setup page.
package qrcode

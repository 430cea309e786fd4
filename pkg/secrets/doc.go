// Package secrets implements the symmetric codec used to persist account
// secrets (recovery mnemonics, TOTP secrets) encrypted at rest.
//
// A single process-wide master key is expanded through HKDF-SHA256 into
// purpose-bound subkeys, so ciphertext sealed for one purpose can never be
// opened under another. Values are sealed with AES-256-GCM and stored as
// base64(nonce || ciphertext || tag).
//
// # Usage
//
//	var cfg secrets.Config
//	_ = config.Load(&cfg)
//
//	codec, err := secrets.NewFromConfig(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sealed, err := codec.EncryptString(secrets.PurposeMnemonic, phrase)
//	// store sealed; later:
//	phrase, err = codec.DecryptString(secrets.PurposeMnemonic, sealed)
//
// Decrypted values must be treated as transient: use them for a single
// comparison or display and let them go out of scope.
package secrets

package mnemonic

import "errors"

var ErrGenerationFailed = errors.New("failed to generate recovery phrase")

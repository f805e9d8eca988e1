package vault

import "errors"

var (
	// ErrMalformedNote is returned when a vault file has no valid front matter.
	ErrMalformedNote = errors.New("malformed vault note")

	// ErrUndecryptable is returned when a record body cannot be opened with
	// the installed session key.
	ErrUndecryptable = errors.New("record body cannot be decrypted")

	// ErrVaultNotWritable is returned by Ping when the vault directory cannot
	// be written to.
	ErrVaultNotWritable = errors.New("vault directory is not writable")
)

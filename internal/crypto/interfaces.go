package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/pin_hasher_mock.go -package=mock

// PinHasher protects the access PIN. The plain PIN is only seen once, when
// the hash is built at startup; afterwards submissions are compared against
// the hash.
type PinHasher interface {
	// Hash returns the bcrypt hash of pin.
	Hash(pin string) ([]byte, error)

	// Compare reports whether pin matches hash. A mismatch returns
	// ErrPINMismatch; any other error means the hash itself is unusable.
	Compare(hash []byte, pin string) error
}

// Package signature signs and verifies messages with a keyed hash over the
// values of one vendor's tags and the command arguments.
//
// A signed message carries two extra tags in the vendor namespace:
//
//	@acme.org/id=1;acme.org/hash-algo=sha256;acme.org/hash=6ba1... :nick!user@host PRIVMSG #test :hi
//
// The hash is computed over the unescaped values of the vendor's tags in tag
// order, skipping hash and hash-algo, followed by each command argument. The
// key is the source mask unless an explicit key is configured.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"log/slog"
	"slices"

	"github.com/epithet-ssh/ircmsg/pkg/ircmsg"
	"golang.org/x/crypto/blake2b"
)

// Supported algorithms
const (
	SHA256     = "sha256"
	SHA512     = "sha512"
	BLAKE2b256 = "blake2b-256"
	BLAKE2b512 = "blake2b-512"

	// DefaultAlgorithm is used when none is configured.
	DefaultAlgorithm = SHA256
)

const (
	hashTag      = "hash"
	algorithmTag = "hash-algo"
)

var (
	// ErrNotSigned indicates a message without a hash tag for the vendor.
	ErrNotSigned = errors.New("signature: message is not signed")

	// ErrMismatch indicates a hash that does not match the message.
	ErrMismatch = errors.New("signature: hash mismatch")

	// ErrUnknownAlgorithm indicates an unsupported hash algorithm.
	ErrUnknownAlgorithm = errors.New("signature: unknown algorithm")

	// ErrNoKey indicates a message without a source while no key is configured.
	ErrNoKey = errors.New("signature: message has no source to derive a key from")
)

var algorithms = map[string]func(key []byte) (hash.Hash, error){
	SHA256: func(key []byte) (hash.Hash, error) {
		return hmac.New(sha256.New, key), nil
	},
	SHA512: func(key []byte) (hash.Hash, error) {
		return hmac.New(sha512.New, key), nil
	},
	BLAKE2b256: func(key []byte) (hash.Hash, error) {
		return blake2b.New256(blake2bKey(key))
	},
	BLAKE2b512: func(key []byte) (hash.Hash, error) {
		return blake2b.New512(blake2bKey(key))
	},
}

// Algorithms returns the names of the supported algorithms.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// blake2bKey shortens keys longer than BLAKE2b allows.
func blake2bKey(key []byte) []byte {
	if len(key) <= blake2b.Size {
		return key
	}
	sum := blake2b.Sum512(key)
	return sum[:]
}

// Signer signs and verifies messages for one vendor.
type Signer struct {
	vendor    string
	algorithm string
	key       []byte
	logger    *slog.Logger
}

// Option configures a Signer.
type Option func(*Signer)

// WithAlgorithm sets the algorithm used by Sign. Verify always uses the
// algorithm named in the message.
func WithAlgorithm(name string) Option {
	return func(s *Signer) {
		s.algorithm = name
	}
}

// WithKey sets a fixed key instead of the source mask.
func WithKey(key []byte) Option {
	return func(s *Signer) {
		s.key = slices.Clone(key)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Signer) {
		s.logger = logger
	}
}

// New creates a signer for the tags of vendor, e.g. "acme.org".
func New(vendor string, opts ...Option) (*Signer, error) {
	s := &Signer{
		vendor:    vendor,
		algorithm: DefaultAlgorithm,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, ok := algorithms[s.algorithm]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s.algorithm)
	}
	return s, nil
}

// Sign returns a copy of m with the hash-algo and hash tags set, replacing
// earlier ones.
func (s *Signer) Sign(m ircmsg.Message) (ircmsg.Message, error) {
	digest, err := s.Digest(m, s.algorithm)
	if err != nil {
		return ircmsg.Message{}, err
	}

	s.logger.Debug("signed message", "vendor", s.vendor, "algorithm", s.algorithm, "hash", digest)

	return ircmsg.FromMessage(m).
		WithoutTag(algorithmTag, s.vendor).
		WithoutTag(hashTag, s.vendor).
		WithTag(algorithmTag, s.algorithm, ircmsg.Vendor(s.vendor)).
		WithTag(hashTag, digest, ircmsg.Vendor(s.vendor)).
		Build(), nil
}

// Verify checks the hash carried by m. It fails with ErrNotSigned,
// ErrUnknownAlgorithm or ErrMismatch.
func (s *Signer) Verify(m ircmsg.Message) error {
	tags := m.Tags()

	hashKey := s.vendor + "/" + hashTag
	if !tags.Contains(hashKey) {
		return ErrNotSigned
	}
	want, err := tags.Unescape(hashKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotSigned, err)
	}

	algorithm, err := tags.Unescape(s.vendor + "/" + algorithmTag)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotSigned, err)
	}

	got, err := s.Digest(m, algorithm)
	if err != nil {
		return err
	}

	if !hmac.Equal([]byte(got), []byte(want)) {
		s.logger.Debug("hash mismatch", "vendor", s.vendor, "algorithm", algorithm, "calculated", got, "received", want)
		return &MismatchError{Calculated: got, Received: want}
	}
	return nil
}

// Digest computes the hex encoded hash of m with the named algorithm.
func (s *Signer) Digest(m ircmsg.Message, algorithm string) (string, error) {
	newHash, ok := algorithms[algorithm]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	key := s.key
	if key == nil {
		src, ok := m.Source()
		if !ok {
			return "", ErrNoKey
		}
		key = []byte(src.Mask())
	}

	h, err := newHash(key)
	if err != nil {
		return "", fmt.Errorf("failed to create %s hash: %w", algorithm, err)
	}

	tags := m.Tags()
	for k, tag := range tags.All() {
		if tag.Vendor != s.vendor || tag.Name == hashTag || tag.Name == algorithmTag {
			continue
		}
		value, err := tags.Unescape(k)
		if err != nil {
			return "", fmt.Errorf("cannot hash tag: %w", err)
		}
		h.Write([]byte(value))
	}

	for _, argument := range m.Command().Arguments() {
		h.Write([]byte(argument))
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// MismatchError reports both hashes of a failed verification.
type MismatchError struct {
	Calculated string
	Received   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: calculated <%s> and received <%s>", ErrMismatch, e.Calculated, e.Received)
}

func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

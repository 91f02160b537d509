package service

import (
	"encoding/base64"
	"encoding/hex"

	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
	"github.com/allisson/cryptobox/internal/primitive"
)

// SealerService encrypts and decrypts strings. Sealed output is
// self-contained: `representation(salt || nonce || ciphertext)` where salt is
// present only in passphrase mode and representation is hex or base64.
//
// In direct-key mode the same key seals every value. In passphrase mode each
// value gets a fresh random salt, so the same plaintext seals to a different
// string every time even under the same passphrase.
type SealerService struct {
	alg      cryptoDomain.Algorithm
	encoding cryptoDomain.Encoding
	aeads    AEADManager
	keys     KeyManager

	key        []byte
	passphrase []byte
	iterations int
	saltSize   int
}

// NewSealerService creates a sealer bound to a fixed 32-byte key.
func NewSealerService(key []byte, alg cryptoDomain.Algorithm, enc cryptoDomain.Encoding) (*SealerService, error) {
	if key == nil {
		return nil, cryptoDomain.ErrNilInput
	}
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}
	if _, err := cryptoDomain.ParseAlgorithm(string(alg)); err != nil {
		return nil, err
	}
	if _, err := cryptoDomain.ParseEncoding(string(enc)); err != nil {
		return nil, err
	}

	k := make([]byte, len(key))
	copy(k, key)

	return &SealerService{
		alg:      alg,
		encoding: enc,
		aeads:    NewAEADManagerService(),
		keys:     NewKeyManagerService(),
		key:      k,
	}, nil
}

// NewPassphraseSealerService creates a sealer that derives a per-value key
// from the passphrase with PBKDF2-HMAC-SHA256 and a fresh random salt.
func NewPassphraseSealerService(passphrase []byte, iterations int, alg cryptoDomain.Algorithm, enc cryptoDomain.Encoding) (*SealerService, error) {
	if passphrase == nil {
		return nil, cryptoDomain.ErrNilInput
	}
	if iterations < MinPBKDF2Iterations {
		return nil, cryptoDomain.ErrIterationsTooLow
	}
	if _, err := cryptoDomain.ParseAlgorithm(string(alg)); err != nil {
		return nil, err
	}
	if _, err := cryptoDomain.ParseEncoding(string(enc)); err != nil {
		return nil, err
	}

	p := make([]byte, len(passphrase))
	copy(p, passphrase)

	return &SealerService{
		alg:        alg,
		encoding:   enc,
		aeads:      NewAEADManagerService(),
		keys:       NewKeyManagerService(),
		passphrase: p,
		iterations: iterations,
		saltSize:   SaltSize,
	}, nil
}

// EncryptString seals a UTF-8 string and returns the encoded result.
// The empty string is a valid input and round-trips to the empty string.
func (s *SealerService) EncryptString(plaintext string) (string, error) {
	return s.EncryptBytes([]byte(plaintext))
}

// DecryptString reverses EncryptString, recovering the exact input.
func (s *SealerService) DecryptString(encoded string) (string, error) {
	plaintext, err := s.DecryptBytes(encoded)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// EncryptBytes seals raw bytes and returns the encoded result.
func (s *SealerService) EncryptBytes(plaintext []byte) (string, error) {
	if plaintext == nil {
		return "", cryptoDomain.ErrNilInput
	}

	var salt []byte
	key := s.key
	if s.saltSize > 0 {
		var err error
		salt, err = s.keys.GenerateSalt()
		if err != nil {
			return "", err
		}
		key, err = s.keys.DeriveKey(s.passphrase, salt, s.iterations)
		if err != nil {
			return "", err
		}
		defer primitive.Zero(key)
	}

	cipher, err := s.aeads.CreateCipher(key, s.alg)
	if err != nil {
		return "", err
	}

	ciphertext, nonce, err := cipher.Encrypt(plaintext, nil)
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext))
	sealed = append(sealed, salt...)
	sealed = append(sealed, nonce...)
	sealed = append(sealed, ciphertext...)

	return s.encode(sealed), nil
}

// DecryptBytes reverses EncryptBytes.
func (s *SealerService) DecryptBytes(encoded string) ([]byte, error) {
	sealed, err := s.decode(encoded)
	if err != nil {
		return nil, cryptoDomain.ErrInvalidEncodedInput
	}

	nonceSize := primitive.ChaCha20NonceSize
	if s.alg == cryptoDomain.XChaCha20Poly1305 {
		nonceSize = primitive.XChaCha20NonceSize
	}
	if len(sealed) < s.saltSize+nonceSize+primitive.TagSize {
		return nil, cryptoDomain.ErrInvalidEncodedInput
	}

	salt := sealed[:s.saltSize]
	nonce := sealed[s.saltSize : s.saltSize+nonceSize]
	ciphertext := sealed[s.saltSize+nonceSize:]

	key := s.key
	if s.saltSize > 0 {
		key, err = s.keys.DeriveKey(s.passphrase, salt, s.iterations)
		if err != nil {
			return nil, err
		}
		defer primitive.Zero(key)
	}

	cipher, err := s.aeads.CreateCipher(key, s.alg)
	if err != nil {
		return nil, err
	}

	return cipher.Decrypt(ciphertext, nonce, nil)
}

// Close zeroes the key material held by the sealer.
func (s *SealerService) Close() {
	primitive.Zero(s.key)
	primitive.Zero(s.passphrase)
}

func (s *SealerService) encode(b []byte) string {
	if s.encoding == cryptoDomain.EncodingBase64 {
		return base64.StdEncoding.EncodeToString(b)
	}

	return hex.EncodeToString(b)
}

func (s *SealerService) decode(v string) ([]byte, error) {
	if s.encoding == cryptoDomain.EncodingBase64 {
		return base64.StdEncoding.DecodeString(v)
	}

	return hex.DecodeString(v)
}

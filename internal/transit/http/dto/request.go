// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
	transitDomain "github.com/allisson/cryptobox/internal/transit/domain"
	customValidation "github.com/allisson/cryptobox/internal/validation"
)

// CreateTransitKeyRequest contains the parameters for creating a new transit key.
type CreateTransitKeyRequest struct {
	Name      string `json:"name"`
	Algorithm string `json:"algorithm"` // "chacha20-poly1305" or "xchacha20-poly1305"
}

// Validate checks if the create transit key request is valid.
func (r *CreateTransitKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
			validation.Length(1, transitDomain.MaxTransitKeyNameLength),
			validation.By(validateName),
		),
		validation.Field(&r.Algorithm,
			validation.Required,
			customValidation.NotBlank,
			validation.By(validateAlgorithm),
		),
	)
}

// RotateTransitKeyRequest contains the parameters for rotating a transit key.
type RotateTransitKeyRequest struct {
	Algorithm string `json:"algorithm"` // "chacha20-poly1305" or "xchacha20-poly1305"
}

// Validate checks if the rotate transit key request is valid.
func (r *RotateTransitKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Algorithm,
			validation.Required,
			customValidation.NotBlank,
			validation.By(validateAlgorithm),
		),
	)
}

// EncryptRequest contains the parameters for encrypting data.
type EncryptRequest struct {
	Plaintext string `json:"plaintext"` // Base64-encoded plaintext
}

// Validate checks if the encrypt request is valid.
func (r *EncryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Plaintext,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Base64,
		),
	)
}

// DecryptRequest contains the parameters for decrypting data.
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext"` // Format: "name:version:base64-ciphertext"
}

// Validate checks if the decrypt request is valid.
func (r *DecryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Ciphertext,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// RewrapRequest contains the parameters for rewrapping a blob under the
// latest key version.
type RewrapRequest struct {
	Ciphertext string `json:"ciphertext"` // Format: "name:version:base64-ciphertext"
}

// Validate checks if the rewrap request is valid.
func (r *RewrapRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Ciphertext,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// validateName validates the transit key name against domain rules.
func validateName(value interface{}) error {
	name, ok := value.(string)
	if !ok {
		return validation.NewError("validation_name_type", "must be a string")
	}

	if err := transitDomain.ValidateTransitKeyName(name); err != nil {
		return validation.NewError("validation_name", "must not be blank or contain ':'")
	}

	return nil
}

// validateAlgorithm validates that the algorithm is supported.
func validateAlgorithm(value interface{}) error {
	alg, ok := value.(string)
	if !ok {
		return validation.NewError("validation_algorithm_type", "must be a string")
	}

	if _, err := cryptoDomain.ParseAlgorithm(alg); err != nil {
		return validation.NewError(
			"validation_algorithm",
			"must be 'chacha20-poly1305' or 'xchacha20-poly1305'",
		)
	}

	return nil
}

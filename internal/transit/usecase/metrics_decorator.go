package usecase

import (
	"context"
	"time"

	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
	"github.com/allisson/cryptobox/internal/metrics"
	transitDomain "github.com/allisson/cryptobox/internal/transit/domain"
)

// transitKeyUseCaseWithMetrics decorates TransitKeyUseCase with metrics instrumentation.
type transitKeyUseCaseWithMetrics struct {
	next    TransitKeyUseCase
	metrics metrics.BusinessMetrics
}

// NewTransitKeyUseCaseWithMetrics wraps a TransitKeyUseCase with metrics recording.
func NewTransitKeyUseCaseWithMetrics(useCase TransitKeyUseCase, m metrics.BusinessMetrics) TransitKeyUseCase {
	return &transitKeyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration histogram for one call.
func (t *transitKeyUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "transit", operation, status)
	t.metrics.RecordDuration(ctx, "transit", operation, time.Since(start), status)
}

// Create records metrics for transit key creation operations.
func (t *transitKeyUseCaseWithMetrics) Create(
	ctx context.Context,
	name string,
	alg cryptoDomain.Algorithm,
) (*transitDomain.TransitKey, error) {
	start := time.Now()
	key, err := t.next.Create(ctx, name, alg)
	t.record(ctx, "transit_key_create", start, err)

	return key, err
}

// Rotate records metrics for transit key rotation operations.
func (t *transitKeyUseCaseWithMetrics) Rotate(
	ctx context.Context,
	name string,
	alg cryptoDomain.Algorithm,
) (*transitDomain.TransitKey, error) {
	start := time.Now()
	key, err := t.next.Rotate(ctx, name, alg)
	t.record(ctx, "transit_key_rotate", start, err)

	return key, err
}

// Encrypt records metrics for transit encryption operations.
func (t *transitKeyUseCaseWithMetrics) Encrypt(
	ctx context.Context,
	name string,
	plaintext []byte,
) (*transitDomain.EncryptedBlob, error) {
	start := time.Now()
	blob, err := t.next.Encrypt(ctx, name, plaintext)
	t.record(ctx, "transit_encrypt", start, err)

	return blob, err
}

// Decrypt records metrics for transit decryption operations.
func (t *transitKeyUseCaseWithMetrics) Decrypt(
	ctx context.Context,
	name string,
	ciphertext string,
) (*transitDomain.EncryptedBlob, error) {
	start := time.Now()
	blob, err := t.next.Decrypt(ctx, name, ciphertext)
	t.record(ctx, "transit_decrypt", start, err)

	return blob, err
}

// Rewrap records metrics for transit rewrap operations.
func (t *transitKeyUseCaseWithMetrics) Rewrap(
	ctx context.Context,
	name string,
	ciphertext string,
) (*transitDomain.EncryptedBlob, error) {
	start := time.Now()
	blob, err := t.next.Rewrap(ctx, name, ciphertext)
	t.record(ctx, "transit_rewrap", start, err)

	return blob, err
}

// List records metrics for transit key listing operations.
func (t *transitKeyUseCaseWithMetrics) List(ctx context.Context) ([]*transitDomain.TransitKey, error) {
	start := time.Now()
	keys, err := t.next.List(ctx)
	t.record(ctx, "transit_key_list", start, err)

	return keys, err
}

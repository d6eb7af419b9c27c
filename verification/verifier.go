package verification

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"servicoperto-backend/utils"
)

const (
	PlatformGoogle = "GOOGLE"
	PlatformApple  = "APPLE"
)

var (
	// ErrUnsupportedPlatform reports a platform with no verification strategy.
	ErrUnsupportedPlatform = errors.New("unsupported purchase platform")
	// ErrInvalidReceipt reports a receipt the store backend rejected. Not
	// retryable without a new receipt.
	ErrInvalidReceipt = errors.New("invalid receipt")
	// ErrVerificationUnavailable reports an unreachable or failing store
	// backend. The receipt is NOT treated as valid in that case.
	ErrVerificationUnavailable = errors.New("store verification backend unavailable")
)

// Result is the normalized outcome of a store-side receipt check.
type Result struct {
	Valid                 bool
	ExternalTransactionID string
}

// Verifier checks a purchase receipt against its store's backend.
type Verifier interface {
	Verify(productID, receipt string) (Result, error)
}

// Registry holds the configured strategy for each platform. Backend URLs are
// fixed at construction; an empty URL puts that platform in placeholder mode.
type Registry struct {
	google Verifier
	apple  Verifier
}

// NewRegistry builds the per-platform verifiers from the configured backend
// URLs.
func NewRegistry(googleVerifyURL, appleVerifyURL string) *Registry {
	return &Registry{
		google: &googleVerifier{verifyURL: googleVerifyURL},
		apple:  &appleVerifier{verifyURL: appleVerifyURL},
	}
}

// For returns the verification strategy for a platform.
func (r *Registry) For(platform string) (Verifier, error) {
	switch platform {
	case PlatformGoogle:
		return r.google, nil
	case PlatformApple:
		return r.apple, nil
	default:
		return nil, ErrUnsupportedPlatform
	}
}

// googleVerifier validates purchases with the Google Play verification
// backend. Without a configured backend URL it runs in placeholder mode: a
// present receipt is accepted and issued a generated transaction id. An
// empty receipt still fails closed.
type googleVerifier struct {
	verifyURL string
}

func (v *googleVerifier) Verify(productID, receipt string) (Result, error) {
	if receipt == "" {
		return Result{}, ErrInvalidReceipt
	}
	if v.verifyURL != "" {
		return verifyRemote(v.verifyURL, productID, receipt)
	}
	utils.LogInfo("Verifying Google purchase for product " + productID)
	return Result{
		Valid:                 true,
		ExternalTransactionID: fmt.Sprintf("google_%d", time.Now().UnixMilli()),
	}, nil
}

// appleVerifier validates purchases with the App Store verification backend.
// Same placeholder behavior as googleVerifier when no URL is configured.
type appleVerifier struct {
	verifyURL string
}

func (v *appleVerifier) Verify(productID, receipt string) (Result, error) {
	if receipt == "" {
		return Result{}, ErrInvalidReceipt
	}
	if v.verifyURL != "" {
		return verifyRemote(v.verifyURL, productID, receipt)
	}
	utils.LogInfo("Verifying Apple purchase for product " + productID)
	return Result{
		Valid:                 true,
		ExternalTransactionID: fmt.Sprintf("apple_%d", time.Now().UnixMilli()),
	}, nil
}

// verifyRemote posts the receipt to the store verification backend. Any
// transport error or server-side failure fails closed as unavailable, never
// as a valid purchase.
func verifyRemote(url, productID, receipt string) (Result, error) {
	payload, err := json.Marshal(map[string]string{
		"productId": productID,
		"receipt":   receipt,
	})
	if err != nil {
		return Result{}, fmt.Errorf("error encoding verification request: %v", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrVerificationUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return Result{}, fmt.Errorf("%w: backend returned %d", ErrVerificationUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return Result{}, ErrInvalidReceipt
	}

	var out struct {
		Valid         bool   `json:"valid"`
		TransactionID string `json:"transactionId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrVerificationUnavailable, err)
	}
	if !out.Valid {
		return Result{}, ErrInvalidReceipt
	}
	return Result{Valid: true, ExternalTransactionID: out.TransactionID}, nil
}

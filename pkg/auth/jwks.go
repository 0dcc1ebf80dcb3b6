package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"
)

var ErrKeyNotFound = errors.New("signing key not found")

// KeyProvider resolves the RSA public key for a token's key identifier.
type KeyProvider interface {
	ResolveKey(ctx context.Context, keyID string) (*rsa.PublicKey, error)
}

const (
	jwksPath       = "/.well-known/jwks.json"
	defaultTimeout = 10 * time.Second
	defaultTTL     = time.Hour
)

// JWKSProvider fetches signing keys from the tenant's JWKS endpoint. Fetched
// keys are cached for a TTL; concurrent refreshes collapse into one request.
type JWKSProvider struct {
	url    string
	client *http.Client
	ttl    time.Duration

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	cacheTime time.Time
	group     singleflight.Group
}

func NewJWKSProvider(domain string) *JWKSProvider {
	return &JWKSProvider{
		url:    "https://" + domain + jwksPath,
		client: &http.Client{Timeout: defaultTimeout},
		ttl:    defaultTTL,
		keys:   make(map[string]*rsa.PublicKey),
	}
}

func (p *JWKSProvider) ResolveKey(ctx context.Context, keyID string) (*rsa.PublicKey, error) {
	p.mu.RLock()
	fresh := time.Since(p.cacheTime) < p.ttl
	key := p.keys[keyID]
	p.mu.RUnlock()

	if fresh && key != nil {
		return key, nil
	}

	_, err, _ := p.group.Do("refresh", func() (interface{}, error) {
		return nil, p.refresh(ctx)
	})
	if err != nil {
		return nil, err
	}

	p.mu.RLock()
	key = p.keys[keyID]
	p.mu.RUnlock()

	if key == nil {
		return nil, ErrKeyNotFound
	}

	return key, nil
}

func (p *JWKSProvider) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch JWKS: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected JWKS status: %d", resp.StatusCode)
	}

	var jwks jwksResponse
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return fmt.Errorf("decode JWKS: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey)

	for _, key := range jwks.Keys {
		if key.Kty != "RSA" {
			continue
		}

		publicKey, err := parseRSAPublicKey(key)
		if err != nil {
			continue
		}

		keys[key.Kid] = publicKey
	}

	p.mu.Lock()
	p.keys = keys
	p.cacheTime = time.Now()
	p.mu.Unlock()

	return nil
}

type jwksResponse struct {
	Keys []jwkKey `json:"keys"`
}

type jwkKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

func parseRSAPublicKey(key jwkKey) (*rsa.PublicKey, error) {
	if key.N == "" || key.E == "" {
		return nil, fmt.Errorf("incomplete key %q", key.Kid)
	}

	nBytes, err := base64.RawURLEncoding.DecodeString(key.N)
	if err != nil {
		return nil, fmt.Errorf("decode modulus: %w", err)
	}

	eBytes, err := base64.RawURLEncoding.DecodeString(key.E)
	if err != nil {
		return nil, fmt.Errorf("decode exponent: %w", err)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}

// StaticKeyProvider serves one key pair loaded from local PEM storage. Used in
// test mode, where no network retrieval happens at all.
type StaticKeyProvider struct {
	key *rsa.PublicKey
}

func NewStaticKeyProvider(publicKeyFile string) (*StaticKeyProvider, error) {
	pemBytes, err := os.ReadFile(publicKeyFile)
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	return &StaticKeyProvider{key: key}, nil
}

func (p *StaticKeyProvider) ResolveKey(_ context.Context, _ string) (*rsa.PublicKey, error) {
	return p.key, nil
}

var (
	_ KeyProvider = (*JWKSProvider)(nil)
	_ KeyProvider = (*StaticKeyProvider)(nil)
)

package httpserver

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/argon2"

	"github.com/differentialHQ/differential/internal/domain"
)

// Argon2Params defines parameters for Argon2id secret hashing.
type Argon2Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLen     uint32
	KeyLen      uint32
}

var defaultArgon2Params = Argon2Params{
	Memory:      64 * 1024, // 64 MB
	Iterations:  3,
	Parallelism: 2,
	SaltLen:     16,
	KeyLen:      32,
}

// Argon2Hasher hashes and verifies cluster API secrets. The zero value uses
// defaultArgon2Params.
type Argon2Hasher struct {
	Params Argon2Params
}

func (h Argon2Hasher) params() Argon2Params {
	if h.Params.KeyLen == 0 {
		return defaultArgon2Params
	}
	return h.Params
}

// Hash creates an Argon2id hash of the secret.
func (h Argon2Hasher) Hash(secret string) (string, error) {
	p := h.params()
	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("op=auth.hash_secret: %w", err)
	}

	hash := argon2.IDKey([]byte(secret), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLen)

	// Format: argon2id$iterations$memory$parallelism$salt$hash (base64 encoded)
	encoded := fmt.Sprintf("argon2id$%d$%d$%d$%s$%s",
		p.Iterations,
		p.Memory,
		p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// Verify verifies a secret against its Argon2id hash. Malformed hashes
// verify as false rather than erroring.
func (h Argon2Hasher) Verify(secret, encodedHash string) bool {
	// Expected format: argon2id$iterations$memory$parallelism$salt$hash (base64 raw std for salt/hash)
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "argon2id" {
		return false
	}
	iters, err1 := parseUint32(parts[1])
	mem, err2 := parseUint32(parts[2])
	par64, err3 := parseUint32(parts[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	expectedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	// Clamp parallelism to uint8 range to avoid overflow.
	var par uint8
	if par64 > math.MaxUint8 {
		par = math.MaxUint8
	} else {
		par = uint8(par64)
	}
	actualHash := argon2.IDKey([]byte(secret), salt, iters, mem, par, uint32(len(expectedHash)))
	return subtle.ConstantTimeCompare(actualHash, expectedHash) == 1
}

// clusterIDFromSecret extracts the cluster id embedded in an sk_ secret.
// Secrets are formatted sk_<clusterID>_<random>; cluster ids never contain
// underscores, so the last separator is unambiguous.
func clusterIDFromSecret(secret string) (string, bool) {
	if !strings.HasPrefix(secret, "sk_") {
		return "", false
	}
	i := strings.LastIndex(secret, "_")
	if i <= len("sk_") {
		return "", false
	}
	return secret[len("sk_"):i], true
}

type cachedAuth struct {
	secretSHA [sha256.Size]byte
	cluster   domain.Cluster
	expiresAt time.Time
}

// ClusterAuth authenticates cluster API secrets against their stored hashes.
// Verified secrets are cached for TTL to keep argon2 off the polling hot
// path; the cache holds a SHA-256 of the presented secret, never the secret.
type ClusterAuth struct {
	Clusters domain.ClusterRepository
	Hasher   Argon2Hasher
	TTL      time.Duration

	mu    sync.RWMutex
	cache map[string]cachedAuth
}

// NewClusterAuth builds a ClusterAuth with an empty cache.
func NewClusterAuth(clusters domain.ClusterRepository, ttl time.Duration) *ClusterAuth {
	return &ClusterAuth{Clusters: clusters, TTL: ttl, cache: make(map[string]cachedAuth)}
}

// Authenticate resolves the cluster owning the secret, or ErrUnauthorized.
func (a *ClusterAuth) Authenticate(ctx context.Context, secret string) (domain.Cluster, error) {
	clusterID, ok := clusterIDFromSecret(secret)
	if !ok {
		return domain.Cluster{}, fmt.Errorf("%w: malformed api secret", domain.ErrUnauthorized)
	}
	sum := sha256.Sum256([]byte(secret))

	a.mu.RLock()
	entry, hit := a.cache[clusterID]
	a.mu.RUnlock()
	if hit && time.Now().Before(entry.expiresAt) && subtle.ConstantTimeCompare(entry.secretSHA[:], sum[:]) == 1 {
		return operationalCluster(entry.cluster)
	}

	c, err := a.Clusters.Get(ctx, clusterID)
	if err != nil {
		return domain.Cluster{}, fmt.Errorf("%w: unknown cluster", domain.ErrUnauthorized)
	}
	if !a.Hasher.Verify(secret, c.APISecretHash) {
		return domain.Cluster{}, fmt.Errorf("%w: secret mismatch", domain.ErrUnauthorized)
	}

	a.mu.Lock()
	a.cache[clusterID] = cachedAuth{secretSHA: sum, cluster: c, expiresAt: time.Now().Add(a.TTL)}
	a.mu.Unlock()
	return operationalCluster(c)
}

// operationalCluster refuses disabled clusters. A valid secret for a disabled
// cluster is forbidden, not unauthorized. Disabling takes effect on cached
// entries no later than the cache TTL.
func operationalCluster(c domain.Cluster) (domain.Cluster, error) {
	if c.Disabled {
		return domain.Cluster{}, fmt.Errorf("%w: cluster not operational", domain.ErrForbidden)
	}
	return c, nil
}

// Require is middleware that authenticates the Authorization header and puts
// the owning cluster on the request context.
func (a *ClusterAuth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret := bearerToken(r)
		if secret == "" {
			writeError(w, r, fmt.Errorf("%w: missing authorization", domain.ErrUnauthorized), nil)
			return
		}
		cluster, err := a.Authenticate(r.Context(), secret)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithCluster(r.Context(), cluster)))
	})
}

// ManagementAuth guards cluster provisioning with a static management secret
// compared in constant time. An empty configured secret disables the surface.
func ManagementAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				writeError(w, r, fmt.Errorf("%w: management api disabled", domain.ErrForbidden), nil)
				return
			}
			if subtle.ConstantTimeCompare([]byte(bearerToken(r)), []byte(secret)) != 1 {
				writeError(w, r, fmt.Errorf("%w: invalid management secret", domain.ErrUnauthorized), nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken returns the Authorization credential with an optional Bearer
// prefix stripped. Worker SDKs send the bare secret.
func bearerToken(r *http.Request) string {
	v := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(v) >= 7 && strings.EqualFold(v[:7], "Bearer ") {
		return strings.TrimSpace(v[7:])
	}
	return v
}

// clusterKey is an unexported context key type for the authenticated cluster.
type clusterKey struct{}

// ContextWithCluster attaches an authenticated cluster to the context.
func ContextWithCluster(ctx context.Context, c domain.Cluster) context.Context {
	return context.WithValue(ctx, clusterKey{}, c)
}

// ClusterFromContext returns the authenticated cluster, if any.
func ClusterFromContext(ctx context.Context) (domain.Cluster, bool) {
	c, ok := ctx.Value(clusterKey{}).(domain.Cluster)
	return c, ok
}

// parseUint32 parses a decimal string into uint32; returns error on failure
func parseUint32(s string) (uint32, error) {
	x, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse")
	}
	if x > math.MaxUint32 {
		return 0, fmt.Errorf("parse")
	}
	return uint32(x), nil
}

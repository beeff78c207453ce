package credential

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	encoding_asn1 "encoding/asn1"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

const (
	issuedAtSkew  = 60 * time.Second
	tokenLifetime = 540 * time.Second
)

var (
	oidRSAEncryption = encoding_asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	pemEnvelope      = regexp.MustCompile(`-----(BEGIN|END) [A-Z0-9 ]+-----`)
	whitespace       = regexp.MustCompile(`\s+`)
)

// Provider mints GitHub App tokens. The private key is read and parsed on first use
// and cached for the lifetime of the Provider.
type Provider struct {
	appID   types.GitHubAppID
	pemKey  types.GitHubAppPrivateKey
	keyPath string

	mutex  sync.Mutex
	key    atomic.Pointer[rsa.PrivateKey]
	parsed atomic.Int64
}

type Option func(*Provider)

// WithPrivateKey sets an inline PEM key. It takes precedence over WithPrivateKeyPath.
func WithPrivateKey(pem types.GitHubAppPrivateKey) Option {
	return func(x *Provider) {
		x.pemKey = pem
	}
}

func WithPrivateKeyPath(path string) Option {
	return func(x *Provider) {
		x.keyPath = path
	}
}

func New(appID types.GitHubAppID, options ...Option) *Provider {
	x := &Provider{appID: appID}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *Provider) AppID() types.GitHubAppID {
	return x.appID
}

// appClaims keeps iss numeric as GitHub documents it.
type appClaims struct {
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
	Issuer    int64 `json:"iss"`
}

func (appClaims) Valid() error { return nil }

// MintAppToken returns a signed RS256 App token valid from one minute ago for nine minutes.
func (x *Provider) MintAppToken(ctx context.Context) (string, error) {
	return x.mint(logging.CtxTime(ctx))
}

// Sign implements ghinstallation.Signer. The transport's claims are replaced by this
// provider's so every App token has the same lifetime.
func (x *Provider) Sign(_ jwt.Claims) (string, error) {
	return x.mint(time.Now())
}

func (x *Provider) mint(now time.Time) (string, error) {
	if x.appID == 0 {
		return "", goerr.Wrap(types.ErrConfiguration, "GitHub App ID is not configured")
	}

	key, err := x.privateKey()
	if err != nil {
		return "", err
	}

	claims := appClaims{
		IssuedAt:  now.Add(-issuedAtSkew).Unix(),
		ExpiresAt: now.Add(tokenLifetime).Unix(),
		Issuer:    int64(x.appID),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", cryptoError(err, "failed to sign App token", goerr.V("app_id", x.appID))
	}

	return signed, nil
}

func (x *Provider) privateKey() (*rsa.PrivateKey, error) {
	if key := x.key.Load(); key != nil {
		return key, nil
	}

	x.mutex.Lock()
	defer x.mutex.Unlock()

	if key := x.key.Load(); key != nil {
		return key, nil
	}

	pemText, err := x.loadPEM()
	if err != nil {
		return nil, err
	}
	key, err := parsePrivateKey(pemText)
	if err != nil {
		return nil, err
	}

	x.parsed.Add(1)
	x.key.Store(key)
	return key, nil
}

func (x *Provider) loadPEM() (string, error) {
	if strings.TrimSpace(string(x.pemKey)) != "" {
		return string(x.pemKey), nil
	}

	if strings.TrimSpace(x.keyPath) == "" {
		return "", goerr.Wrap(types.ErrConfiguration, "GitHub App private key is not configured")
	}

	raw, err := os.ReadFile(filepath.Clean(x.keyPath))
	if err != nil {
		return "", goerr.Wrap(fmt.Errorf("%w: %w", types.ErrConfiguration, err),
			"failed to read GitHub App private key", goerr.V("path", x.keyPath))
	}
	return string(raw), nil
}

func parsePrivateKey(pemText string) (*rsa.PrivateKey, error) {
	pkcs1 := strings.Contains(pemText, "BEGIN RSA PRIVATE KEY")

	body := whitespace.ReplaceAllString(pemEnvelope.ReplaceAllString(pemText, ""), "")
	der, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, cryptoError(err, "failed to decode private key body")
	}

	if pkcs1 {
		if der, err = wrapPKCS1(der); err != nil {
			return nil, err
		}
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, cryptoError(err, "failed to parse private key")
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, goerr.Wrap(types.ErrCrypto, "private key is not RSA", goerr.V("type", fmt.Sprintf("%T", parsed)))
	}
	return key, nil
}

// wrapPKCS1 embeds a PKCS#1 RSAPrivateKey in a PKCS#8 PrivateKeyInfo:
// SEQUENCE { INTEGER 0, SEQUENCE { rsaEncryption, NULL }, OCTET STRING pkcs1 }
func wrapPKCS1(pkcs1 []byte) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0)
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oidRSAEncryption)
			b.AddASN1NULL()
		})
		b.AddASN1OctetString(pkcs1)
	})

	der, err := b.Bytes()
	if err != nil {
		return nil, cryptoError(err, "failed to wrap PKCS#1 key")
	}
	return der, nil
}

func cryptoError(err error, msg string, options ...goerr.Option) error {
	return goerr.Wrap(fmt.Errorf("%w: %w", types.ErrCrypto, err), msg, options...)
}

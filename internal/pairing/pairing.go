// Package pairing mints and verifies the tokens a bridge client presents
// when connecting to the daemon. Tokens are securecookie-signed claims
// derived from the keyring-held pairing secret; the connect URL is also
// rendered as a terminal QR code so a device can scan it.
package pairing

import (
	"fmt"
	"time"

	"github.com/gorilla/securecookie"
	qrcode "github.com/skip2/go-qrcode"
)

const tokenName = "pairing"

// Tokens older than this are refused even if the signature checks out.
const maxTokenAge = 30 * 24 * time.Hour

type Claims struct {
	Client   string `json:"client"`
	IssuedAt int64  `json:"issued_at"`
}

type Issuer struct {
	sc *securecookie.SecureCookie
}

func NewIssuer(secret []byte) *Issuer {
	sc := securecookie.New(secret, nil)
	sc.SetSerializer(securecookie.JSONEncoder{})
	sc.MaxAge(int(maxTokenAge / time.Second))
	return &Issuer{sc: sc}
}

// Token signs claims for one client.
func (i *Issuer) Token(client string) (string, error) {
	claims := Claims{Client: client, IssuedAt: time.Now().Unix()}
	token, err := i.sc.Encode(tokenName, claims)
	if err != nil {
		return "", fmt.Errorf("sign pairing token: %w", err)
	}
	return token, nil
}

// Verify checks the signature and age, returning the embedded claims.
func (i *Issuer) Verify(token string) (Claims, error) {
	var claims Claims
	if err := i.sc.Decode(tokenName, token, &claims); err != nil {
		return Claims{}, fmt.Errorf("verify pairing token: %w", err)
	}
	return claims, nil
}

// ConnectQR renders the bridge connect URL as a small terminal QR code.
func ConnectQR(url string) (string, error) {
	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("render connect QR: %w", err)
	}
	return qr.ToSmallString(false), nil
}

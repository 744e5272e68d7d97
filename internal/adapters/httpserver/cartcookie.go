package httpserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/lautarovg/cartaviva/internal/domain"
)

// The cart lives client-side in an HMAC-signed cookie, one per business so a
// customer can hold carts at several menus at once. It survives reloads but
// is never written to the record store; checkout only formats it into a
// message.

type cartPayload struct {
	Items []domain.CartItem `json:"items"`
}

func cartCookieName(slug string) string { return "cart_" + slug }

func (s *Server) readCart(r *http.Request, slug string) *domain.Cart {
	c, err := r.Cookie(cartCookieName(slug))
	if err != nil {
		return domain.NewCart()
	}
	parts := splitToken(c.Value)
	if parts == nil {
		return domain.NewCart()
	}
	sig, _ := base64.RawURLEncoding.DecodeString(parts[0])
	payload, _ := base64.RawURLEncoding.DecodeString(parts[1])
	h := hmac.New(sha256.New, s.secret)
	h.Write(payload)
	if !hmac.Equal(sig, h.Sum(nil)) {
		return domain.NewCart()
	}
	var cp cartPayload
	if err := json.Unmarshal(payload, &cp); err != nil {
		return domain.NewCart()
	}
	return domain.RestoreCart(cp.Items)
}

func (s *Server) writeCart(w http.ResponseWriter, slug string, cart *domain.Cart) {
	b, _ := json.Marshal(cartPayload{Items: cart.Items()})
	h := hmac.New(sha256.New, s.secret)
	h.Write(b)
	sig := base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	val := sig + "." + base64.RawURLEncoding.EncodeToString(b)
	http.SetCookie(w, &http.Cookie{
		Name:     cartCookieName(slug),
		Value:    val,
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 7,
		HttpOnly: true,
	})
}

func (s *Server) clearCart(w http.ResponseWriter, slug string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cartCookieName(slug),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

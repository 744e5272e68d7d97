package httpserver

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lautarovg/cartaviva/internal/domain"
)

type menuResponse struct {
	Business struct {
		Name         string `json:"name"`
		Slug         string `json:"slug"`
		HeroTitle    string `json:"hero_title"`
		HeroSubtitle string `json:"hero_subtitle"`
	} `json:"business"`
	Products []domain.EnrichedProduct `json:"products"`
	Demo     bool                     `json:"demo,omitempty"`
	Retry    bool                     `json:"retry,omitempty"`
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	resp := menuResponse{}
	resp.Business.Name = b.Name
	resp.Business.Slug = b.Slug
	resp.Business.HeroTitle = b.HeroTitle
	resp.Business.HeroSubtitle = b.HeroSubtitle

	items, err := s.catalog.Assemble(r.Context(), b.ID)
	if err != nil {
		if errors.Is(err, domain.ErrCatalogUnavailable) {
			// Base fetch failed: serve the demo dataset with a retry hint so
			// the storefront still renders something.
			log.Error().Err(err).Str("slug", b.Slug).Msg("catálogo no disponible")
			resp.Products = demoCatalog(b.ID)
			resp.Demo = true
			resp.Retry = true
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		writeError(w, http.StatusInternalServerError, "error interno")
		return
	}
	resp.Products = items
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleThemeCSS(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	theme, err := s.themes.Resolve(r.Context(), b.ID)
	if err != nil {
		// A broken theme read must not break the menu: fall back to defaults.
		log.Warn().Err(err).Str("slug", b.Slug).Msg("tema no disponible, se usa el preset")
		theme = domain.ResolveTheme(nil)
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=60")
	_, _ = w.Write([]byte(theme.CSS()))
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	cats, err := s.categories.List(r.Context(), b.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error interno")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": cats})
}

type cartResponse struct {
	Items  []domain.CartItem `json:"items"`
	Totals domain.Totals     `json:"totals"`
	Open   bool              `json:"open"`
}

func (s *Server) cartResponse(b *domain.Business, cart *domain.Cart) cartResponse {
	return cartResponse{
		Items:  cart.Items(),
		Totals: cart.Totals(b.TaxRate, b.ShippingCost),
		Open:   cart.IsOpen(),
	}
}

func (s *Server) handleCartGet(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	cart := s.readCart(r, b.Slug)
	writeJSON(w, http.StatusOK, s.cartResponse(b, cart))
}

type cartMutation struct {
	ProductID uuid.UUID `json:"product_id"`
	Qty       int       `json:"qty"`
}

func decodeCartMutation(r *http.Request) (cartMutation, error) {
	var m cartMutation
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		if err := readBodyJSON(r, &m); err != nil {
			return m, err
		}
		return m, nil
	}
	if err := r.ParseForm(); err != nil {
		return m, err
	}
	id, err := uuid.Parse(r.FormValue("product_id"))
	if err != nil {
		return m, err
	}
	m.ProductID = id
	m.Qty = formInt(r, "qty")
	return m, nil
}

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	m, err := decodeCartMutation(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "producto inválido")
		return
	}
	if m.Qty < 1 {
		m.Qty = 1
	}
	p, err := s.catalog.Enriched(r.Context(), b.ID, m.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "producto no encontrado")
			return
		}
		writeError(w, http.StatusServiceUnavailable, "catálogo no disponible")
		return
	}
	cart := s.readCart(r, b.Slug)
	cart.AddItem(*p, m.Qty)
	s.writeCart(w, b.Slug, cart)
	writeJSON(w, http.StatusOK, s.cartResponse(b, cart))
}

func (s *Server) handleCartUpdate(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	m, err := decodeCartMutation(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "producto inválido")
		return
	}
	cart := s.readCart(r, b.Slug)
	cart.UpdateQuantity(m.ProductID, m.Qty)
	s.writeCart(w, b.Slug, cart)
	writeJSON(w, http.StatusOK, s.cartResponse(b, cart))
}

func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	m, err := decodeCartMutation(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "producto inválido")
		return
	}
	cart := s.readCart(r, b.Slug)
	cart.RemoveItem(m.ProductID)
	s.writeCart(w, b.Slug, cart)
	writeJSON(w, http.StatusOK, s.cartResponse(b, cart))
}

// handleCartCheckout formats the cart into the WhatsApp order message and
// hands off via deep link. No order record is created anywhere.
func (s *Server) handleCartCheckout(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	cart := s.readCart(r, b.Slug)
	if cart.Len() == 0 {
		writeError(w, http.StatusBadRequest, "carrito vacío")
		return
	}
	phone := sanitizePhone(b.WhatsApp)
	if phone == "" {
		writeError(w, http.StatusConflict, "el negocio no tiene WhatsApp configurado")
		return
	}
	msg := cart.OrderMessage(b.Name, b.TaxRate, b.ShippingCost)
	link := "https://wa.me/" + phone + "?text=" + url.QueryEscape(msg)

	s.clearCart(w, b.Slug)
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		writeJSON(w, http.StatusOK, map[string]string{"link": link})
		return
	}
	http.Redirect(w, r, link, http.StatusFound)
}

func sanitizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

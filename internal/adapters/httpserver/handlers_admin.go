package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lautarovg/cartaviva/internal/adapters/export"
	"github.com/lautarovg/cartaviva/internal/domain"
)

// Validation failures are rejected here, before any write reaches the store,
// and surface as 400/422 with an inline message.

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "no encontrado")
	case errors.Is(err, domain.ErrInvalidDiscountPercentage):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "registro duplicado")
	default:
		writeError(w, http.StatusInternalServerError, "error interno")
	}
}

func urlUUID(r *http.Request, key string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, key))
}

// --- Business settings ---

func (s *Server) adminGetBusiness(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	writeJSON(w, http.StatusOK, b)
}

type businessUpdate struct {
	Name         string          `json:"name"`
	WhatsApp     string          `json:"whatsapp"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	HeroTitle    string          `json:"hero_title"`
	HeroSubtitle string          `json:"hero_subtitle"`
}

func (s *Server) adminUpdateBusiness(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	var req businessUpdate
	if err := readBodyJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "body inválido")
		return
	}
	b.Name = req.Name
	b.WhatsApp = req.WhatsApp
	b.TaxRate = req.TaxRate
	b.ShippingCost = req.ShippingCost
	b.HeroTitle = req.HeroTitle
	b.HeroSubtitle = req.HeroSubtitle
	if err := s.businesses.Update(r.Context(), b); err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// --- Products ---

type productPayload struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	Available   *bool           `json:"available"`
}

func (s *Server) adminListProducts(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	list, err := s.products.List(r.Context(), b.ID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": list})
}

func (s *Server) adminCreateProduct(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	var req productPayload
	if err := readBodyJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "body inválido")
		return
	}
	p := &domain.Product{
		BusinessID:  b.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		Available:   true,
	}
	if req.Available != nil {
		p.Available = *req.Available
	}
	if err := s.products.Create(r.Context(), p); err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) adminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	id, err := urlUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return
	}
	var req productPayload
	if err := readBodyJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "body inválido")
		return
	}
	existing, err := s.products.Get(r.Context(), b.ID, id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	p := &domain.Product{
		ID:          id,
		BusinessID:  b.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		// An omitted flag keeps the stored visibility; a partial edit must
		// not re-publish a hidden product.
		Available: existing.Available,
	}
	if req.Available != nil {
		p.Available = *req.Available
	}
	if err := s.products.Update(r.Context(), p); err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) adminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	id, err := urlUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return
	}
	if err := s.products.Delete(r.Context(), b.ID, id); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) adminUploadImage(w http.ResponseWriter, r *http.Request) {
	if s.businessFromSlug(w, r) == nil {
		return
	}
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "multipart inválido")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "imagen requerida")
		return
	}
	defer file.Close()
	urlPath, err := s.storage.Save(header.Filename, file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "no se pudo guardar la imagen")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": urlPath})
}

func (s *Server) adminImageLookup(w http.ResponseWriter, r *http.Request) {
	if s.businessFromSlug(w, r) == nil {
		return
	}
	pageURL := r.URL.Query().Get("url")
	if pageURL == "" {
		writeError(w, http.StatusBadRequest, "url requerida")
		return
	}
	img, err := s.images.LookupImage(r.Context(), pageURL)
	if err != nil {
		writeError(w, http.StatusBadGateway, "no se encontró imagen")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"image": img})
}

// --- Categories ---

func (s *Server) adminListCategories(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	list, err := s.categories.List(r.Context(), b.ID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": list})
}

func (s *Server) adminCreateCategory(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	var req struct {
		Name      string `json:"name"`
		SortOrder int    `json:"sort_order"`
	}
	if err := readBodyJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "body inválido")
		return
	}
	c := &domain.Category{BusinessID: b.ID, Name: req.Name, SortOrder: req.SortOrder}
	if err := s.categories.Create(r.Context(), c); err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) adminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	id, err := urlUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return
	}
	if err := s.categories.Delete(r.Context(), b.ID, id); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Discounts ---

func (s *Server) adminListDiscounts(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	list, err := s.discounts.List(r.Context(), b.ID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"discounts": list})
}

func (s *Server) adminApplyDiscount(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	productID, err := urlUUID(r, "productID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return
	}
	var req struct {
		Percentage decimal.Decimal `json:"percentage"`
	}
	if err := readBodyJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "body inválido")
		return
	}
	d, err := s.discounts.Apply(r.Context(), b.ID, productID, req.Percentage)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) adminRemoveDiscount(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	productID, err := urlUUID(r, "productID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return
	}
	if err := s.discounts.Remove(r.Context(), b.ID, productID); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Inventory ---

func (s *Server) adminSetStock(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	productID, err := urlUUID(r, "productID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return
	}
	var req struct {
		Stock int `json:"stock"`
	}
	if err := readBodyJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "body inválido")
		return
	}
	inv, err := s.inventories.SetStock(r.Context(), b.ID, productID, req.Stock)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (s *Server) adminUntrack(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	productID, err := urlUUID(r, "productID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "id inválido")
		return
	}
	if err := s.inventories.Untrack(r.Context(), b.ID, productID); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Theme ---

func (s *Server) adminGetTheme(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	ts, err := s.themes.Settings(r.Context(), b.ID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"settings": ts,
		"resolved": domain.ResolveTheme(ts),
		"presets":  domain.Presets,
	})
}

func (s *Server) adminUpdateTheme(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	var ts domain.ThemeSettings
	if err := readBodyJSON(r, &ts); err != nil {
		writeError(w, http.StatusBadRequest, "body inválido")
		return
	}
	ts.BusinessID = b.ID
	if err := s.themes.Save(r.Context(), &ts); err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.ResolveTheme(&ts))
}

// --- Export ---

func (s *Server) adminExportXLSX(w http.ResponseWriter, r *http.Request) {
	b := s.businessFromSlug(w, r)
	if b == nil {
		return
	}
	items, err := s.catalog.Assemble(r.Context(), b.ID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	f, err := export.CatalogWorkbook(b, items)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "no se pudo generar el archivo")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="catalogo-%s.xlsx"`, b.Slug))
	if err := f.Write(w); err != nil {
		writeError(w, http.StatusInternalServerError, "no se pudo escribir el archivo")
	}
}

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/lautarovg/cartaviva/internal/domain"
	"github.com/lautarovg/cartaviva/internal/usecase"
)

type Server struct {
	businesses  *usecase.BusinessUC
	catalog     *usecase.CatalogUC
	products    *usecase.ProductUC
	categories  *usecase.CategoryUC
	discounts   *usecase.DiscountUC
	inventories *usecase.InventoryUC
	themes      *usecase.ThemeUC
	storage     domain.FileStorage
	images      ImageLookup
	oauthCfg    *oauth2.Config

	secret       []byte
	adminAllowed map[string]struct{}
}

// ImageLookup is the admin image-scraper collaborator.
type ImageLookup interface {
	LookupImage(ctx context.Context, pageURL string) (string, error)
}

type Deps struct {
	Businesses  *usecase.BusinessUC
	Catalog     *usecase.CatalogUC
	Products    *usecase.ProductUC
	Categories  *usecase.CategoryUC
	Discounts   *usecase.DiscountUC
	Inventories *usecase.InventoryUC
	Themes      *usecase.ThemeUC
	Storage     domain.FileStorage
	Images      ImageLookup
	OAuthConfig *oauth2.Config
}

func New(d Deps) http.Handler {
	s := &Server{
		businesses:  d.Businesses,
		catalog:     d.Catalog,
		products:    d.Products,
		categories:  d.Categories,
		discounts:   d.Discounts,
		inventories: d.Inventories,
		themes:      d.Themes,
		storage:     d.Storage,
		images:      d.Images,
		oauthCfg:    d.OAuthConfig,
	}

	s.secret = []byte(os.Getenv("SESSION_KEY"))
	if len(s.secret) == 0 {
		log.Warn().Msg("SESSION_KEY no configurada: se usa la clave de desarrollo, las sesiones y carritos firmados no son seguros")
		s.secret = []byte("dev-insecure")
	}
	allowed := map[string]struct{}{}
	if raw := os.Getenv("ADMIN_ALLOWED_EMAILS"); raw != "" {
		for _, e := range strings.Split(raw, ",") {
			e = strings.ToLower(strings.TrimSpace(e))
			if e != "" {
				allowed[e] = struct{}{}
			}
		}
	}
	s.adminAllowed = allowed

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir("uploads"))))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/m/{slug}", func(r chi.Router) {
		r.Get("/", s.handleMenu)
		r.Get("/theme.css", s.handleThemeCSS)
		r.Get("/categories", s.handleCategories)

		r.Get("/cart", s.handleCartGet)
		r.Post("/cart", s.handleCartAdd)
		r.Post("/cart/update", s.handleCartUpdate)
		r.Post("/cart/remove", s.handleCartRemove)
		r.Post("/cart/checkout", s.handleCartCheckout)
	})

	r.Get("/auth/google/login", s.handleGoogleLogin)
	r.Get("/auth/google/callback", s.handleGoogleCallback)
	r.Get("/logout", s.handleLogout)

	r.Route("/admin/m/{slug}", func(r chi.Router) {
		r.Use(s.requireAdmin)

		r.Get("/business", s.adminGetBusiness)
		r.Put("/business", s.adminUpdateBusiness)

		r.Get("/products", s.adminListProducts)
		r.Post("/products", s.adminCreateProduct)
		r.Put("/products/{id}", s.adminUpdateProduct)
		r.Delete("/products/{id}", s.adminDeleteProduct)
		r.Post("/products/image", s.adminUploadImage)
		r.Get("/products/image-lookup", s.adminImageLookup)

		r.Get("/categories", s.adminListCategories)
		r.Post("/categories", s.adminCreateCategory)
		r.Delete("/categories/{id}", s.adminDeleteCategory)

		r.Get("/discounts", s.adminListDiscounts)
		r.Put("/discounts/{productID}", s.adminApplyDiscount)
		r.Delete("/discounts/{productID}", s.adminRemoveDiscount)

		r.Put("/inventory/{productID}", s.adminSetStock)
		r.Delete("/inventory/{productID}", s.adminUntrack)

		r.Get("/theme", s.adminGetTheme)
		r.Put("/theme", s.adminUpdateTheme)

		r.Get("/export/xlsx", s.adminExportXLSX)
	})

	return r
}

// businessFromSlug resolves the tenant for the request or writes the error.
func (s *Server) businessFromSlug(w http.ResponseWriter, r *http.Request) *domain.Business {
	slug := chi.URLParam(r, "slug")
	b, err := s.businesses.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "negocio no encontrado")
			return nil
		}
		writeError(w, http.StatusInternalServerError, "error interno")
		return nil
	}
	return b
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

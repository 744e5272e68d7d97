package app

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/lautarovg/cartaviva/internal/adapters/httpserver"
	"github.com/lautarovg/cartaviva/internal/adapters/repo/postgres"
	"github.com/lautarovg/cartaviva/internal/adapters/scraper"
	"github.com/lautarovg/cartaviva/internal/adapters/storage/localfs"
	"github.com/lautarovg/cartaviva/internal/domain"
	"github.com/lautarovg/cartaviva/internal/usecase"
)

type App struct {
	DB          *gorm.DB
	Businesses  *usecase.BusinessUC
	Catalog     *usecase.CatalogUC
	Products    *usecase.ProductUC
	Categories  *usecase.CategoryUC
	Discounts   *usecase.DiscountUC
	Inventories *usecase.InventoryUC
	Themes      *usecase.ThemeUC
	Storage     domain.FileStorage
	OAuthConfig *oauth2.Config

	images *scraper.ImageScraper
}

func NewApp(db *gorm.DB) (*App, error) {
	businessRepo := postgres.NewBusinessRepo(db)
	productRepo := postgres.NewProductRepo(db)
	categoryRepo := postgres.NewCategoryRepo(db)
	discountRepo := postgres.NewDiscountRepo(db)
	inventoryRepo := postgres.NewInventoryRepo(db)
	themeRepo := postgres.NewThemeRepo(db)

	storageDir := os.Getenv("STORAGE_DIR")
	if storageDir == "" {
		storageDir = "uploads"
	}
	if err := os.MkdirAll(storageDir, 0o755); err != nil {
		return nil, err
	}

	var oauthCfg *oauth2.Config
	googleID := os.Getenv("GOOGLE_CLIENT_ID")
	googleSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if googleID != "" && googleSecret != "" {
		oauthCfg = &oauth2.Config{
			ClientID:     googleID,
			ClientSecret: googleSecret,
			RedirectURL:  baseURL + "/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}

	a := &App{
		DB:          db,
		Businesses:  &usecase.BusinessUC{Businesses: businessRepo},
		Catalog:     &usecase.CatalogUC{Products: productRepo, Discounts: discountRepo, Inventories: inventoryRepo},
		Products:    &usecase.ProductUC{Products: productRepo},
		Categories:  &usecase.CategoryUC{Categories: categoryRepo},
		Discounts:   &usecase.DiscountUC{Products: productRepo, Discounts: discountRepo},
		Inventories: &usecase.InventoryUC{Products: productRepo, Inventories: inventoryRepo},
		Themes:      &usecase.ThemeUC{Themes: themeRepo},
		Storage:     localfs.New(storageDir),
		OAuthConfig: oauthCfg,
		images:      scraper.NewImageScraper(),
	}
	return a, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(httpserver.Deps{
		Businesses:  a.Businesses,
		Catalog:     a.Catalog,
		Products:    a.Products,
		Categories:  a.Categories,
		Discounts:   a.Discounts,
		Inventories: a.Inventories,
		Themes:      a.Themes,
		Storage:     a.Storage,
		Images:      a.images,
		OAuthConfig: a.OAuthConfig,
	})
}

func (a *App) MigrateAndSeed() error {
	if err := a.DB.AutoMigrate(
		&domain.Business{},
		&domain.Product{},
		&domain.Category{},
		&domain.Discount{},
		&domain.Inventory{},
		&domain.ThemeSettings{},
	); err != nil {
		return err
	}
	return a.seedDemoBusiness()
}

// seedDemoBusiness creates a demo tenant on an empty database so a fresh
// install has something to look at. A duplicate-key conflict means another
// instance seeded first and counts as done.
func (a *App) seedDemoBusiness() error {
	var count int64
	if err := a.DB.Model(&domain.Business{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	b := &domain.Business{
		ID:           uuid.New(),
		Name:         "La Esquina",
		Slug:         "la-esquina",
		WhatsApp:     "5493415550123",
		TaxRate:      decimal.NewFromInt(21),
		ShippingCost: decimal.NewFromInt(1500),
		HeroTitle:    "La Esquina",
		HeroSubtitle: "Pedí por WhatsApp y retirá en 20 minutos",
	}
	if err := a.Businesses.Update(context.Background(), b); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil
		}
		return err
	}

	products := []struct {
		name  string
		desc  string
		price int64
	}{
		{"Milanesa completa", "Con papas fritas y ensalada", 7800},
		{"Pizza muzzarella", "Ocho porciones, masa madre", 6500},
		{"Empanadas x12", "Carne, pollo o verdura", 7200},
		{"Flan casero", "Con dulce de leche", 2400},
	}
	for _, p := range products {
		prod := &domain.Product{
			BusinessID:  b.ID,
			Name:        p.name,
			Description: p.desc,
			Price:       decimal.NewFromInt(p.price),
			Available:   true,
		}
		if err := a.Products.Create(context.Background(), prod); err != nil && !errors.Is(err, domain.ErrConflict) {
			return err
		}
	}
	return nil
}

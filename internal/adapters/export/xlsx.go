package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/lautarovg/cartaviva/internal/domain"
)

const sheet = "Catalogo"

// CatalogWorkbook builds the admin XLSX export: one row per enriched product
// with display price, promotion data and stock. Untracked stock stays blank
// so it cannot be read as zero.
func CatalogWorkbook(b *domain.Business, items []domain.EnrichedProduct) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"Producto", "Descripción", "Precio", "Precio original", "Descuento %", "Stock", "Disponible"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, it := range items {
		values := []any{
			it.Name,
			it.Description,
			it.Price.InexactFloat64(),
			nil,
			nil,
			nil,
			it.Available,
		}
		if it.OriginalPrice != nil {
			values[3] = it.OriginalPrice.InexactFloat64()
		}
		if it.DiscountPercentage != nil {
			values[4] = it.DiscountPercentage.InexactFloat64()
		}
		if it.Stock != nil {
			values[5] = *it.Stock
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	title := fmt.Sprintf("Catálogo %s", b.Name)
	_ = f.SetDocProps(&excelize.DocProperties{Title: title})
	return f, nil
}

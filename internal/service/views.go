package service

import (
	"strconv"

	"github.com/mmynk/kasir/internal/catalog"
	"github.com/mmynk/kasir/internal/checkout"
	"github.com/mmynk/kasir/internal/models"
	"github.com/mmynk/kasir/internal/money"
	"github.com/mmynk/kasir/internal/till"
	"github.com/mmynk/kasir/pkg/api"
)

// presenter renders domain values for clients.
type presenter struct {
	formatter *money.Formatter
}

// format falls back to plain digits without a formatter.
func (p presenter) format(a money.Amount) string {
	if p.formatter == nil {
		return strconv.FormatInt(a.Int64(), 10)
	}
	return p.formatter.Format(a)
}

func (p presenter) product(categories []models.Category, prod models.Product) *api.Product {
	return &api.Product{
		ID:            prod.ID,
		Name:          prod.Name,
		Description:   prod.Description,
		Price:         prod.Price.Int64(),
		PriceText:     p.format(prod.Price),
		CategoryID:    prod.CategoryID,
		CategoryLabel: catalog.Label(categories, prod),
		ImageURL:      prod.ImageURL,
		Stock:         prod.Stock,
		InStock:       prod.InStock(),
		CreatedAt:     prod.CreatedAt,
		UpdatedAt:     prod.UpdatedAt,
	}
}

func toAPICategory(c models.Category) *api.Category {
	return &api.Category{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

// categoryChips puts the "all" chip first, followed by every category.
func categoryChips(counts []catalog.CategoryCount, total int) []*api.CategoryCount {
	chips := make([]*api.CategoryCount, 0, len(counts)+1)
	chips = append(chips, &api.CategoryCount{Filter: catalog.AllCategories, Name: "All", Count: total})
	for _, c := range counts {
		chips = append(chips, &api.CategoryCount{
			Filter: strconv.FormatInt(c.Category.ID, 10),
			Name:   c.Category.Name,
			Count:  c.Count,
		})
	}
	return chips
}

func (p presenter) till(s till.Snapshot) *api.Till {
	lines := make([]*api.CartLine, len(s.Items))
	for i, item := range s.Items {
		lines[i] = &api.CartLine{
			ProductID:     item.ID,
			Name:          item.Name,
			UnitPrice:     item.UnitPrice.Int64(),
			UnitPriceText: p.format(item.UnitPrice),
			Quantity:      item.Quantity,
			LineTotal:     item.LineTotal().Int64(),
			LineTotalText: p.format(item.LineTotal()),
			Category:      item.Category,
		}
	}
	return &api.Till{
		ID:           s.ID,
		CashierID:    s.CashierID,
		OpenedAt:     s.OpenedAt.Unix(),
		Lines:        lines,
		Subtotal:     s.Subtotal.Int64(),
		SubtotalText: p.format(s.Subtotal),
		ItemCount:    s.ItemCount,
		Checkout:     p.checkout(s.Checkout),
	}
}

func (p presenter) checkout(v checkout.View) *api.CheckoutView {
	out := &api.CheckoutView{
		SessionID:      v.SessionID,
		State:          string(v.State),
		Method:         string(v.Method),
		TenderText:     v.RawTender,
		Tendered:       v.Tendered.Int64(),
		Subtotal:       v.Subtotal.Int64(),
		SubtotalText:   p.format(v.Subtotal),
		Tax:            v.Tax.Int64(),
		TaxText:        p.format(v.Tax),
		GrandTotal:     v.GrandTotal.Int64(),
		GrandTotalText: p.format(v.GrandTotal),
		Change:         v.Change.Int64(),
		ChangeText:     p.format(v.Change),
		Shortfall:      v.Shortfall,
		OutOfRange:     v.OutOfRange,
		CanSubmit:      v.CanSubmit,
		Processing:     v.Processing,
		Settled:        v.Settled,
		Failure:        v.Failure,
	}
	if r := v.Receipt; r != nil {
		out.Receipt = &api.Receipt{
			Method:     string(r.Method),
			Subtotal:   r.Subtotal.Int64(),
			Tax:        r.Tax.Int64(),
			GrandTotal: r.GrandTotal.Int64(),
			Tendered:   r.Tendered.Int64(),
			Change:     r.Change.Int64(),
			SettledAt:  r.SettledAt.Unix(),
		}
	}
	return out
}

package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Nenad034/isplate-backend/internal/core/domain"
	"github.com/Nenad034/isplate-backend/internal/core/ports"
)

// SnapshotBuilder renders the aggregated-statistics text the assistant
// answers over. The labels are load-bearing: the rule engine extracts figures
// by matching them literally.
type SnapshotBuilder struct {
	payments  ports.RecordRepository[*domain.Payment]
	suppliers ports.RecordRepository[*domain.Supplier]
	hotels    ports.RecordRepository[*domain.Hotel]
	cache     ports.SnapshotCache // optional
}

func NewSnapshotBuilder(
	payments ports.RecordRepository[*domain.Payment],
	suppliers ports.RecordRepository[*domain.Supplier],
	hotels ports.RecordRepository[*domain.Hotel],
	cache ports.SnapshotCache,
) *SnapshotBuilder {
	return &SnapshotBuilder{payments: payments, suppliers: suppliers, hotels: hotels, cache: cache}
}

// Snapshot aggregates active records into the fixed-label text form. The
// rendered text is cached briefly so chat bursts do not re-scan storage.
func (b *SnapshotBuilder) Snapshot(ctx context.Context) (string, error) {
	if b.cache != nil {
		if cached, ok := b.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	payments, err := b.payments.List(ctx, false)
	if err != nil {
		return "", fmt.Errorf("snapshot payments: %w", err)
	}
	suppliers, err := b.suppliers.List(ctx, false)
	if err != nil {
		return "", fmt.Errorf("snapshot suppliers: %w", err)
	}
	hotels, err := b.hotels.List(ctx, false)
	if err != nil {
		return "", fmt.Errorf("snapshot hotels: %w", err)
	}

	var pending, completed int
	total := decimal.Zero
	byCurrency := map[string]decimal.Decimal{"EUR": decimal.Zero, "USD": decimal.Zero, "RSD": decimal.Zero}
	for _, p := range payments {
		switch p.Status {
		case domain.PaymentPending:
			pending++
		case domain.PaymentCompleted:
			completed++
		}
		amount := decimal.NewFromFloat(p.Amount)
		total = total.Add(amount)
		if sum, ok := byCurrency[p.Currency]; ok {
			byCurrency[p.Currency] = sum.Add(amount)
		}
	}

	var sb strings.Builder
	sb.WriteString("ISPLATE:\n")
	fmt.Fprintf(&sb, "- Ukupno isplata: %d\n", len(payments))
	fmt.Fprintf(&sb, "- Na čekanju: %d\n", pending)
	fmt.Fprintf(&sb, "- Isplaćeno: %d\n", completed)
	fmt.Fprintf(&sb, "- Ukupan iznos: %s\n", FormatAmount(total, "EUR"))
	fmt.Fprintf(&sb, "- EUR: %s\n", FormatAmount(byCurrency["EUR"], "EUR"))
	fmt.Fprintf(&sb, "- USD: %s\n", FormatAmount(byCurrency["USD"], "USD"))
	fmt.Fprintf(&sb, "- RSD: %s\n", FormatAmount(byCurrency["RSD"], "RSD"))

	sb.WriteString("\nDOBAVLJAČI:\n")
	fmt.Fprintf(&sb, "- Broj dobavljača: %d\n", len(suppliers))
	fmt.Fprintf(&sb, "- Top 3: %s\n", topNames(supplierNames(suppliers)))

	sb.WriteString("\nHOTELI:\n")
	fmt.Fprintf(&sb, "- Broj hotela: %d\n", len(hotels))
	fmt.Fprintf(&sb, "- Top 3: %s\n", topNames(hotelNames(hotels)))

	snapshot := sb.String()
	if b.cache != nil {
		b.cache.Set(ctx, snapshot)
	}
	return snapshot, nil
}

func supplierNames(suppliers []*domain.Supplier) []string {
	names := make([]string, 0, len(suppliers))
	for _, s := range suppliers {
		names = append(names, s.Name)
	}
	return names
}

func hotelNames(hotels []*domain.Hotel) []string {
	names := make([]string, 0, len(hotels))
	for _, h := range hotels {
		names = append(names, h.Name)
	}
	return names
}

func topNames(names []string) string {
	if len(names) == 0 {
		return "nema podataka"
	}
	if len(names) > 3 {
		names = names[:3]
	}
	return strings.Join(names, ", ")
}

var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"RSD": "RSD",
}

// FormatAmount renders a monetary value the way the dashboard does: two
// decimals, dot thousands separator, comma decimal separator, trailing
// currency symbol ("1.234,56 €").
func FormatAmount(amount decimal.Decimal, currency string) string {
	fixed := amount.StringFixed(2) // e.g. "-1234.56"

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	whole, frac := parts[0], parts[1]

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%s,%s %s", sign, grouped.String(), frac, symbol)
}

// Package assistant implements the query assistant over a textual snapshot
// of aggregated statistics: a local rule engine that always produces an
// answer, and the snapshot builder it reads from.
package assistant

import (
	"fmt"
	"regexp"
	"strings"
)

// Fixed-label extraction patterns. The snapshot format is the contract here:
// a missing line yields the defined default, never an error.
var (
	reTotalPayments = regexp.MustCompile(`Ukupno isplata: (\d+)`)
	rePending       = regexp.MustCompile(`Na čekanju: (\d+)`)
	reCompleted     = regexp.MustCompile(`Isplaćeno: (\d+)`)
	reTotalAmount   = regexp.MustCompile(`Ukupan iznos: ([^\n]+)`)
	reSuppliers     = regexp.MustCompile(`Broj dobavljača: (\d+)`)
	reHotels        = regexp.MustCompile(`Broj hotela: (\d+)`)
	reTopSuppliers  = regexp.MustCompile(`(?s)DOBAVLJAČI:.*?Top 3: ([^\n]+)`)
	reTopHotels     = regexp.MustCompile(`(?s)HOTELI:.*?Top 3: ([^\n]+)`)
)

// figures holds everything the rule engine can say about the dataset.
type figures struct {
	totalPayments string
	pending       string
	completed     string
	totalAmount   string
	suppliers     string
	hotels        string
	topSuppliers  string
	topHotels     string
}

func extract(re *regexp.Regexp, snapshot, fallback string) string {
	if m := re.FindStringSubmatch(snapshot); m != nil {
		return m[1]
	}
	return fallback
}

func parseFigures(snapshot string) figures {
	return figures{
		totalPayments: extract(reTotalPayments, snapshot, "0"),
		pending:       extract(rePending, snapshot, "0"),
		completed:     extract(reCompleted, snapshot, "0"),
		totalAmount:   extract(reTotalAmount, snapshot, "0,00 €"),
		suppliers:     extract(reSuppliers, snapshot, "0"),
		hotels:        extract(reHotels, snapshot, "0"),
		topSuppliers:  extract(reTopSuppliers, snapshot, "nema podataka"),
		topHotels:     extract(reTopHotels, snapshot, "nema podataka"),
	}
}

func containsAny(q string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// LocalAnswer resolves a free-text question against the snapshot using an
// ordered set of keyword rules; the first matching rule wins. The order is a
// deliberate tie-break — specific intents before the catch-all overview — and
// must not be rearranged: a query matching several keyword sets resolves to
// the earliest rule.
func LocalAnswer(query, snapshot string) string {
	q := strings.ToLower(query)
	f := parseFigures(snapshot)

	switch {
	case strings.Contains(q, "isplat") && containsAny(q, "koliko", "ukupno", "broj"):
		return fmt.Sprintf("📊 Ukupno imate **%s** isplata u sistemu.\n\n**Status:**\n• Na čekanju: %s\n• Isplaćeno: %s\n\n💰 **Ukupan iznos:** %s",
			f.totalPayments, f.pending, f.completed, f.totalAmount)

	case containsAny(q, "dobavljač", "dobavljac", "supplier"):
		return fmt.Sprintf("👥 Imate **%s** dobavljača u bazi.\n\n📋 **Top 3:** %s", f.suppliers, f.topSuppliers)

	case strings.Contains(q, "hotel"):
		return fmt.Sprintf("🏨 Imate **%s** hotela u bazi.\n\n📋 **Top 3:** %s", f.hotels, f.topHotels)

	case containsAny(q, "pending", "čekanj", "cekanj"):
		return fmt.Sprintf("⏳ Trenutno imate **%s** isplata na čekanju.", f.pending)

	case containsAny(q, "iznos", "suma", "total"):
		return fmt.Sprintf("💰 Ukupan iznos svih isplata: **%s**", f.totalAmount)

	case containsAny(q, "zdravo", "bok", "cao", "pozdrav", "hej"):
		return "Zdravo! 👋 Ja sam AI asistent za Isplate.\n\nMogu vam pomoći sa informacijama o:\n• 📊 Isplatama\n• 👥 Dobavljačima\n• 🏨 Hotelima\n\nŠta vas zanima?"

	case containsAny(q, "pomoc", "pomoć", "help", "šta možeš", "sta mozes"):
		return "Mogu vam pomoći sa sledećim:\n\n📊 **Isplate**\n• \"Koliko imamo isplata?\"\n• \"Koliko je na čekanju?\"\n• \"Ukupan iznos?\"\n\n👥 **Dobavljači**\n• \"Koliko imamo dobavljača?\"\n\n🏨 **Hoteli**\n• \"Koliko imamo hotela?\""

	default:
		return fmt.Sprintf("📈 **Pregled sistema:**\n\n📊 Isplate: **%s** (%s)\n👥 Dobavljači: **%s**\n🏨 Hoteli: **%s**\n\nPitajte me konkretnije o isplatama, dobavljačima ili hotelima!",
			f.totalPayments, f.totalAmount, f.suppliers, f.hotels)
	}
}

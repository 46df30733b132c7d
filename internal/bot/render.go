package bot

import (
	"fmt"
	"mangatrade/internal/trading"
	"mangatrade/pkg/domain"
	"strings"
	"unicode/utf8"
)

// maxMessageLength is the Discord limit for message content.
const maxMessageLength = 2000

func kindLabel(k domain.ListKind) string {
	if k == domain.Tradelist {
		return "Tradelist"
	}

	return "Wishlist"
}

// clip keeps replies within the Discord message limit.
func clip(s string) string {
	if utf8.RuneCountInString(s) <= maxMessageLength {
		return s
	}
	r := []rune(s)

	return string(r[:maxMessageLength-1]) + "…"
}

func more(n int) string {
	if n == 0 {
		return ""
	}

	return fmt.Sprintf("\n… und %d weitere.", n)
}

func bullets(items []string, limit int) string {
	shown, rest := trading.Truncate(items, limit)
	lines := make([]string, 0, len(shown))
	for _, t := range shown {
		lines = append(lines, "• "+t)
	}

	return strings.Join(lines, "\n") + more(rest)
}

func renderAdded(kind domain.ListKind, title string) string {
	icon := "📝"
	if kind == domain.Tradelist {
		icon = "📦"
	}

	return clip(fmt.Sprintf("%s `%s` wurde zu deiner **%s** hinzugefügt.", icon, title, kindLabel(kind)))
}

func renderRemoved(kind domain.ListKind, title string, removed int64) string {
	if removed == 0 {
		return clip(fmt.Sprintf("ℹ️ `%s` war nicht in deiner **%s**.", title, kindLabel(kind)))
	}

	return clip(fmt.Sprintf("🗑️ `%s` wurde aus deiner **%s** entfernt.", title, kindLabel(kind)))
}

func renderCleared(kind domain.ListKind, removed int64) string {
	return fmt.Sprintf("🧹 Deine **%s** wurde geleert (%d Einträge entfernt).", kindLabel(kind), removed)
}

func renderList(kind domain.ListKind, titles []string, limit int) string {
	if len(titles) == 0 {
		return fmt.Sprintf("📭 Deine **%s** ist leer.", kindLabel(kind))
	}

	icon := "💖"
	if kind == domain.Tradelist {
		icon = "🔁"
	}

	return clip(fmt.Sprintf("%s **Deine %s:**\n%s", icon, kindLabel(kind), bullets(titles, limit)))
}

func renderSearch(kind domain.ListKind, needle string, hits []string, limit int) string {
	if len(hits) == 0 {
		return clip(fmt.Sprintf("🔍 Keine Treffer in deiner %s für „%s“.", kindLabel(kind), needle))
	}

	return clip(fmt.Sprintf("🔍 **Treffer (%s) für „%s“:**\n%s", kindLabel(kind), needle, bullets(hits, limit)))
}

func mentions(owners []domain.OwnerID) string {
	out := make([]string, 0, len(owners))
	for _, o := range owners {
		out = append(out, "<@"+o.String()+">")
	}

	return strings.Join(out, ", ")
}

func renderMatches(m domain.Matches) string {
	switch m.Outcome {
	case domain.MatchOutcomeNoLists:
		return "ℹ️ Du hast noch keine Wishlist/Tradelist gepflegt."
	case domain.MatchOutcomeNone:
		return "😕 Keine Matches gefunden – vielleicht später nochmal versuchen."
	}

	var parts []string
	if len(m.Offers) > 0 {
		lines := make([]string, 0, len(m.Offers))
		for _, g := range m.Offers {
			lines = append(lines, fmt.Sprintf("✅ **%s** wird angeboten von: %s", g.Title, mentions(g.Owners)))
		}
		parts = append(parts, "### 🎯 Treffer für deine **Wishlist**\n"+strings.Join(lines, "\n"))
	}
	if len(m.Seekers) > 0 {
		lines := make([]string, 0, len(m.Seekers))
		for _, g := range m.Seekers {
			lines = append(lines, fmt.Sprintf("🔎 **%s** wird gesucht von: %s", g.Title, mentions(g.Owners)))
		}
		parts = append(parts, "### 🤝 Nutzer, die deine **Tradelist** suchen\n"+strings.Join(lines, "\n"))
	}

	return clip(strings.Join(parts, "\n\n"))
}

func duplicateLines(groups []domain.DuplicateGroup, limit int) string {
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("%s  (x%d)", g.Title, g.Count))
	}

	return bullets(lines, limit)
}

func renderDuplicates(d domain.Duplicates, limit int) string {
	if d.Empty() {
		return "✅ Keine Duplikate oder Konflikte gefunden."
	}

	var parts []string
	if len(d.Wishlist) > 0 {
		parts = append(parts, "📚 **Duplikate in deiner Wishlist:**\n"+duplicateLines(d.Wishlist, limit))
	}
	if len(d.Tradelist) > 0 {
		parts = append(parts, "📦 **Duplikate in deiner Tradelist:**\n"+duplicateLines(d.Tradelist, limit))
	}
	if len(d.Conflicts) > 0 {
		lines := make([]string, 0, len(d.Conflicts))
		for _, c := range d.Conflicts {
			lines = append(lines, fmt.Sprintf("Wishlist: **%s**  |  Tradelist: **%s**", c.WishlistTitle, c.TradelistTitle))
		}
		parts = append(parts, "⚠️ **Konflikte (gleiches Werk in beiden Listen):**\n"+bullets(lines, limit))
	}

	return clip(strings.Join(parts, "\n\n"))
}

func renderSynced(n int) string {
	return fmt.Sprintf("🔄 %d Commands synchronisiert.", n)
}

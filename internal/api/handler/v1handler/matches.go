package v1handler

import (
	"mangatrade/pkg/domain"
	"net/http"

	"github.com/go-faster/jx"
)

func encodeGroups(e *jx.Encoder, groups []domain.MatchGroup) {
	e.ArrStart()
	for _, g := range groups {
		e.ObjStart()
		e.FieldStart("title")
		e.Str(g.Title)
		e.FieldStart("owners")
		e.ArrStart()
		for _, o := range g.Owners {
			e.Str(o.String())
		}
		e.ArrEnd()
		e.ObjEnd()
	}
	e.ArrEnd()
}

// GetMatches returns the owner's trade opportunities. status distinguishes
// an owner without lists (no_lists) from one without overlap (no_matches).
func (h Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res, err := h.deps.Trading.FindMatches(ctx, GetOwnerIDFromContext(ctx))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("status")
		e.Str(res.Outcome.String())
		e.FieldStart("offers")
		encodeGroups(e, res.Offers)
		e.FieldStart("seekers")
		encodeGroups(e, res.Seekers)
		e.ObjEnd()
	})
}

func encodeDuplicateGroups(e *jx.Encoder, groups []domain.DuplicateGroup) {
	e.ArrStart()
	for _, g := range groups {
		e.ObjStart()
		e.FieldStart("title")
		e.Str(g.Title)
		e.FieldStart("key")
		e.Str(g.Key)
		e.FieldStart("count")
		e.Int64(g.Count)
		e.ObjEnd()
	}
	e.ArrEnd()
}

// GetDuplicates returns the owner's repeated keys and wishlist/tradelist conflicts.
func (h Handler) GetDuplicates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res, err := h.deps.Trading.FindDuplicates(ctx, GetOwnerIDFromContext(ctx))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("wishlist")
		encodeDuplicateGroups(e, res.Wishlist)
		e.FieldStart("tradelist")
		encodeDuplicateGroups(e, res.Tradelist)
		e.FieldStart("conflicts")
		e.ArrStart()
		for _, c := range res.Conflicts {
			e.ObjStart()
			e.FieldStart("wishlistTitle")
			e.Str(c.WishlistTitle)
			e.FieldStart("tradelistTitle")
			e.Str(c.TradelistTitle)
			e.FieldStart("key")
			e.Str(c.Key)
			e.ObjEnd()
		}
		e.ArrEnd()
		e.ObjEnd()
	})
}

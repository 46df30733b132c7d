package v1handler

import (
	"mangatrade/internal/trading"
	"mangatrade/pkg/domain"
	"mangatrade/pkg/serrors"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// maxBodySize bounds add-title request bodies.
const maxBodySize = 16 << 10

// pathKind parses the {kind} path value.
func pathKind(r *http.Request) (domain.ListKind, error) {
	kind, err := domain.ParseListKind(r.PathValue("kind"))
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "invalid list kind")
	}

	return kind, nil
}

// ListTitles returns the owner's titles, or the titles matching ?q= when
// present, truncated to the display limit.
func (h Handler) ListTitles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	kind, err := pathKind(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var titles []string
	q := r.URL.Query()
	if q.Has("q") {
		titles, err = h.deps.Trading.Search(ctx, GetOwnerIDFromContext(ctx), kind, q.Get("q"))
	} else {
		titles, err = h.deps.Trading.List(ctx, GetOwnerIDFromContext(ctx), kind)
	}
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	shown, more := trading.Truncate(titles, h.deps.DisplayLimit)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("items")
		e.ArrStart()
		for _, t := range shown {
			e.Str(t)
		}
		e.ArrEnd()
		e.FieldStart("total")
		e.Int(len(titles))
		e.FieldStart("more")
		e.Int(more)
		e.ObjEnd()
	})
}

// decodeTitle reads {"title": "..."} from the request body.
func decodeTitle(w http.ResponseWriter, r *http.Request) (string, error) {
	var (
		title string
		found bool
	)
	d := jx.Decode(http.MaxBytesReader(w, r.Body, maxBodySize), 512) //nolint: mnd
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "title":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "title")
			}
			title, found = v, true

			return nil
		default:
			return d.Skip()
		}
	}); err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, errors.Wrap(err, "decode body"), "invalid request body")
	}
	if !found {
		return "", serrors.With(serrors.ErrBadRequest, "title is required")
	}

	return title, nil
}

// AddTitle stores a title. Adding a title whose key is already listed
// succeeds without changing the stored spelling.
func (h Handler) AddTitle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	kind, err := pathKind(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	title, err := decodeTitle(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Trading.Add(ctx, GetOwnerIDFromContext(ctx), kind, title); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("title")
		e.Str(title)
		e.FieldStart("key")
		e.Str(trading.Normalize(title))
		e.ObjEnd()
	})
}

func writeRemoved(w http.ResponseWriter, n int64) {
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("removed")
		e.Int64(n)
		e.ObjEnd()
	})
}

// RemoveTitle deletes the entry whose key equals the key of ?title=.
func (h Handler) RemoveTitle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	kind, err := pathKind(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	q := r.URL.Query()
	if !q.Has("title") {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "title is required"))

		return
	}

	n, err := h.deps.Trading.Remove(ctx, GetOwnerIDFromContext(ctx), kind, q.Get("title"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeRemoved(w, n)
}

// ClearList deletes every entry of the list.
func (h Handler) ClearList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	kind, err := pathKind(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	n, err := h.deps.Trading.Clear(ctx, GetOwnerIDFromContext(ctx), kind)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeRemoved(w, n)
}

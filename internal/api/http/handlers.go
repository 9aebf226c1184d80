package httpapi

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/render"
	"github.com/oqrlabs/revenue-manager/internal/apisrv/dashboard"
	"github.com/oqrlabs/revenue-manager/internal/middleware"
)

func (s *Server) getOverview(ds *dashboard.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		req := dashboard.OverviewRequest{
			Start:     q.Get("start"),
			End:       q.Get("end"),
			Brands:    q["brands"],
			Platforms: q["platforms"],
			Shops:     q["shops"],
			Statuses:  q["statuses"],
		}

		resp, err := ds.Overview(r.Context(), req)
		if err != nil {
			// only malformed input reaches here; report failures degrade
			// to empty data inside the store
			slog.Default().WarnContext(r.Context(), "rejected overview request",
				slog.String("request_id", middleware.FromContext(r.Context())),
				slog.String("err", err.Error()),
			)
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}
		render.JSON(w, r, resp)
	}
}

func (s *Server) getFilterOptions(ds *dashboard.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, ds.FilterOptions(r.Context()))
	}
}

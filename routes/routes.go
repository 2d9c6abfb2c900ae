package routes

import (
	"net/http"

	"tripforge/auth"
	"tripforge/dashboard"
	"tripforge/editor"
	"tripforge/extract"
	"tripforge/filedrop"
	"tripforge/keywords"
	"tripforge/livefeed"
	"tripforge/middleware"
	"tripforge/preview"
	"tripforge/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/daypic/*filepath", http.Dir("static/daypic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
}

func AddItineraryRoutes(router *httprouter.Router, h *dashboard.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/itineraries", rl.Limit(middleware.Authenticate(h.GetItineraries)))
	router.GET("/api/itineraries/:id", middleware.Authenticate(h.GetItinerary))
	router.DELETE("/api/itineraries/:id", middleware.Authenticate(h.DeleteItinerary))
	router.PATCH("/api/itineraries/:id/status", middleware.Authenticate(h.UpdateStatus))
	router.POST("/api/itineraries/:id/copy", middleware.Authenticate(h.CopyItinerary))
}

func AddEditorRoutes(router *httprouter.Router, h *editor.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/editor/sessions", rl.Limit(middleware.Authenticate(h.OpenSession)))
	router.GET("/api/editor/sessions/:id", middleware.Authenticate(h.GetSession))
	router.PATCH("/api/editor/sessions/:id", middleware.Authenticate(h.PatchSession))
	router.POST("/api/editor/sessions/:id/navigate", middleware.Authenticate(h.Navigate))
	router.POST("/api/editor/sessions/:id/save", middleware.Authenticate(h.SaveSession))
}

func AddTemplateRoutes(router *httprouter.Router, h *keywords.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/templates", middleware.Authenticate(h.GetTemplates))
	router.POST("/api/templates", rl.Limit(middleware.Authenticate(h.SaveTemplate)))
	router.DELETE("/api/templates/:id", middleware.Authenticate(h.DeleteTemplate))
	router.POST("/api/templates/resolve", middleware.Authenticate(h.ResolveDay))
}

func AddPreviewRoutes(router *httprouter.Router, h *preview.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/itineraries/:id/preview", middleware.Authenticate(h.GetPreview))
	router.GET("/api/itineraries/:id/export", rl.Limit(middleware.Authenticate(h.ExportPDF)))
}

func AddExtractRoutes(router *httprouter.Router, h *extract.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/extract", rl.Limit(middleware.Authenticate(h.ExtractDocument)))
}

func AddImageRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/images/day", rl.Limit(middleware.Authenticate(filedrop.UploadDayImages)))
}

func AddLiveFeedRoute(router *httprouter.Router, f *livefeed.Feed) {
	router.GET("/ws/itineraries", middleware.Authenticate(f.ServeWS))
}

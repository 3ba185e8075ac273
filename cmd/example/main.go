package main

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/goliatone/go-colorbox"
	"github.com/goliatone/go-colorbox/internal/formatter"
)

type serverFlags struct {
	addr      string
	settings  string
	db        string
	cache     bool
	front     string
	logLevel  string
	logFormat string
	locales   []string
}

func parseFlags() serverFlags {
	f := serverFlags{}
	flag.StringVarP(&f.addr, "addr", "a", ":8080", "listen address")
	flag.StringVarP(&f.settings, "settings", "s", "", "colorbox settings file (yaml or json)")
	flag.StringVar(&f.db, "db", "", "sqlite DSN for display settings (memory when empty)")
	flag.BoolVar(&f.cache, "cache", false, "cache display lookups (requires --db)")
	flag.StringVar(&f.front, "front", "node/1", "internal path served as the front page")
	flag.StringVar(&f.logLevel, "log-level", "info", "log level")
	flag.StringVar(&f.logFormat, "log-format", "console", "go-logger format: json, console or pretty")
	flag.StringSliceVar(&f.locales, "locales", []string{"en", "sv", "de"}, "supported locales, default first")
	flag.Parse()
	return f
}

func (f serverFlags) config() colorbox.Config {
	cfg := colorbox.DefaultConfig()
	cfg.Settings.File = f.settings
	if len(f.locales) > 0 {
		cfg.DefaultLocale = f.locales[0]
		cfg.Locales = f.locales
	}
	if f.db != "" {
		cfg.Features.Persistence = true
		cfg.Storage.Driver = "sqlite"
		cfg.Storage.DSN = f.db
		cfg.Cache.Enabled = f.cache
	}
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = f.logLevel
	cfg.Logging.Format = f.logFormat
	return cfg
}

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html>
<head>
<title>{{.Title}}</title>
{{.Head}}</head>
<body>
<h1>{{.Title}}</h1>
{{.Field}}
<ul>{{range .Summary}}<li>{{.}}</li>{{end}}</ul>
</body>
</html>
`))

type page struct {
	Title   string
	Head    template.HTML
	Field   template.HTML
	Summary []string
}

var (
	demoField = colorbox.FieldDefinition{Name: "field_image", Type: "image", Label: "Images", Bundle: "article"}
	demoKey   = colorbox.DisplayKey{EntityType: "node", Bundle: "article", Field: "field_image", ViewMode: "full"}
	demoItems = []colorbox.ImageItem{
		{URI: "public://harbour.jpg", Alt: "Harbour", Title: "Harbour at dawn", Width: 1600, Height: 1067},
		{URI: "public://market.jpg", Alt: "Market", Title: "Saturday market", Width: 1600, Height: 1067},
		{URI: "public://ferry.jpg", Alt: "Ferry", Title: "", Width: 1600, Height: 1200},
	}
)

func seedDisplay(ctx context.Context, m *colorbox.Module) error {
	if _, err := m.Display(ctx, demoKey); err == nil {
		return nil
	}
	settings := formatter.DefaultSettings()
	settings.NodeStyle = "thumbnail"
	settings.ImageStyle = "large"
	return m.SaveDisplay(ctx, colorbox.SaveDisplayCommand{
		EntityType: demoKey.EntityType,
		Bundle:     demoKey.Bundle,
		Field:      demoKey.Field,
		ViewMode:   demoKey.ViewMode,
		Settings:   settings,
	})
}

func pageHandler(m *colorbox.Module) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := strings.TrimPrefix(strings.Trim(r.URL.Path, "/"), "node/")
		if id == "" {
			id = "1"
		}
		entity := colorbox.BasicEntity{Type: "node", ID: id, Title: "Article " + id}

		field, err := m.RenderHTML(ctx, entity, "en", demoField, demoKey.ViewMode, demoItems)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		locale := "en"
		if req, ok := colorbox.RequestFromContext(ctx); ok && req.Locale != "" {
			locale = req.Locale
		}
		snapshot, _ := colorbox.AssetsFromContext(ctx)
		head, err := m.RenderHead(snapshot, "/")
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = pageTemplate.Execute(w, page{
			Title:   entity.Title,
			Head:    head,
			Field:   field,
			Summary: m.SettingsSummary(ctx, demoKey, locale),
		})
	}
}

func main() {
	flags := parseFlags()

	module, err := colorbox.New(flags.config())
	if err != nil {
		log.Fatalf("colorbox: %v", err)
	}
	defer module.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := seedDisplay(ctx, module); err != nil {
		log.Fatalf("seed display: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", pageHandler(module))

	srv := &http.Server{
		Addr:              flags.addr,
		Handler:           module.Middleware(colorbox.WithFrontPath(flags.front))(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("colorbox example listening on %s", flags.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("serve: %v", err)
	}
}

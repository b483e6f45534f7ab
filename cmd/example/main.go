package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	cmseditor "github.com/goliatone/go-cms-editor"
	"github.com/goliatone/go-cms-editor/internal/essences"
)

func main() {
	var (
		definitions = flag.String("definitions", "internal/elements/testdata/elements.yml", "Path to the element definitions file")
		seedPath    = flag.String("seed", "internal/seed/testdata/site.yml", "YAML fixture seeded on start (empty to skip)")
		dsn         = flag.String("dsn", "", "sqlite DSN; empty keeps everything in memory")
		addr        = flag.String("addr", "", "Serve the admin API on this address instead of printing fragments")
		sessionKey  = flag.String("session-key", "", "Session authentication key (32+ bytes), required with -addr")
		secret      = flag.String("thumbnail-secret", "example-thumbnail-secret", "Key signing thumbnail URLs")
		logLevel    = flag.String("log-level", "info", "Log level for the go-logger provider")
	)
	flag.Parse()

	cfg := cmseditor.DefaultConfig()
	cfg.Editor.DefinitionsPath = *definitions
	cfg.Features.Logger = true
	cfg.Logging.Level = *logLevel
	if *dsn != "" {
		cfg.Storage.Provider = "bun"
		cfg.Storage.Driver = "sqlite3"
		cfg.Storage.DSN = *dsn
		cfg.Cache.Enabled = true
	}
	if *addr != "" {
		cfg.Features.AdminHTTP = true
		cfg.Session.Keys = []string{*sessionKey}
		cfg.Thumbnails.Secret = *secret
	}

	module, err := cmseditor.New(cfg)
	if err != nil {
		log.Fatalf("editor: %v", err)
	}
	defer module.Close()

	ctx := context.Background()
	if *seedPath != "" {
		result, err := module.Seed(ctx, *seedPath)
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
		fmt.Printf("seeded languages=%d pictures=%d pages=%d elements=%d\n",
			result.Languages, result.Pictures, result.Pages, result.Elements)
	}

	if *addr != "" {
		if err := serve(module, *addr); err != nil {
			log.Fatalf("serve: %v", err)
		}
		return
	}
	if err := printFragments(ctx, module); err != nil {
		log.Fatalf("render: %v", err)
	}
}

func serve(module *cmseditor.Module, addr string) error {
	handler, err := module.AdminHandler()
	if err != nil {
		return err
	}
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdown)
	}()

	fmt.Printf("admin api listening on %s\n", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// printFragments renders every editor of every element on the default
// language's pages, followed by the page select.
func printFragments(ctx context.Context, module *cmseditor.Module) error {
	language, err := module.Languages().Default(ctx)
	if err != nil {
		return err
	}
	tree, err := module.Pages().ListByLanguage(ctx, language.ID, cmseditor.PageListOptions{})
	if err != nil {
		return err
	}

	for _, page := range tree {
		list, err := module.Elements().ListByPage(ctx, page.ID)
		if err != nil {
			return err
		}
		for _, element := range list {
			fmt.Printf("== %s / %s\n", page.Name, element.Name)
			for _, content := range element.Contents {
				markup, err := module.RenderEssenceEditor(ctx, content, cmseditor.EditorOptions{})
				if err != nil {
					return err
				}
				fmt.Println(markup)
				if content.Kind != essences.KindPicture {
					continue
				}
				thumbnail, err := module.EssencePictureThumbnail(ctx, content, cmseditor.ThumbnailOptions{})
				if err != nil {
					return err
				}
				fmt.Printf("thumbnail (dialog %s): %s\n", module.EditPictureDialogSize(content), thumbnail)
			}
		}
	}

	options, err := module.PagesForSelect(ctx, nil, cmseditor.SelectOptions{})
	if err != nil {
		return err
	}
	fmt.Println(strings.TrimSpace(string(options)))
	return nil
}

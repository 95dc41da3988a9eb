package main

import (
	"flag"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"aimax/internal/config"
	"aimax/internal/server/game"
	httpserver "aimax/internal/server/http"
	"aimax/internal/store"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 没有图形界面时打不开也无所谓
}

func main() {
	cfgPath := flag.String("config", "", "JSON config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	webDir := flag.String("web", "", "directory with index.html / js / svg (overrides config)")
	dataDir := flag.String("data", "", "badger directory for saved games (overrides config)")
	depth := flag.Int("depth", 0, "fixed search depth, 0 = dynamic")
	verbose := flag.Bool("v", false, "log engine thinking")
	open := flag.Bool("open", true, "open the browser after start")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *webDir != "" {
		cfg.WebDir = *webDir
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *depth > 0 {
		cfg.Search.FixedDepth = *depth
	}
	if *verbose {
		cfg.Search.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	var st game.Store
	if cfg.DataDir != "" {
		db, err := store.Open(cfg.DataDir)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		defer db.Close()
		st = db
	}

	mgr := game.NewManager(st, cfg.Search.Engine())
	n, err := mgr.Restore()
	if err != nil {
		log.Fatalf("restore games: %v", err)
	}
	if n > 0 {
		log.Printf("restored %d games from %s", n, cfg.DataDir)
	}

	h := httpserver.NewHandler(mgr, httpserver.NewHub())
	router := httpserver.NewRouter(h, httpserver.StaticDirs{Desktop: cfg.WebDir, Mobile: cfg.MobileDir})

	log.Printf("listening on %s, serving static from %s", cfg.Addr, cfg.WebDir)

	if *open {
		// 延迟一下再开浏览器，等服务起来
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + cfg.Addr)
		}()
	}

	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatal(err)
	}
}

package mobile

import (
	"log"
	"net/http"

	"aimax/internal/config"
	"aimax/internal/server/game"
	httpserver "aimax/internal/server/http"
	"aimax/internal/store"
)

// StartServer 启动本地 HTTP 服务，给 gomobile 绑定用。
// webDir: 解压出来的前端资源目录
// dataDir: 保存对局的目录，空字符串表示不保存
// port: 监听端口，例如 "2888"
func StartServer(webDir string, dataDir string, port string) {
	cfg := config.Default()

	var st game.Store
	if dataDir != "" {
		db, err := store.Open(dataDir)
		if err != nil {
			log.Printf("open store: %v", err)
		} else {
			st = db
		}
	}

	mgr := game.NewManager(st, cfg.Search.Engine())
	if _, err := mgr.Restore(); err != nil {
		log.Printf("restore games: %v", err)
	}
	h := httpserver.NewHandler(mgr, httpserver.NewHub())
	router := httpserver.NewRouter(h, httpserver.StaticDirs{Desktop: webDir, Mobile: webDir})

	// 放到后台，不阻塞 Android UI 线程
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, router); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}

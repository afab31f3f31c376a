package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"varchess/internal/server/game"
	httpserver "varchess/internal/server/http"
	"varchess/internal/varchess"
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

	_ = cmd.Start() // 无图形界面时会失败，忽略
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

// sessionFactory 返回每局新棋的构造函数；setupPath 为空时用标准开局
func sessionFactory(setupPath string, anyDest bool) (func() *varchess.Session, error) {
	if setupPath == "" {
		return func() *varchess.Session {
			s := varchess.NewStandardSession()
			s.AnyDestination = anyDest
			return s
		}, nil
	}
	raw, err := os.ReadFile(setupPath)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(string(raw))
	if _, err := varchess.DecodeSession(text); err != nil {
		return nil, err
	}
	return func() *varchess.Session {
		s, err := varchess.DecodeSession(text)
		if err != nil {
			// 启动时已校验过
			panic(err)
		}
		s.AnyDestination = anyDest
		return s
	}, nil
}

func main() {
	addr := flag.String("addr", getenv("VARCHESS_ADDR", ":2888"), "listen address")
	webDir := flag.String("web", getenv("VARCHESS_WEB", "./web"), "directory with index.html / js / img")
	setupPath := flag.String("setup", getenv("VARCHESS_SETUP", ""), "file holding an encoded starting position")
	anyDest := flag.Bool("debug-moves", getenb("VARCHESS_DEBUG_MOVES", false), "every square, occupied or not, is a legal destination")
	browser := flag.Bool("open", true, "open the default browser")
	flag.Parse()

	newSession, err := sessionFactory(*setupPath, *anyDest)
	if err != nil {
		log.Fatalf("load setup %q: %v", *setupPath, err)
	}
	if *anyDest {
		log.Println("debug: any-destination moves enabled")
	}

	srv := httpserver.NewServer(game.NewManager(newSession), *webDir)
	log.Printf("serving static from %s", *webDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Listen(*addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if *browser {
		// 延迟打开，等监听就绪
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	log.Println("bye")
}

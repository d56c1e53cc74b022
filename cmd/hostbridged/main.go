// hostbridged serves an in-process devhost over the WebSocket bridge so
// out-of-process SDK clients can reach a host runtime. Pairing: the
// daemon prints a signed connect URL (and a QR code of it) at startup.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"

	"github.com/nanoapp/hostkit/devhost"
	"github.com/nanoapp/hostkit/internal/config"
	"github.com/nanoapp/hostkit/internal/pairing"
	"github.com/nanoapp/hostkit/internal/router"
	"github.com/nanoapp/hostkit/wsbridge"
)

func main() {
	slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	cfg, err := config.Load()
	if err != nil {
		slogger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		slogger.Error("failed to create data directory", "err", err)
		os.Exit(1)
	}

	host, err := devhost.New(devhost.Options{
		DataDir: cfg.DataDir,
		Logger:  slogger,
	})
	if err != nil {
		slogger.Error("failed to start devhost", "err", err)
		os.Exit(1)
	}
	defer host.Close()

	issuer := pairing.NewIssuer([]byte(cfg.PairingSecret))

	hostname, _ := os.Hostname()
	token, err := issuer.Token(hostname)
	if err != nil {
		slogger.Error("failed to mint pairing token", "err", err)
		os.Exit(1)
	}

	bridge := wsbridge.NewServer(host, slogger)
	mux := router.New(bridge, issuer, slogger)

	listener, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Fatal(err)
	}

	url := fmt.Sprintf(
		"ws://%s/bridge?token=%s",
		listener.Addr().String(),
		token,
	)
	slogger.Info("bridge listening", "url", url)

	if qr, err := pairing.ConnectQR(url); err == nil {
		fmt.Println(qr)
	} else {
		slogger.Warn("could not render pairing QR", "err", err)
	}

	if err := http.Serve(listener, mux); err != nil {
		log.Fatal(err)
	}
}

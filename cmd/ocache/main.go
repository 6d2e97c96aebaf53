// Command ocache runs a single peer of the fleet: it builds the
// consistent-hash ring over the configured topology, wires a Registry
// of groups backed by a demo in-memory loader, and serves the peer
// HTTP surface from spec.md §6 until interrupted.
package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/ocache/ocache"
	"github.com/ocache/ocache/internal/config"
	"github.com/ocache/ocache/internal/localstore"
)

var demoKeys = []string{"mxy", "oldust", "rust", "c++"}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		logrus.Fatalf("ocache: %v", err)
	}

	log := logrus.WithField("peer", cfg.Index)
	log.Info("ocache starting")

	store := localstore.New()
	groupSpecs := make([]ocache.GroupSpec, 0, len(cfg.Groups))
	for _, g := range cfg.Groups {
		groupSpecs = append(groupSpecs, ocache.GroupSpec{Name: g.Name, MaxBytes: g.MaxBytes})
		for _, key := range demoKeys {
			value, err := localstore.RandomString(8, 32)
			if err != nil {
				logrus.Fatalf("ocache: seeding demo data: %v", err)
			}
			store.Seed(g.Name, key, value)
		}
	}

	registry := ocache.NewRegistry(groupSpecs, store, log)

	peers := make([]ocache.PeerEntry, 0, cfg.TotalPeers)
	for i := 0; i < cfg.TotalPeers; i++ {
		baseURL := fmt.Sprintf("http://127.0.0.1:%d", cfg.BasePort+i)
		if i == cfg.Index {
			peers = append(peers, ocache.PeerEntry{BaseURL: baseURL, Client: nil})
			continue
		}
		peers = append(peers, ocache.PeerEntry{
			BaseURL: baseURL,
			Client:  ocache.NewHTTPPeerClient(baseURL, nil),
		})
	}

	ring := ocache.NewPickerRing(nil, cfg.Replicas, peers)
	registry.RegisterPeerForAll(ring)

	addr := fmt.Sprintf(":%d", cfg.BasePort+cfg.Index)
	server := &http.Server{
		Addr:    addr,
		Handler: ocache.NewHTTPPeer(registry, log),
	}

	go func() {
		log.Infof("serving on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("ocache: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("shutting down")
	for name, stats := range registry.Stats() {
		log.WithFields(logrus.Fields{
			"group":     name,
			"bytes":     stats.Bytes,
			"items":     stats.Items,
			"gets":      stats.Gets,
			"hits":      stats.Hits,
			"evictions": stats.Evictions,
		}).Info("final cache stats")
	}
	_ = server.Close()
}

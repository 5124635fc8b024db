package server

import (
	"log"
	"time"

	"SpringRibbon/internal/sim"
)

type AppConfig struct {
	TuningConfigPath string
	Overrides        ParamOverrides
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		TuningConfigPath: "configs/tuning.json",
	}
}

func resolveParams(cfg AppConfig) sim.Params {
	params := sim.DefaultParams()
	loaded, err := loadParamsFromFile(cfg.TuningConfigPath, params)
	if err != nil {
		log.Printf("tuning config: %v (using defaults)", err)
	} else {
		params = loaded
	}
	return cfg.Overrides.apply(params)
}

func StartApp(addr string, cfg AppConfig) {
	params := resolveParams(cfg)
	hub := sim.NewHub(params)

	// Periodic teardown of rooms nobody is watching.
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			hub.CleanupEmptyRooms()
		}
	}()

	log.Printf("starting curve server on %s (stiffness %.3f, damping %.3f, %d segments)\n",
		addr, params.Stiffness, params.Damping, params.SegmentCount)
	startServer(hub, addr)
}

package main

import (
	"flag"
	"log"
	"math"
	"os"
	"strconv"

	"SpringRibbon/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded environment from .env")
	}
	defaultAddr := os.Getenv("ADDR")
	if defaultAddr == "" {
		defaultAddr = ":8080"
	}

	addr := flag.String("addr", defaultAddr, "address to listen on (e.g., 127.0.0.1:8080)")
	tuningPath := flag.String("tuning-config", "configs/tuning.json", "path to spring/sampling tuning JSON")
	stiffness := flag.Float64("stiffness", math.NaN(), "override spring stiffness")
	damping := flag.Float64("damping", math.NaN(), "override spring damping")
	tangentLength := flag.Float64("tangent-length", math.NaN(), "override tangent arrow pixel length")
	tangentCount := flag.Int("tangent-count", -1, "override tangent samples per curve")
	curveSamples := flag.Int("curve-samples", -1, "override curve samples per segment")
	segments := flag.Int("segments", -1, "override chain segment count")
	physics := flag.String("physics", "", "override physics toggle (true/false)")
	flag.Parse()

	cfg := server.DefaultAppConfig()
	cfg.TuningConfigPath = *tuningPath

	var overrides server.ParamOverrides
	if !math.IsNaN(*stiffness) {
		val := *stiffness
		overrides.Stiffness = &val
	}
	if !math.IsNaN(*damping) {
		val := *damping
		overrides.Damping = &val
	}
	if !math.IsNaN(*tangentLength) {
		val := *tangentLength
		overrides.TangentLength = &val
	}
	if *tangentCount >= 0 {
		val := *tangentCount
		overrides.TangentCount = &val
	}
	if *curveSamples >= 0 {
		val := *curveSamples
		overrides.CurveSamples = &val
	}
	if *segments >= 0 {
		val := *segments
		overrides.Segments = &val
	}
	if *physics != "" {
		val, err := strconv.ParseBool(*physics)
		if err != nil {
			log.Fatalf("-physics: %v", err)
		}
		overrides.Physics = &val
	}

	cfg.Overrides = overrides
	server.StartApp(*addr, cfg)
}

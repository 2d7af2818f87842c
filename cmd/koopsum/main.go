package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/iamNilotpal/koopman/config"
	"github.com/iamNilotpal/koopman/internal/adapters/checksum"
	"github.com/iamNilotpal/koopman/internal/core/domain"
	"github.com/iamNilotpal/koopman/pkg/logger"
)

var (
	algorithm  = pflag.StringP("algorithm", "a", "", "checksum algorithm (koopman8, koopman16, koopman32, ...)")
	seed       = pflag.Uint8P("seed", "s", 0, "seed constant; must match the verifier's")
	expect     = pflag.StringP("expect", "e", "", "verify against this checksum (hex, 0x prefix optional)")
	configPath = pflag.StringP("config", "c", "", "path to YAML config file")
)

func main() {
	pflag.Parse()

	logger := logger.New("koopsum")
	defer logger.Sync()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			logger.Errorw("load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags override the config file.
	if *algorithm != "" {
		cfg.Checksum.Algorithm = *algorithm
	}
	if pflag.CommandLine.Changed("seed") {
		cfg.Checksum.Seed = *seed
	}

	hasher, err := checksum.New(&domain.ChecksumOptions{
		Algorithm: domain.ChecksumAlgorithm(cfg.Checksum.Algorithm),
		Seed:      cfg.Checksum.Seed,
	})
	if err != nil {
		logger.Errorw("create checksum", "algorithm", cfg.Checksum.Algorithm, "error", err)
		os.Exit(1)
	}

	name, data, err := readInput(pflag.Arg(0))
	if err != nil {
		logger.Errorw("read input", "input", name, "error", err)
		os.Exit(1)
	}

	sum, err := hasher.Calculate(data)
	if err != nil {
		logger.Errorw("calculate checksum",
			"algorithm", hasher.Name(), "bytes", len(data), "error", err)
		os.Exit(1)
	}

	if *expect != "" {
		want, err := strconv.ParseUint(strings.TrimPrefix(*expect, "0x"), 16, 64)
		if err != nil {
			logger.Errorw("parse expected checksum", "expect", *expect, "error", err)
			os.Exit(1)
		}
		if sum != want {
			fmt.Fprintf(os.Stderr, "%s: FAILED (%s: got %0*x, want %0*x)\n",
				name, hasher.Name(), int(hasher.Size())*2, sum, int(hasher.Size())*2, want)
			os.Exit(1)
		}
		fmt.Printf("%s: OK\n", name)
		return
	}

	fmt.Printf("%0*x  %s\n", int(hasher.Size())*2, sum, name)
}

// readInput reads the named file, or stdin when path is empty or "-".
func readInput(path string) (string, []byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return "-", data, err
	}
	data, err := os.ReadFile(path)
	return path, data, err
}

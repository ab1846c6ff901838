package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/kopernikusauto/angles/pkg/angle"
	"github.com/kopernikusauto/angles/pkg/heading"
)

// Reads raw yaw samples (radians, whitespace separated) from stdin and prints
// each one alongside its normalized and unwrapped values.
func main() {
	configPath := flag.String("config", "", "heading tracker config (YAML)")
	flag.Parse()

	fmt.Println("---- Unwrap tests ----")

	var cfg heading.Config
	if *configPath != "" {
		var err error
		cfg, err = heading.LoadConfig(*configPath)
		if err != nil {
			fmt.Println("Failed to load config:", err)
			os.Exit(1)
		}
	}
	tracker := heading.New(cfg)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		sample, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			fmt.Println("Bad sample:", err)
			os.Exit(1)
		}
		unwrapped, err := tracker.Update(sample)
		if err != nil {
			fmt.Println("Failed to unwrap:", err)
			os.Exit(1)
		}
		fmt.Printf("%.4f %.4f %.4f\n", sample, angle.Normalize(sample-cfg.ZeroOffset), unwrapped)
	}
	if err := scanner.Err(); err != nil {
		fmt.Println("Failed to read samples:", err)
		os.Exit(1)
	}
	fmt.Printf("%d samples, %.2f turns\n", tracker.Samples(), tracker.Turns())
}

// camreplay plays recorded input traces through the camera rig without a window and prints
// the sampled trajectories.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/XJINE/scenecam/engine/camera"
	"github.com/XJINE/scenecam/engine/config"
	"github.com/XJINE/scenecam/engine/replay"
	"gopkg.in/yaml.v3"
)

var (
	configPath = flag.String("config", "", "Rig config file (.yaml, .yml or .toml)")
	workers    = flag.Int("workers", runtime.NumCPU(), "Traces played concurrently")
	output     = flag.String("output", "text", "Output: text|yaml")
	dump       = flag.String("dump-config", "", "Print the effective config as yaml|toml and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: camreplay [flags] trace...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)

	cfg := camera.DefaultConfig()
	if *configPath != "" {
		f, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[Replay] %v", err)
		}
		if cfg, err = f.Apply(cfg); err != nil {
			log.Fatalf("[Replay] %v", err)
		}
	}

	if *dump != "" {
		format, err := config.FormatFromPath("config." + *dump)
		if err != nil {
			log.Fatalf("[Replay] %v", err)
		}
		data, err := config.FromConfig(cfg).Encode(format)
		if err != nil {
			log.Fatalf("[Replay] %v", err)
		}
		os.Stdout.Write(data)
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	jobs := make([]replay.Job, 0, flag.NArg())
	for _, path := range flag.Args() {
		trace, err := replay.LoadTrace(path)
		if err != nil {
			log.Fatalf("[Replay] %v", err)
		}
		if trace.Name == "" {
			trace.Name = path
		}
		jobs = append(jobs, replay.Job{Trace: trace, Config: cfg})
	}

	failed := false
	for _, r := range replay.RunBatch(jobs, *workers) {
		if r.Err != nil {
			log.Printf("[Replay] %s: %v", jobs[r.Index].Trace.Name, r.Err)
			failed = true
			continue
		}
		if err := printResult(r.Result); err != nil {
			log.Fatalf("[Replay] %v", err)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func printResult(res *replay.Result) error {
	switch *output {
	case "yaml":
		data, err := yaml.Marshal(res)
		if err != nil {
			return err
		}
		fmt.Printf("---\n%s", data)
	case "text":
		fmt.Printf("%s: %d frames, %.3fs\n", res.Name, res.Frames, res.Duration)
		fmt.Printf("%8s %9s  %-28s %-28s\n", "frame", "time", "position", "forward")
		for _, s := range res.Samples {
			fmt.Printf("%8d %8.3fs  (%7.3f %7.3f %7.3f)  (%6.3f %6.3f %6.3f)\n",
				s.Frame, s.Time,
				s.Position[0], s.Position[1], s.Position[2],
				s.Forward[0], s.Forward[1], s.Forward[2])
		}
	default:
		return fmt.Errorf("unknown output %q", *output)
	}
	return nil
}

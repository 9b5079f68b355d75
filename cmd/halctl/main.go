// halctl inspects the audio hardware from the command line: device
// listings, per-device detail, live hotplug watching, and aggregate
// device management.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	coreaudio "github.com/shaban/coreaudio"
	"github.com/shaban/coreaudio/devices"
	"github.com/shaban/coreaudio/hal"
)

var version = "0.1.0"

// Config is the optional YAML config file. Everything has a usable
// default, the file only overrides.
type Config struct {
	Log struct {
		Level  string `yaml:"level"`  // trace..disabled, default info
		Format string `yaml:"format"` // color, text, json
	} `yaml:"log"`
}

func main() {
	var (
		configPath  = flag.String("config", "", "path to halctl.yaml")
		logLevel    = flag.String("log-level", "", "override log level")
		jsonOutput  = flag.Bool("json", false, "print machine-readable JSON")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("halctl %s\n", version)
		return
	}

	cfg := loadConfig(*configPath)
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	log := newLogger(cfg)

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "list"
	}

	var err error
	switch cmd {
	case "list":
		err = cmdList(*jsonOutput)
	case "midi":
		err = cmdMIDI(*jsonOutput)
	case "info":
		err = cmdInfo(flag.Arg(1), *jsonOutput)
	case "watch":
		err = cmdWatch(log)
	case "aggregate":
		err = cmdAggregate(flag.Args()[1:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", cmd).Send()
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: halctl [flags] <command>

commands:
  list                      list audio devices (default)
  midi                      list MIDI devices
  info <uid>                show one device in detail
  watch                     log hotplug and default-device changes
  aggregate <name> <uid>... create an aggregate device

flags:
`)
	flag.PrintDefaults()
}

func loadConfig(path string) Config {
	var cfg Config
	if path == "" {
		path = "halctl.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "halctl: bad config %s: %v\n", path, err)
		os.Exit(2)
	}
	return cfg
}

func newLogger(cfg Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || cfg.Log.Level == "" {
		lvl = zerolog.InfoLevel
	}

	if cfg.Log.Format == "json" {
		return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}
	switch cfg.Log.Format {
	case "text":
		console.NoColor = true
	case "color":
	default:
		console.NoColor = !isatty.IsTerminal(os.Stderr.Fd())
	}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger()
}

func cmdList(asJSON bool) error {
	list, err := devices.List()
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(list)
	}

	for _, d := range list {
		var marks []string
		if d.IsDefaultInput {
			marks = append(marks, "default-in")
		}
		if d.IsDefaultOutput {
			marks = append(marks, "default-out")
		}
		if !d.IsAlive {
			marks = append(marks, "offline")
		}
		fmt.Printf("%-36s %-10s %2d in %2d out  %6.0f Hz  %s\n",
			d.Name, d.TransportType,
			d.InputChannelCount, d.OutputChannelCount,
			d.NominalSampleRate, strings.Join(marks, ","))
	}
	return nil
}

func cmdMIDI(asJSON bool) error {
	list, err := devices.GetMIDI()
	if err != nil {
		return err
	}
	defer devices.CloseMIDI()

	if asJSON {
		return printJSON(list)
	}
	for _, d := range list {
		dir := "in/out"
		if d.IsInputOnly() {
			dir = "in"
		} else if d.IsOutputOnly() {
			dir = "out"
		}
		fmt.Printf("%-36s %s\n", d.Name, dir)
	}
	return nil
}

func cmdInfo(uid string, asJSON bool) error {
	if uid == "" {
		return fmt.Errorf("info needs a device UID")
	}
	d, err := coreaudio.DeviceForUID(uid)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("no device with UID %q", uid)
	}
	defer d.Close()

	info := collectInfo(d)
	if asJSON {
		return printJSON(info)
	}
	for _, kv := range info {
		fmt.Printf("%-24s %v\n", kv.Key, kv.Value)
	}
	return nil
}

type infoEntry struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// collectInfo reads the interesting device properties, skipping the ones
// this device does not publish.
func collectInfo(d *coreaudio.Device) []infoEntry {
	var info []infoEntry
	add := func(key string, v any, err error) {
		if err != nil {
			return
		}
		info = append(info, infoEntry{key, v})
	}

	add("id", d.ID(), nil)
	v, err := d.Name()
	add("name", v, err)
	v, err = d.UID()
	add("uid", v, err)
	v, err = d.Manufacturer()
	add("manufacturer", v, err)
	v, err = d.ModelUID()
	add("model uid", v, err)

	tt, err := d.TransportType()
	add("transport", tt.String(), err)
	rate, err := d.NominalSampleRate()
	add("sample rate", rate, err)
	in, err := d.ChannelCount(hal.ScopeInput)
	add("input channels", in, err)
	out, err := d.ChannelCount(hal.ScopeOutput)
	add("output channels", out, err)
	frames, err := d.BufferFrameSize()
	add("buffer frames", frames, err)
	latIn, err := d.Latency(hal.ScopeInput)
	add("input latency", latIn, err)
	latOut, err := d.Latency(hal.ScopeOutput)
	add("output latency", latOut, err)
	alive, err := d.IsAlive()
	add("alive", alive, err)
	running, err := d.IsRunningSomewhere()
	add("running somewhere", running, err)
	pid, err := d.HogModePID()
	add("hog pid", pid, err)
	return info
}

func cmdWatch(log zerolog.Logger) error {
	mon := devices.NewMonitor(hal.Default(), log)
	mon.SetCallbacks(
		func(d devices.AudioDevice) {
			log.Info().Str("uid", d.UID).Str("name", d.Name).Msg("added")
		},
		func(uid string) {
			log.Info().Str("uid", uid).Msg("removed")
		},
		func(in, out string) {
			log.Info().Str("input", in).Str("output", out).Msg("defaults")
		},
	)
	if err := mon.Start(); err != nil {
		return err
	}
	defer mon.Stop()

	log.Info().Int("devices", len(mon.Devices())).Msg("watching, ^C to stop")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	return nil
}

func cmdAggregate(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("aggregate needs a name and at least one sub-device UID")
	}
	agg, err := coreaudio.System().CreateAggregateDevice(coreaudio.AggregateDescription{
		Name:          args[0],
		SubDeviceUIDs: args[1:],
	})
	if err != nil {
		return err
	}
	uid, _ := agg.UID()
	fmt.Printf("created aggregate %d (%s)\n", agg.ID(), uid)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Command ghost-detector runs simulated paranormal scans on demand and
// serves the detector's status and quick-scan page over HTTP.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sweeney/ghost-detector/internal/alarm"
	"github.com/sweeney/ghost-detector/internal/config"
	"github.com/sweeney/ghost-detector/internal/logic"
	"github.com/sweeney/ghost-detector/internal/mqtt"
	"github.com/sweeney/ghost-detector/internal/scan"
	"github.com/sweeney/ghost-detector/internal/sensor"
	"github.com/sweeney/ghost-detector/internal/status"
	"github.com/sweeney/ghost-detector/internal/store"
	"github.com/sweeney/ghost-detector/internal/tui"
	"github.com/sweeney/ghost-detector/internal/web"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}

	// Flags default to env values, so flags win when both are set.
	emfThreshold := flag.Int("emf-threshold", cfg.EMFThreshold, "EMF level strictly above this is ghost territory")
	tempThreshold := flag.Float64("temp-threshold", cfg.TempThreshold, "Temperature strictly below this (°C) is ghost territory")
	webChance := flag.Float64("web-chance", cfg.WebScanChance, "Quick-scan page ghost threshold in [0,1)")
	seed := flag.Int64("seed", cfg.Seed, "Random seed for simulated sensors (0 seeds from the clock)")
	broker := flag.String("broker", cfg.Broker, "MQTT broker address (empty to disable)")
	httpAddr := flag.String("http", cfg.HTTPAddr, "HTTP status address (empty to disable)")
	dbPath := flag.String("db", cfg.DBPath, "SQLite scan log path (empty to disable)")
	motionPin := flag.Int("motion-pin", cfg.MotionPin, "BCM pin for a PIR motion sensor (negative = simulated)")
	useTUI := flag.Bool("tui", false, "Run the interactive scan console")
	once := flag.Bool("once", false, "Run a single scan and exit")

	flag.Parse()

	cfg.EMFThreshold = *emfThreshold
	cfg.TempThreshold = *tempThreshold
	cfg.WebScanChance = *webChance
	cfg.Seed = *seed
	cfg.Broker = *broker
	cfg.HTTPAddr = *httpAddr
	cfg.DBPath = *dbPath
	cfg.MotionPin = *motionPin

	if err := run(cfg, *useTUI, *once); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(cfg config.Config, useTUI, once bool) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Initialize sensors
	var sensors sensor.Reader
	if cfg.MotionPin >= 0 {
		r, err := sensor.NewMotionReader(cfg.MotionPin, rng)
		if err != nil {
			return fmt.Errorf("init motion sensor: %w", err)
		}
		sensors = r
	} else {
		sensors = sensor.NewSimReader(rng)
	}
	defer sensors.Close()

	thresholds := logic.Thresholds{
		EMF:         cfg.EMFThreshold,
		Temperature: cfg.TempThreshold,
	}
	alarms := alarm.NewSystem()

	// Single scan mode
	if once {
		scanner := &scan.Scanner{
			Sensors:    sensors,
			Thresholds: thresholds,
			Alarm:      alarms,
		}
		out, err := scanner.Scan(context.Background())
		if err != nil {
			return err
		}
		printScan(os.Stdout, out)
		return nil
	}

	// Initialize scan log
	var scanLog *store.Store
	if cfg.DBPath != "" {
		var err error
		scanLog, err = store.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open scan log: %w", err)
		}
		defer scanLog.Close()
	}

	// Initialize MQTT
	var publisher mqtt.Publisher
	var mqttStatus mqtt.ConnectionStatus
	if cfg.Broker != "" {
		p, err := mqtt.NewRealPublisher(cfg.Broker)
		if err != nil {
			return fmt.Errorf("init mqtt: %w", err)
		}
		defer p.Close()
		publisher = p
		mqttStatus = p
	}

	// Initialize status tracker (before STARTUP so snapshot is available)
	tracker := status.NewTracker(time.Now(), status.Config{
		EMFThreshold:  cfg.EMFThreshold,
		TempThreshold: cfg.TempThreshold,
		WebChance:     cfg.WebScanChance,
		Broker:        cfg.Broker,
		HTTPAddr:      cfg.HTTPAddr,
		DBPath:        cfg.DBPath,
	})

	scanner := &scan.Scanner{
		Sensors:    sensors,
		Thresholds: thresholds,
		Alarm:      alarms,
		Store:      scanLog,
		Publisher:  publisher,
		Tracker:    tracker,
	}

	// Publish startup event with full status snapshot
	if publisher != nil {
		if mqttStatus != nil {
			tracker.SetMQTTConnected(mqttStatus.IsConnected())
		}
		snap := tracker.Snapshot()
		startupEvent := mqtt.SystemEvent{
			Timestamp:  snap.Now,
			Event:      "STARTUP",
			Retained:   true,
			RawPayload: status.FormatStatusEvent(snap, "STARTUP", ""),
		}
		if err := publisher.PublishSystem(startupEvent); err != nil {
			log.Printf("failed to publish startup event: %v", err)
		} else {
			log.Printf("published startup event")
		}
	}

	// Start HTTP server
	if cfg.HTTPAddr != "" {
		srv := web.New(cfg.HTTPAddr, tracker, scanner, alarms, scanLog)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http server listening on %s", cfg.HTTPAddr)
	}

	// Interactive console mode
	if useTUI {
		err := tui.Run(scanner)
		publishShutdown(publisher, mqttStatus, tracker, "QUIT")
		return err
	}

	log.Printf("started: emf>%d temp<%.1f broker=%s http=%s db=%s seed=%d",
		cfg.EMFThreshold, cfg.TempThreshold, cfg.Broker, cfg.HTTPAddr, cfg.DBPath, seed)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	trigger := make(chan struct{})
	go readTriggers(os.Stdin, trigger)

	return runLoop(scanner, publisher, mqttStatus, tracker, trigger, sigCh, os.Stdout)
}

// readTriggers emits one trigger per line of input. The channel closes on EOF.
func readTriggers(r io.Reader, trigger chan<- struct{}) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		trigger <- struct{}{}
	}
	close(trigger)
}

func runLoop(scanner *scan.Scanner, publisher mqtt.Publisher, mqttStatus mqtt.ConnectionStatus, tracker *status.Tracker, trigger <-chan struct{}, sig <-chan os.Signal, out io.Writer) error {
	fmt.Fprintln(out, "Press enter to scan (Ctrl+C to quit)...")

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			signalName := "UNKNOWN"
			if s == syscall.SIGINT {
				signalName = "SIGINT"
			} else if s == syscall.SIGTERM {
				signalName = "SIGTERM"
			}
			publishShutdown(publisher, mqttStatus, tracker, signalName)
			return nil

		case _, ok := <-trigger:
			if !ok {
				// Stdin closed; shut down as if interrupted.
				publishShutdown(publisher, mqttStatus, tracker, "EOF")
				return nil
			}

			result, err := scanner.Scan(context.Background())
			if err != nil {
				log.Printf("scan error: %v", err)
				continue
			}

			printScan(out, result)
			if mqttStatus != nil && tracker != nil {
				tracker.SetMQTTConnected(mqttStatus.IsConnected())
			}
			fmt.Fprintln(out, "Press enter to scan (Ctrl+C to quit)...")
		}
	}
}

func printScan(out io.Writer, o scan.Output) {
	fmt.Fprint(out, scan.FormatStatus(o.Result.Reading, o.Result.Analysis.Ghost))
	if o.Result.Analysis.Ghost {
		fmt.Fprintln(out, scan.Notification)
	}
}

func publishShutdown(publisher mqtt.Publisher, mqttStatus mqtt.ConnectionStatus, tracker *status.Tracker, reason string) {
	if publisher == nil {
		return
	}

	event := mqtt.SystemEvent{
		Timestamp: time.Now(),
		Event:     "SHUTDOWN",
		Reason:    reason,
		Retained:  true,
	}
	if tracker != nil {
		if mqttStatus != nil {
			tracker.SetMQTTConnected(mqttStatus.IsConnected())
		}
		snap := tracker.Snapshot()
		event.RawPayload = status.FormatStatusEvent(snap, "SHUTDOWN", reason)
	}
	if err := publisher.PublishSystem(event); err != nil {
		log.Printf("failed to publish shutdown event: %v", err)
	} else {
		log.Printf("published shutdown event")
	}
}

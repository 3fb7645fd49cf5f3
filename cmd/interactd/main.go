package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"

	"github.com/interactd/server/internal/config"
	"github.com/interactd/server/internal/console"
	"github.com/interactd/server/internal/data"
	"github.com/interactd/server/internal/journal"
	"github.com/interactd/server/internal/scripting"
	"github.com/interactd/server/internal/sim"
	"github.com/interactd/server/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(serverName string, serverID int) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m            interactd  v0.1.0              \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m      scripted world interaction host      \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mserver:\033[0m %s \033[90m(id: %d)\033[0m\n\n", serverName, serverID)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main server logic ─────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/server.toml"
	if p := os.Getenv("INTERACTD_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Server.Name, cfg.Server.ID)

	// 3. Optional journal database
	var recorder *journal.Recorder
	if cfg.Database.DSN != "" {
		printSection("database")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		db, err := journal.NewDB(ctx, cfg.Database, log)
		if err != nil {
			cancel()
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()
		printOK("PostgreSQL connected")

		if err := journal.RunMigrations(ctx, db.Pool); err != nil {
			cancel()
			return fmt.Errorf("migrations: %w", err)
		}
		cancel()
		printOK("migrations applied")
		fmt.Println()

		recorder = journal.NewRecorder(db, cfg.Journal.BufferSize, log)
		defer recorder.Close()
	}

	// 4. Load data tables
	printSection("data")

	entityTable, err := data.LoadEntityTable(cfg.World.EntityList)
	if err != nil {
		return fmt.Errorf("load entity table: %w", err)
	}
	printStat("entity templates", entityTable.Count())

	spawnList, err := data.LoadSpawnList(cfg.World.SpawnList)
	if err != nil {
		return fmt.Errorf("load spawn list: %w", err)
	}
	printStat("spawn entries", len(spawnList))

	// 5. Build the world and spawn the population
	ws := world.NewState(log)

	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	simulator := sim.NewSimulator(ws, entityTable, spawnList, rng, log)
	spawned := simulator.SpawnAll()
	printStat("entities spawned", spawned)

	agentID := ws.Spawn(&world.Entity{
		Kind:       world.KindPlayer,
		Name:       cfg.World.AgentName,
		Vitality:   100,
		SpawnIndex: -1,
	})
	ws.SetAgent(agentID)
	printOK(fmt.Sprintf("agent %q ready", cfg.World.AgentName))

	// 6. Scripting engine and host bootstrap
	engine, err := scripting.NewEngine(cfg.World.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer engine.Close()
	printOK("lua scripts loaded")

	host := sim.NewHost(ws, engine, recorder, log)
	host.WorldInit()
	host.ScriptInit()
	fmt.Println()

	// 7. Console server
	conServer, err := console.NewServer(
		cfg.Console.BindAddress,
		cfg.Console.InQueueSize,
		cfg.Console.OutQueueSize,
		cfg.Console.ReadTimeout,
		cfg.Console.WriteTimeout,
		log,
	)
	if err != nil {
		return fmt.Errorf("console server: %w", err)
	}
	go conServer.AcceptLoop()

	// 8. Simulation loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.World.TickRate)
	defer ticker.Stop()

	printSection("ready")
	printReady(fmt.Sprintf("console listening on %s", conServer.Addr().String()))
	printReady(fmt.Sprintf("simulation loop started (tick: %s)", cfg.World.TickRate))
	fmt.Println()

	sessions := make(map[uint64]*console.Session)

	for {
		select {
		case <-ticker.C:
			simulator.Tick()
			drainConsole(sessions, conServer, host, cfg.Console.PasswordHash, log)
		case sess := <-conServer.NewSessions():
			sessions[sess.ID] = sess
			if cfg.Console.PasswordHash == "" {
				sess.Authed = true
				sess.Send("ready")
			} else {
				sess.Send("auth required")
			}
		case id := <-conServer.DeadSessions():
			delete(sessions, id)
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			conServer.Shutdown()
			for _, sess := range sessions {
				sess.Close()
			}
			log.Info("server stopped")
			return nil
		}
	}
}

// drainConsole processes pending console lines once per tick. All command
// execution happens here, on the simulation goroutine.
func drainConsole(sessions map[uint64]*console.Session, srv *console.Server, host *sim.Host, passwordHash string, log *zap.Logger) {
	for _, sess := range sessions {
		if sess.IsClosed() {
			srv.NotifyDead(sess.ID)
			continue
		}
		drainSession(sess, host, passwordHash, log)
	}
}

func drainSession(sess *console.Session, host *sim.Host, passwordHash string, log *zap.Logger) {
	for {
		select {
		case line := <-sess.InQueue:
			dispatch(sess, host, passwordHash, line, log)
		default:
			return
		}
	}
}

func dispatch(sess *console.Session, host *sim.Host, passwordHash string, line string, log *zap.Logger) {
	if !sess.Authed {
		pw, ok := strings.CutPrefix(line, "auth ")
		if !ok {
			sess.Send("error: auth required")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(pw)); err != nil {
			log.Warn("console auth failed", zap.String("ip", sess.IP))
			sess.Send("error: bad password")
			sess.Close()
			return
		}
		sess.Authed = true
		sess.Send("ok")
		return
	}

	out, err := host.Exec(line)
	if err != nil {
		sess.Send("error: " + err.Error())
		return
	}
	if out == "" {
		out = "ok"
	}
	sess.Send(out)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

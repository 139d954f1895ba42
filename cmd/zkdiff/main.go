package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rs/zerolog"

	"zkdiff/internal/config"
	"zkdiff/internal/logger"
	"zkdiff/internal/orchestrator"
	"zkdiff/internal/reporter"
	"zkdiff/internal/verifier"
	"zkdiff/internal/zkvm"
)

const usageText = `Usage:
  zkdiff generate -a <fileA> -b <fileB> [-r <ranges>] [-o <output>]
  zkdiff verify <proof-file>
  zkdiff history

Global flags (place after the subcommand):
  -config, -gc       Path to the global YAML/JSON configuration file
  -log-level, -ll    Override the configured log level (debug, info, warn, error)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "generate":
		runGenerate(os.Args[2:])
	case "verify":
		runVerify(os.Args[2:])
	case "history":
		runHistory(os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usageText)
	default:
		fmt.Fprintf(os.Stderr, "Unknown subcommand %q\n\n", os.Args[1])
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}
}

// globalFlags holds the flags shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
}

func registerGlobalFlags(fs *flag.FlagSet) (*globalFlags, *globalFlags) {
	g := &globalFlags{}
	alias := &globalFlags{}
	fs.StringVar(&g.configPath, "config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	fs.StringVar(&alias.configPath, "gc", "", "Alias for -config")
	fs.StringVar(&g.logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	fs.StringVar(&alias.logLevel, "ll", "", "Alias for -log-level")
	return g, alias
}

// bootstrap loads configuration and initializes the logger. Fatal on failure;
// no component can run without both.
func bootstrap(g, alias *globalFlags) (*config.GlobalConfig, zerolog.Logger) {
	if g.configPath == "" {
		g.configPath = alias.configPath
	}
	if g.logLevel == "" {
		g.logLevel = alias.logLevel
	}

	gCfg, err := config.LoadGlobalConfig(g.configPath)
	if err != nil {
		log.Fatalf("[FATAL] Could not load global config using path '%s': %v", g.configPath, err)
	}

	if g.logLevel != "" {
		if _, err := logger.ParseLevel(g.logLevel); err != nil {
			log.Fatalf("[FATAL] Invalid log level '%s': %v", g.logLevel, err)
		}
		gCfg.LogConfig.LogLevel = g.logLevel
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		log.Fatalf("[FATAL] Configuration validation failed: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	return gCfg, zLogger
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	fileA := fs.String("a", "", "Path to the original file (file A)")
	fileB := fs.String("b", "", "Path to the modified file (file B)")
	redactionSpec := fs.String("r", "", "Comma-separated redaction ranges, e.g. 'delete:3-5,insert:7-7,replace:10-12'")
	outputPath := fs.String("o", "", "Path for the generated proof file (defaults to the configured output file)")
	g, alias := registerGlobalFlags(fs)
	fs.Parse(args)

	if *fileA == "" || *fileB == "" {
		fmt.Fprintln(os.Stderr, "generate requires both -a and -b")
		fs.Usage()
		os.Exit(2)
	}

	gCfg, zLogger := bootstrap(g, alias)

	if *outputPath == "" {
		*outputPath = gCfg.ProverConfig.DefaultOutputFile
	}

	history, err := orchestrator.NewHistoryStore(&gCfg.StorageConfig, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize proof history store")
	}

	orch, err := orchestrator.NewOrchestratorBuilder(zLogger).
		WithProver(zkvm.NewLocalProver(zLogger)).
		WithHistoryStore(history).
		Build()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize orchestrator")
	}

	result, err := orch.Generate(orchestrator.GenerateRequest{
		FileAPath:     *fileA,
		FileBPath:     *fileB,
		RedactionSpec: *redactionSpec,
		OutputPath:    *outputPath,
	})
	if err != nil {
		zLogger.Error().Err(err).Msg("Proof generation failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rep := reporter.NewReporter(&gCfg.ReporterConfig, zLogger)
	rep.WriteSummary(os.Stdout, &result.Record.Output)
	if gCfg.ReporterConfig.ShowPreview {
		rep.WritePreview(os.Stdout, &result.Record.Output)
	}
	fmt.Printf("Proof written to %s\n", result.OutputPath)
}

func runVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	g, alias := registerGlobalFlags(fs)
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "verify requires exactly one proof file argument")
		fs.Usage()
		os.Exit(2)
	}
	proofPath := fs.Arg(0)

	gCfg, zLogger := bootstrap(g, alias)

	v := verifier.NewVerifier(zkvm.NewLocalProver(zLogger), zLogger)
	result, record := v.VerifyFile(proofPath)
	if !result.Verified {
		fmt.Printf("Verification FAILED (%s): %s\n", result.Reason, result.Detail)
		os.Exit(1)
	}

	fmt.Println("Verification OK")
	fmt.Printf("  file_a_hash: %s\n", record.Output.FileAHash)
	fmt.Printf("  file_b_hash: %s\n", record.Output.FileBHash)
	fmt.Printf("  proof_hash:  %s\n", record.Output.ProofHash)

	rep := reporter.NewReporter(&gCfg.ReporterConfig, zLogger)
	rep.WriteSummary(os.Stdout, &record.Output)
	if gCfg.ReporterConfig.ShowPreview {
		rep.WritePreview(os.Stdout, &record.Output)
	}
}

func runHistory(args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	g, alias := registerGlobalFlags(fs)
	fs.Parse(args)

	gCfg, zLogger := bootstrap(g, alias)

	if !gCfg.StorageConfig.HistoryEnabled {
		fmt.Println("Proof history is disabled. Enable storage_config.history_enabled to record runs.")
		return
	}

	store, err := orchestrator.NewHistoryStore(&gCfg.StorageConfig, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to open proof history store")
	}

	records, err := store.ListRecords()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to read proof history")
	}
	if len(records) == 0 {
		fmt.Println("No proof history recorded yet.")
		return
	}

	for i := range records {
		r := &records[i]
		fmt.Printf("%s  %s\n", r.GeneratedAtTime().Format("2006-01-02 15:04:05"), r.RunID)
		fmt.Printf("  %s vs %s\n", r.FileAPath, r.FileBPath)
		fmt.Printf("  +%d -%d lines, %d redacted -> %s\n", r.Inserts, r.Deletes, r.Redacted, r.OutputPath)
	}
}

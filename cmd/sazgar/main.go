package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Angelerator/Sazgar/pkg/sazgar"
	"github.com/Angelerator/Sazgar/pkg/table"
)

func main() {
	lvl := slog.LevelVar{}
	lvl.Set(slog.LevelInfo)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: &lvl,
	})))

	configPath := flag.String("config", "", "path to the configuration file")
	output := flag.String("output", "table", "output format: table, json or csv")
	list := flag.Bool("list", false, "list the available table functions and exit")
	all := flag.Bool("all", false, "run every table function with default arguments")
	showVersion := flag.Bool("version", false, "print the engine version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(sazgar.Version)
		return
	}

	config := loadConfig(configPath)

	if err := lvl.UnmarshalText([]byte(config.LogLevel)); err != nil {
		slog.Error("unknown log level specified, choices are [DEBUG, INFO, WARN, ERROR]", "error", err)
		os.Exit(-1)
	}

	if config.ProfilePort != 0 {
		go func() {
			slog.Info("starting PProf HTTP listener", "port", config.ProfilePort)
			err := http.ListenAndServe(fmt.Sprintf(":%d", config.ProfilePort), nil)
			slog.Error("PProf HTTP listener stopped working", "error", err)
		}()
	}

	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	runner, err := sazgar.New(ctx, config)
	if err != nil {
		slog.Error("can't build the metrics engine", "error", err)
		os.Exit(-1)
	}

	if *list {
		listFunctions(os.Stdout, runner)
		return
	}

	format, err := sazgar.ParseFormat(*output)
	if err != nil {
		slog.Error("invalid output flag", "error", err)
		os.Exit(-1)
	}

	if *all {
		runAll(ctx, runner, format)
		return
	}

	if flag.NArg() == 0 {
		slog.Error("missing table function name; use -list to see the available ones")
		os.Exit(-1)
	}
	name := flag.Arg(0)
	args, err := parseArgs(flag.Args()[1:])
	if err != nil {
		slog.Error("invalid arguments", "error", err)
		os.Exit(-1)
	}

	result, err := runner.Run(ctx, name, args)
	if err != nil {
		slog.Error("invocation failed", "function", name, "error", err)
		os.Exit(-1)
	}
	if err := sazgar.Render(os.Stdout, result, format); err != nil {
		slog.Error("can't render results", "error", err)
		os.Exit(-1)
	}
}

func runAll(ctx context.Context, runner *sazgar.Runner, format sazgar.Format) {
	names := runner.Functions()
	results, err := runner.RunAll(ctx, names, 4)
	if err != nil {
		slog.Error("batch invocation failed", "error", err)
		os.Exit(-1)
	}
	for _, name := range names {
		fmt.Printf("== %s\n", name)
		if err := sazgar.Render(os.Stdout, results[name], format); err != nil {
			slog.Error("can't render results", "function", name, "error", err)
			os.Exit(-1)
		}
	}
}

// listFunctions prints every registered function with its arguments and
// column schema.
func listFunctions(w io.Writer, runner *sazgar.Runner) {
	for _, name := range runner.Functions() {
		sig, err := runner.Describe(name)
		if err != nil {
			slog.Warn("can't describe table function", "function", name, "error", err)
			continue
		}
		if len(sig.ArgNames) > 0 {
			fmt.Fprintf(w, "%s (args: %s)\n", name, strings.Join(sig.ArgNames, ", "))
		} else {
			fmt.Fprintln(w, name)
		}
		for _, col := range sig.Columns {
			fmt.Fprintf(w, "    %s %s\n", col.Name, col.Type)
		}
	}
}

// parseArgs turns trailing key=value pairs into table function arguments.
func parseArgs(pairs []string) (table.Args, error) {
	args := table.Args{}
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("argument %q is not a key=value pair", pair)
		}
		args[key] = value
	}
	return args, nil
}

func loadConfig(configPath *string) *sazgar.Config {
	var configReader io.ReadCloser
	if configPath != nil && *configPath != "" {
		var err error
		if configReader, err = os.Open(*configPath); err != nil {
			slog.Error("can't open "+*configPath, "error", err)
			os.Exit(-1)
		}
		defer configReader.Close()
	}
	config, err := sazgar.LoadConfig(configReader)
	if err != nil {
		slog.Error("wrong configuration", "error", err)
		os.Exit(-1)
	}
	if err := config.Validate(); err != nil {
		slog.Error("wrong configuration", "error", err)
		os.Exit(-1)
	}
	return config
}

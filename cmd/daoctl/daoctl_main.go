package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	_ "time/tzdata"

	"DAOKit/internal/bindings"
	"DAOKit/internal/shared/config"
	"DAOKit/internal/shared/logs"
	"DAOKit/modules/dao"
	"DAOKit/modules/kit/logx"
	"DAOKit/modules/kit/tracex"
)

const usage = `usage: daoctl [--config=<path>] [--format=<format>] <command> [<args>]

Flags:
   --config    Config file. If not set, configs/conf.yml is searched upward from the current directory.
   --format    Output format: dictionary, extjson or protojson. Overrides output.format.

Input files are read by extension: .bson (raw document), .extjson (extended JSON),
anything else is a JSON dictionary.

Commands:
   roundtrip <role> <file>          Decode, re-encode through BSON and dictionary, and check equality
   diff      <role> <a> <b>         Compare two entities and list the changed keys
   price     <file> [tierId] [time] Resolve the effective price of a pricing document
   status    <file> [time]          Resolve the effective status of a place document
   save      <role> <file>          Upsert an entity into MongoDB
   load      <role> <id>            Load an entity from MongoDB
   roles                            List registered roles
   help                             Display this message
`

func main() {
	fs := pflag.NewFlagSet("daoctl", pflag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	cfgPath := fs.String("config", "", "config file path")
	format := fs.String("format", "", "output format")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if err := logs.Init(cfg.App.Name, cfg.Log); err != nil {
		panic(err)
	}
	defer logs.Sync()

	args := fs.Args()
	if len(args) == 0 || args[0] == "help" {
		fmt.Print(usage)
		return
	}

	l := logx.NewZapLogger(logs.Logger())
	reg := dao.NewRegistry()
	reg.SetLogger(l.Named("dao"))
	if err := bindings.Apply(reg, cfg.Registry, l.Named("bindings")); err != nil {
		logs.Fatal("apply registry bindings failed", zap.Error(err))
	}

	ctx := tracex.Start(context.Background())
	a := newApp(cfg, reg, l, os.Stdout)
	err = a.run(ctx, args[0], args[1:])
	logx.ReportCommand(ctx, l, args[0], err, zap.Strings("args", args[1:]))
	if err != nil {
		logs.Sync()
		os.Exit(1)
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command greet runs the datastore greeting programs against an in-memory
// datastore.
//
//	greet                      # Hello Brandon
//	greet Alice                # Hello Alice
//	greet --nickname B         # Hello, B
//	greet --nickname ""        # absent, exits non-zero
package main

import (
	"errors"
	"fmt"
	"os"

	"code.hybscloud.com/reader"
	"code.hybscloud.com/reader/datastore"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultName = "Brandon"

var errAbsent = errors.New("program produced no greeting")

type options struct {
	salutation string
	nickname   string
	seed       map[string]string
	verbose    bool
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopmentConfig().Build()
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "greet [name]",
		Short:        "Compose and run a greeting program over a datastore",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := defaultName
			if len(args) == 1 {
				name = args[0]
			}

			logger, err := newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			cfg := datastore.Config{
				Datastore:  datastore.Logged(datastore.NewMemory(datastore.WithSeed(opts.seed)), logger),
				Salutation: opts.salutation,
			}

			program := datastore.Greet(name)
			if cmd.Flags().Changed("nickname") {
				program = datastore.MixAndMatch(reader.OptionOf(opts.nickname, opts.nickname != ""))
			}

			greeting, ok := reader.RunOptionReader(cfg, program).Get()
			if !ok {
				logger.Debug("program result absent")
				fmt.Fprintln(cmd.ErrOrStderr(), color.Red.Sprint("no greeting"))
				return errAbsent
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.Green.Sprint(greeting))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.salutation, "salutation", datastore.DefaultSalutation, "salutation used with --nickname")
	flags.StringVar(&opts.nickname, "nickname", "", "greet a nickname instead; empty means absent")
	flags.StringToStringVar(&opts.seed, "seed", nil, "pre-populate the datastore (key=value, repeatable)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log datastore calls")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

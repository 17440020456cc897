package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/pool-cli/internal/application"
	"github.com/bnema/pool-cli/internal/domain"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
	rights  []float64
	dryRun  bool
	asJSON  bool
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "pool KIND [ACTION] [ITEM...]",
		Short: "Favorite pool utility: like, ban and pick themes",
		Long: "pool keeps a white list and a black list per kind of item (shell color schemes, prompt themes, ...) " +
			"and picks a random item, favoring liked items and avoiding banned ones.\n\n" +
			"Actions: " + actionNames() + ". The default action is info.",
		Example: "  pool base16 like ocean mocha\n  pool b pick\n  pool z ban\n  pool vim -r 70,20",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().Float64SliceVarP(&opts.rights, "rights", "r", nil, "set the white and free item rights, e.g. -r 70,20")
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "validate --rights without saving them")
	rootCmd.Flags().BoolVar(&opts.asJSON, "json", false, "print info and lists as JSON")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return app.initLogger(cmd.ErrOrStderr(), opts.verbose)
	}
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.logger.Sync()
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runPool(cmd, app, opts, args)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newKindsCmd(app),
	)

	return rootCmd
}

func runPool(cmd *cobra.Command, app *app, opts *rootOptions, args []string) error {
	kind, err := app.resolveKind(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	command, err := parseCommand(cmd, opts, args[1:])
	if err != nil {
		return err
	}

	svc, err := app.poolService(kind)
	if err != nil {
		return err
	}

	result, err := svc.Execute(cmd.Context(), command)
	if err != nil {
		return err
	}

	return writeResult(cmd, app, svc.Kind(), result, opts.asJSON)
}

func parseCommand(cmd *cobra.Command, opts *rootOptions, args []string) (application.Command, error) {
	if cmd.Flags().Changed("rights") {
		if len(args) > 0 {
			return application.Command{}, fmt.Errorf("--rights cannot be combined with action %q", args[0])
		}
		if len(opts.rights) != 2 {
			return application.Command{}, fmt.Errorf("--rights takes exactly two values WHITE,FREE, got %d", len(opts.rights))
		}

		return application.Command{
			Action: application.ActionSetRights,
			Rights: &application.RightsInput{
				White:   opts.rights[0],
				Free:    opts.rights[1],
				Persist: !opts.dryRun,
			},
		}, nil
	}
	if opts.dryRun {
		return application.Command{}, fmt.Errorf("--dry-run only applies to --rights")
	}

	rawAction := ""
	if len(args) > 0 {
		rawAction, args = args[0], args[1:]
	}

	action, err := application.ParseAction(rawAction)
	if err != nil {
		return application.Command{}, err
	}
	if action == application.ActionSetRights {
		return application.Command{}, fmt.Errorf("use --rights WHITE,FREE to change rights")
	}

	return application.Command{
		Action: action,
		Items:  domain.ParseItems(args),
	}, nil
}

func actionNames() string {
	names := make([]string, 0, len(application.Actions))
	for _, action := range application.Actions {
		names = append(names, string(action))
	}
	return strings.Join(names, ", ")
}

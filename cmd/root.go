package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/douhashi/autocomment/internal/commenter"
	"github.com/douhashi/autocomment/internal/config"
	"github.com/douhashi/autocomment/internal/github"
	"github.com/douhashi/autocomment/internal/logger"
	"github.com/douhashi/autocomment/internal/version"
	"github.com/spf13/cobra"
)

// errSubmitFailed はSubmitが既にエラー行を出力済みであることを示す
var errSubmitFailed = errors.New("comment submission failed")

type rootOptions struct {
	cfgFile string
	verbose bool
	dryRun  bool
	token   string
	owner   string
	repo    string
	issue   int
	comment string

	log logger.Logger
}

// Execute はコマンドを実行し、結果に応じた終了コードでプロセスを終了する
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// Run はargsでコマンドを実行し、終了コードを返す。成功時0、それ以外は1。
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errSubmitFailed) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "autocomment",
		Short: "Add a comment to a GitHub issue",
		Long: `autocomment authenticates to GitHub with a personal access token and
posts a single comment to the given issue or pull request.

The token and comment are taken from the command line only. The config
file and AUTOCOMMENT_GITHUB_BASE_URL only select the API endpoint.`,
		Example: `  autocomment --token $GITHUB_TOKEN --owner octocat --repo hello-world --issue 42
  autocomment --token $GITHUB_TOKEN --owner octocat --repo hello-world --issue 42 --comment "Thanks for the report!"`,
		Version:       version.Get().String(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logOpts := []logger.Option{logger.WithOutput(cmd.ErrOrStderr())}
			if o.verbose {
				logOpts = append(logOpts, logger.WithLevel("debug"))
			}
			o.log, err = logger.NewFromEnv(logOpts...)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.token, "token", "", "GitHub personal access token")
	flags.StringVar(&o.owner, "owner", "", "Repository owner")
	flags.StringVar(&o.repo, "repo", "", "Repository name")
	flags.IntVar(&o.issue, "issue", 0, "Issue number")
	flags.StringVar(&o.comment, "comment", commenter.DefaultBody, "Comment text")
	flags.String("base-url", "", "GitHub API base URL (for GitHub Enterprise)")
	flags.BoolVar(&o.dryRun, "dry-run", false, "Print the comment instead of posting it")

	cmd.MarkFlagRequired("token")
	cmd.MarkFlagRequired("owner")
	cmd.MarkFlagRequired("repo")
	cmd.MarkFlagRequired("issue")

	cmd.PersistentFlags().StringVarP(&o.cfgFile, "config", "c", "", "config file path")
	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")

	return cmd
}

// loadConfig は接続先の設定を読み込む。--base-urlが設定ファイル・環境変数より優先する
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v, err := config.NewViper(o.cfgFile)
	if err != nil {
		return nil, err
	}

	if err := v.BindPFlag("github.base_url", cmd.Flags().Lookup("base-url")); err != nil {
		return nil, err
	}

	return config.FromViper(v)
}

func (o *rootOptions) run(cmd *cobra.Command) error {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	req := commenter.Request{
		Token:       o.token,
		Owner:       o.owner,
		Repo:        o.repo,
		IssueNumber: o.issue,
		Body:        o.comment,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if o.dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "[dry-run] would add comment to %s:\n%s\n", req, req.Body)
		return nil
	}

	submitter := commenter.NewSubmitter(
		o.clientFactory(cfg),
		commenter.WithLogger(o.log),
		commenter.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
	)
	if !submitter.Submit(cmd.Context(), req) {
		return errSubmitFailed
	}
	return nil
}

func (o *rootOptions) clientFactory(cfg *config.Config) commenter.ClientFactory {
	return func(token string) (github.IssueCommentClient, error) {
		opts := []github.ClientOption{
			github.WithLogger(o.log),
			github.WithUserAgent(version.Get().UserAgent()),
		}
		if cfg.GitHub.BaseURL != "" {
			opts = append(opts, github.WithBaseURL(cfg.GitHub.BaseURL))
		}
		return github.NewClient(token, opts...)
	}
}

package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/soyeahso/doagent/internal/config"
	"github.com/soyeahso/doagent/internal/domain"
	"github.com/soyeahso/doagent/internal/logging"
	"github.com/soyeahso/doagent/internal/provision"
)

// ClientFactory builds the API client once flags have been validated.
type ClientFactory func(token string, opts ...provision.Option) (provision.API, error)

func defaultClientFactory(token string, opts ...provision.Option) (provision.API, error) {
	return provision.NewClient(token, opts...)
}

// app holds per-invocation state shared by the root command and its
// subcommands.
type app struct {
	newClient ClientFactory
	logOut    io.Writer

	cfgFile   string
	envFile   string
	logLevel  string
	logFormat string

	deploy deployFlags

	paths config.Paths
	cfg   config.Config
	log   *logging.Logger
}

type deployFlags struct {
	token           string
	projectID       string
	region          string
	modelUUID       string
	agentName       string
	description     string
	instructionFile string
	apiURL          string
	listModels      bool
}

func newRootCmd(newClient ClientFactory, logOut io.Writer) *cobra.Command {
	a := &app{newClient: newClient, logOut: logOut}

	cmd := &cobra.Command{
		Use:   "doagent",
		Short: "Deploy the TherapyForDogs agent on DigitalOcean Gradient AI",
		Long: "doagent creates the TherapyForDogs.ai behavioral therapy agent on the\n" +
			"DigitalOcean Gradient AI platform, or lists the models that can back it.",
		Example: "  doagent --token $DO_TOKEN --project-id $PROJECT_ID\n" +
			"  doagent --token $DO_TOKEN --project-id $PROJECT_ID --list-models",
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE:              a.runDeploy,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ~/.doagent/config.yaml)")
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file with DOAGENT_* defaults")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, silent)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format (pretty, json)")

	f := cmd.Flags()
	f.StringVar(&a.deploy.token, "token", "", "DigitalOcean API token")
	f.StringVar(&a.deploy.projectID, "project-id", "", "DigitalOcean project ID")
	f.StringVar(&a.deploy.region, "region", domain.DefaultRegion, "region for deployment")
	f.StringVar(&a.deploy.modelUUID, "model-uuid", domain.DefaultModelUUID, "model UUID to use (default is Llama 3.3 70B)")
	f.StringVar(&a.deploy.agentName, "agent-name", domain.DefaultAgentName, "custom name for the agent")
	f.StringVar(&a.deploy.description, "description", domain.DefaultDescription, "agent description")
	f.StringVar(&a.deploy.instructionFile, "instruction-file", "", "file whose contents replace the built-in instruction")
	f.StringVar(&a.deploy.apiURL, "api-url", "", "override the DigitalOcean API base URL")
	f.BoolVar(&a.deploy.listModels, "list-models", false, "list available models and exit")
	_ = cmd.MarkFlagRequired("token")
	_ = cmd.MarkFlagRequired("project-id")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd(a))

	return cmd
}

// setup resolves paths, loads defaults and initializes the process logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	a.paths, err = config.ResolvePaths()
	if err != nil {
		return err
	}
	if a.cfgFile != "" {
		a.paths.Config = a.cfgFile
	}
	a.paths.DotEnv = a.envFile

	a.cfg, err = config.Load(a.paths.Config, a.paths.DotEnv)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		a.cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.Logging.Format = a.logFormat
	}

	a.log = logging.New(logging.Options{
		Writer: a.logOut,
		Level:  a.cfg.Logging.Level,
		Format: a.cfg.Logging.Format,
	})
	return nil
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd(defaultClientFactory, nil).Execute()
}

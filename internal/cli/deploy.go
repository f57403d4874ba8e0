package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/soyeahso/doagent/internal/config"
	"github.com/soyeahso/doagent/internal/domain"
	"github.com/soyeahso/doagent/internal/logging"
	"github.com/soyeahso/doagent/internal/provision"
	"github.com/soyeahso/doagent/internal/version"
)

const rule = "============================================================"

// applyFlags layers explicitly set flags over the loaded config.
func (a *app) applyFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	if f.Changed("region") {
		a.cfg.Agent.Region = a.deploy.region
	}
	if f.Changed("model-uuid") {
		a.cfg.Agent.ModelUUID = a.deploy.modelUUID
	}
	if f.Changed("agent-name") {
		a.cfg.Agent.Name = a.deploy.agentName
	}
	if f.Changed("description") {
		a.cfg.Agent.Description = a.deploy.description
	}
	if f.Changed("instruction-file") {
		a.cfg.Agent.InstructionFile = a.deploy.instructionFile
	}
	if f.Changed("api-url") {
		a.cfg.API.BaseURL = a.deploy.apiURL
	}
}

func (a *app) runDeploy(cmd *cobra.Command, args []string) error {
	a.applyFlags(cmd)
	validate := config.Validate
	if a.deploy.listModels {
		validate = config.ValidateRuntime
	}
	if issues := validate(&a.cfg); len(issues) > 0 {
		msgs := make([]string, len(issues))
		for i, issue := range issues {
			msgs[i] = issue.String()
		}
		return &config.ConfigError{Message: strings.Join(msgs, "; ")}
	}

	opts := []provision.Option{provision.WithUserAgent(version.UserAgent())}
	if a.cfg.API.BaseURL != "" {
		opts = append(opts, provision.WithBaseURL(a.cfg.API.BaseURL))
	}
	client, err := a.newClient(a.deploy.token, opts...)
	if err != nil {
		return err
	}
	a.log.Info().Msg("Initialized DigitalOcean client")

	deployer := provision.NewDeployer(client, a.log)
	ctx := cmd.Context()

	if a.deploy.listModels {
		_, err := deployer.ListModels(ctx)
		return err
	}

	instruction, err := a.cfg.ReadInstruction()
	if err != nil {
		return err
	}
	agentCfg := provision.BuildAgentConfig(provision.BuildOptions{
		AgentName:   a.cfg.Agent.Name,
		Description: a.cfg.Agent.Description,
		ModelUUID:   a.cfg.Agent.ModelUUID,
		ProjectID:   a.deploy.projectID,
		Region:      a.cfg.Agent.Region,
		Instruction: instruction,
	}, a.log)

	a.log.Info().Msg("Starting agent deployment...")
	result, err := deployer.CreateAgent(ctx, agentCfg)
	if err != nil {
		return err
	}

	printSummary(a.log, agentCfg, result)
	return nil
}

func printSummary(log *logging.Logger, cfg domain.AgentConfig, result *domain.ProvisionResult) {
	log.Info().Msg(rule)
	log.Info().Msg("DEPLOYMENT SUCCESSFUL!")
	log.Info().Msg(rule)
	log.Info().Msgf("Agent Name: %s", cfg.Name())
	log.Info().Msgf("Agent UUID: %s", result.AgentUUID())
	log.Info().Msgf("Region: %s", cfg.Region())
	log.Info().Msg(rule)
	log.Info().Msg("Next steps:")
	log.Info().Msg("1. Note the Agent UUID above")
	log.Info().Msg("2. Add DO_AGENT_UUID to your environment variables")
	log.Info().Msg("3. Point DO_AGENT_ENDPOINT at the agent for the chat API route")
	log.Info().Msg(rule)
}

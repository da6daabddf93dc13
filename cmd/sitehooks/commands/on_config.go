package commands

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kubasejdak/sitehooks/internal/config"
	"github.com/kubasejdak/sitehooks/internal/foundation/errors"
	"github.com/kubasejdak/sitehooks/internal/metrics"
)

// OnConfigCmd implements the 'on-config' command.
type OnConfigCmd struct {
	Format string `help:"Output format (text|yaml)" enum:"text,yaml" default:"text"`
}

func (c *OnConfigCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	cfg = newHooks(g, metrics.NoopRecorder{}).OnConfig(cfg)

	if c.Format == "yaml" {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.InternalError("failed to marshal config").WithCause(err).Build()
		}
		_, err = g.out().Write(data)
		return err
	}
	_, err = fmt.Fprintln(g.out(), cfg.Copyright)
	return err
}

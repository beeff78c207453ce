package config

import (
	"log/slog"

	"github.com/javagrunt/javagrunt/pkg/controller/scheduler"
	"github.com/urfave/cli/v3"
)

type Schedule struct {
	spec     string
	disabled bool
}

func (x *Schedule) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "schedule",
			Usage:       "Cron spec with seconds field for the advisor cycle",
			Category:    "Schedule",
			Destination: &x.spec,
			Sources:     cli.EnvVars("JAVAGRUNT_SCHEDULE"),
			Value:       scheduler.DefaultSchedule,
		},
		&cli.BoolFlag{
			Name:        "disable-schedule",
			Usage:       "Run the advisor cycle only on demand",
			Category:    "Schedule",
			Destination: &x.disabled,
			Sources:     cli.EnvVars("JAVAGRUNT_DISABLE_SCHEDULE"),
		},
	}
}

func (x *Schedule) Spec() string  { return x.spec }
func (x *Schedule) Enabled() bool { return !x.disabled }

func (x Schedule) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("spec", x.spec),
		slog.Bool("disabled", x.disabled),
	)
}

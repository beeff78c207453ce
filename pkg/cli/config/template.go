package config

import (
	"log/slog"

	"github.com/javagrunt/javagrunt/pkg/domain/model"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Template is the shared workflow copied into newly granted repositories
type Template struct {
	owner      string
	repo       string
	path       string
	ref        string
	token      types.InstallationToken `masq:"secret"`
	targetPath string
}

func (x *Template) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "template-owner",
			Usage:       "Owner of the repository holding the workflow template",
			Category:    "Template",
			Destination: &x.owner,
			Sources:     cli.EnvVars("JAVAGRUNT_TEMPLATE_OWNER"),
			Value:       "dashaun-cloud",
		},
		&cli.StringFlag{
			Name:        "template-repo",
			Usage:       "Repository holding the workflow template",
			Category:    "Template",
			Destination: &x.repo,
			Sources:     cli.EnvVars("JAVAGRUNT_TEMPLATE_REPO"),
			Value:       "github-shared-pipelines",
		},
		&cli.StringFlag{
			Name:        "template-path",
			Usage:       "Path of the workflow template",
			Category:    "Template",
			Destination: &x.path,
			Sources:     cli.EnvVars("JAVAGRUNT_TEMPLATE_PATH"),
			Value:       ".github/workflows/ci.yml",
		},
		&cli.StringFlag{
			Name:        "template-ref",
			Usage:       "Branch, tag or commit of the workflow template",
			Category:    "Template",
			Destination: &x.ref,
			Sources:     cli.EnvVars("JAVAGRUNT_TEMPLATE_REF"),
			Value:       "main",
		},
		&cli.StringFlag{
			Name:        "template-token",
			Usage:       "Token to read the template repository (default: installation token)",
			Category:    "Template",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("JAVAGRUNT_TEMPLATE_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "target-workflow-path",
			Usage:       "Path the workflow is written to in target repositories",
			Category:    "Template",
			Destination: &x.targetPath,
			Sources:     cli.EnvVars("JAVAGRUNT_TARGET_WORKFLOW_PATH"),
			Value:       usecase.DefaultTargetPath,
		},
	}
}

func (x *Template) Source() model.TemplateSource {
	return model.TemplateSource{
		Owner: x.owner,
		Repo:  x.repo,
		Path:  x.path,
		Ref:   x.ref,
		Token: x.token,
	}
}

func (x *Template) UseCaseOptions() []usecase.Option {
	return []usecase.Option{
		usecase.WithTemplate(x.Source()),
		usecase.WithTargetPath(x.targetPath),
	}
}

func (x Template) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("source", x.owner+"/"+x.repo+"/"+x.path),
		slog.String("ref", x.ref),
		slog.Bool("token", x.token != ""),
		slog.String("targetPath", x.targetPath),
	)
}

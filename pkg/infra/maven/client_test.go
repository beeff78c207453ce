package maven_test

import (
	"context"
	"errors"
	"testing"

	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/infra/command"
	"github.com/javagrunt/javagrunt/pkg/infra/maven"
	"github.com/m-mizutani/gt"
)

type recorder struct {
	calls []*command.Command
	err   error
}

func (x *recorder) Execute(_ context.Context, cmd *command.Command) ([]byte, error) {
	x.calls = append(x.calls, cmd)
	return nil, x.err
}

func TestApplyPatchRecipe(t *testing.T) {
	rec := &recorder{}
	gt.NoError(t, maven.New(rec).ApplyPatchRecipe(context.Background(), "/work"))

	gt.A(t, rec.calls).Length(1)
	gt.V(t, rec.calls[0].Path).Equal("./mvnw")
	gt.V(t, rec.calls[0].Dir).Equal("/work")
	gt.V(t, rec.calls[0].Args).Equal([]string{
		"org.openrewrite.maven:rewrite-maven-plugin:run",
		"-Drewrite.configLocation=https://raw.githubusercontent.com/dashaun-tanzu/openrewrite-recipes/refs/heads/main/MavenUpgradeSpringBootToLatestPatch.yaml",
		"-Drewrite.activeRecipes=com.dashaun.openrewrite.MavenUpgradeSpringBootToLatestPatch",
	})
}

func TestApplyPatchRecipeOverrides(t *testing.T) {
	rec := &recorder{err: types.ErrExternalTool}
	client := maven.New(rec, maven.WithWrapper("mvn"), maven.WithRecipe("file:///recipes.yml", "org.example.Patch"))

	err := client.ApplyPatchRecipe(context.Background(), "/work")
	gt.True(t, errors.Is(err, types.ErrExternalTool))
	gt.V(t, rec.calls[0].Path).Equal("mvn")
	gt.V(t, rec.calls[0].Args[1]).Equal("-Drewrite.configLocation=file:///recipes.yml")
	gt.V(t, rec.calls[0].Args[2]).Equal("-Drewrite.activeRecipes=org.example.Patch")
}

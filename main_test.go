package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/saint0x/tutorialmaker/cmd"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"tutorialmaker": func() int {
			cmd.SetBuildInfo(version, commit, date)
			return cmd.Main()
		},
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			for _, k := range []string{
				"GITHUB_ACCESS_TOKEN", "GITHUB_TOKEN", "GITHUB_API_URL",
				"ANTHROPIC_API_KEY", "CLAUDE_API_KEY", "OPENAI_API_KEY",
				"TUTORIALMAKER_PROVIDER", "TUTORIALMAKER_CONFIG", "DEBUG",
			} {
				env.Setenv(k, "")
			}
			env.Setenv("HOME", env.WorkDir)
			return nil
		},
	})
}

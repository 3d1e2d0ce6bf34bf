package main

import "testing"

func TestServeSubcommandRegistered(t *testing.T) {
	root := newRootCmd()

	serve, _, err := root.Find([]string{"serve"})
	if err != nil || serve == root {
		t.Fatalf("serve subcommand not registered: %v", err)
	}
	if serve.RunE == nil {
		t.Fatal("serve subcommand has no run function")
	}
	if root.RunE == nil {
		t.Fatal("bare invocation should serve as well")
	}
}

func TestVersionSubcommandRegistered(t *testing.T) {
	root := newRootCmd()

	if _, _, err := root.Find([]string{"version"}); err != nil {
		t.Fatalf("version subcommand not registered: %v", err)
	}
}

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestChatCmd_Help(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"chat", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("chat --help failed: %v", err)
	}

	out := buf.String()
	for _, sub := range []string{"discord", "slack"} {
		if !strings.Contains(out, sub) {
			t.Errorf("expected help to list %q subcommand, got: %s", sub, out)
		}
	}
}

func TestChatDiscordCmd_MissingConfig(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"chat", "discord", "--config", "/nonexistent/clerk.yaml"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "load config") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "load config")
	}
}

func TestChatDiscordCmd_MissingToken(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"chat", "discord", "--config", writeTestConfig(t)})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for missing discord token")
	}
	if !strings.Contains(err.Error(), "discord.token") {
		t.Errorf("error = %q, want to mention discord.token", err.Error())
	}
}

func TestChatSlackCmd_MissingToken(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"chat", "slack", "--config", writeTestConfig(t)})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for missing slack token")
	}
	if !strings.Contains(err.Error(), "slack.bot_token") {
		t.Errorf("error = %q, want to mention slack.bot_token", err.Error())
	}
}

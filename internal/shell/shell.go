// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package shell implements the interactive REPL: a small command dispatch
// loop over the same Wi-Fi operations the cobra command tree exposes, plus
// a promptui-driven network picker.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/manifoldco/promptui"

	"github.com/keithrbennett/wifiwand-sub003/internal/config"
	"github.com/keithrbennett/wifiwand-sub003/internal/netctl"
	"github.com/keithrbennett/wifiwand-sub003/internal/sampler"
)

// command is one REPL-dispatchable shell command.
type command struct {
	name        string
	description string
	handler     func(sh *Shell, args []string) error
}

// Shell is the interactive REPL: it reads lines from in, dispatches to a
// fixed command table, and writes responses to out.
type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	cfg      *config.LoggerConfig
	commands map[string]command
	running  bool
}

// New builds a Shell reading from stdin and writing to stdout.
func New(cfg *config.LoggerConfig) *Shell {
	sh := &Shell{
		in:       bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
		cfg:      cfg,
		commands: make(map[string]command),
		running:  true,
	}
	sh.registerCommands()
	return sh
}

// Run starts the REPL loop. It exits on "exit"/"quit", EOF, or ctx
// cancellation (including SIGINT/SIGTERM).
func (sh *Shell) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Fprintln(sh.out, "wifiwand interactive shell — type 'help' for commands, 'exit' to quit")

	for sh.running {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		fmt.Fprint(sh.out, "wifiwand> ")
		if !sh.in.Scan() {
			return sh.in.Err()
		}

		line := strings.TrimSpace(sh.in.Text())
		if line == "" {
			continue
		}

		if err := sh.dispatch(line); err != nil {
			fmt.Fprintf(sh.out, "error: %v\n", err)
		}
	}
	return nil
}

func (sh *Shell) dispatch(line string) error {
	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]

	cmd, ok := sh.commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q (type 'help' for a list)", name)
	}
	return cmd.handler(sh, args)
}

func (sh *Shell) registerCommands() {
	sh.commands["help"] = command{"help", "list available commands", (*Shell).handleHelp}
	sh.commands["exit"] = command{"exit", "leave the shell", (*Shell).handleExit}
	sh.commands["quit"] = command{"quit", "leave the shell", (*Shell).handleExit}
	sh.commands["status"] = command{"status", "print current Wi-Fi/internet status", (*Shell).handleStatus}
	sh.commands["networks"] = command{"networks", "list networks in range", (*Shell).handleNetworks}
	sh.commands["join"] = command{"join", "interactively pick a network in range and connect", (*Shell).handleJoin}
	sh.commands["disconnect"] = command{"disconnect", "drop the current association", (*Shell).handleDisconnect}
}

func (sh *Shell) handleHelp(_ []string) error {
	names := make([]string, 0, len(sh.commands))
	for name := range sh.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(sh.out, "  %-12s %s\n", name, sh.commands[name].description)
	}
	return nil
}

func (sh *Shell) handleExit(_ []string) error {
	sh.running = false
	return nil
}

func (sh *Shell) handleStatus(_ []string) error {
	s := sampler.New(sh.cfg.RefTCPHost, sh.cfg.RefTCPPort, sh.cfg.RefDNSName, sh.cfg.RefDNSServer, sh.cfg.ProbeTimeout)
	state := s.Sample(context.Background())

	network := "-"
	if state.NetworkName != nil {
		network = *state.NetworkName
	}
	fmt.Fprintf(sh.out, "wifi=%v network=%s tcp=%v dns=%v internet=%v\n",
		state.WifiOn, network, state.TCPWorking, state.DNSWorking, state.InternetConnected)
	return nil
}

func (sh *Shell) handleNetworks(_ []string) error {
	names, err := netctl.AvailableNetworks(context.Background())
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Fprintln(sh.out, " ", n)
	}
	return nil
}

func (sh *Shell) handleJoin(_ []string) error {
	names, err := netctl.AvailableNetworks(context.Background())
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no networks in range")
	}

	prompt := promptui.Select{
		Label: "Select a network to join",
		Items: names,
	}
	_, ssid, err := prompt.Run()
	if err != nil {
		return fmt.Errorf("selection canceled: %w", err)
	}

	pwPrompt := promptui.Prompt{
		Label: "Password (blank for open network)",
		Mask:  '*',
	}
	password, err := pwPrompt.Run()
	if err != nil {
		return fmt.Errorf("password entry canceled: %w", err)
	}

	if err := netctl.Connect(context.Background(), ssid, password); err != nil {
		return fmt.Errorf("connecting to %s: %w", ssid, err)
	}
	fmt.Fprintf(sh.out, "connected to %s\n", ssid)
	return nil
}

func (sh *Shell) handleDisconnect(_ []string) error {
	if err := netctl.Disconnect(context.Background()); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "disconnected")
	return nil
}

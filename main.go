package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/vivikey/rust-analyzer/config"
	"github.com/vivikey/rust-analyzer/editor"
	"github.com/vivikey/rust-analyzer/lsp"
	"github.com/vivikey/rust-analyzer/toolchain"
	"github.com/vivikey/rust-analyzer/utils/logger"
	"github.com/vivikey/rust-analyzer/utils/memoize"
)

// flakyClient simulates a language server that reports a content-modified
// conflict twice before answering.
type flakyClient struct {
	calls int
}

func (c *flakyClient) SendRequest(ctx context.Context, method string, params, result any) error {
	c.calls++
	if c.calls <= 2 {
		return &lsp.ResponseError{Code: lsp.CodeContentModified, Message: "content modified"}
	}
	if p, ok := result.(*string); ok {
		*p = "fn main() { println!(\"hello\"); }"
	}
	return nil
}

// echoExecutor stands in for the host's command surface.
type echoExecutor struct {
	log *logger.Logger
}

func (e *echoExecutor) ExecuteCommand(ctx context.Context, command string, args ...any) (any, error) {
	e.log.Debug("host command:", command, args)
	return nil, nil
}

func main() {
	fmt.Println("rust-analyzer client utilities demo")
	fmt.Println("===================================")

	cfg := config.Default()
	channel := editor.NewOutputChannel(cfg.Channel, os.Stdout)
	log := logger.New(channel, logger.WithDebug(cfg.Trace.Extension))

	session := uuid.New()
	log.Info("session", session.String(), "started, channel:", channel.Name())

	ctx := context.Background()

	// Probe whichever rust-analyzer is installed, if any.
	if path, err := toolchain.Locate(log, "rust-analyzer", cfg.Server.Path); err != nil {
		log.Warn("no usable rust-analyzer found:", err.Error())
	} else {
		log.Info("using server at", path)
	}

	// Classify a couple of host documents.
	source := editor.Document{
		URI:        editor.DocumentURI{Scheme: "file", Path: "/demo/src/main.rs"},
		LanguageID: editor.LanguageRust,
	}
	diffView := editor.Document{
		URI:        editor.DocumentURI{Scheme: "git", Path: "/demo/src/main.rs"},
		LanguageID: editor.LanguageRust,
	}
	if confirmed, ok := editor.AsRustDocument(source); ok {
		log.Info("feature-eligible document:", confirmed.URI.String())
	}
	if _, ok := editor.AsRustDocument(diffView); !ok {
		log.Info("diff view excluded:", diffView.URI.String())
	}

	// Flip a UI context flag the way feature activation would.
	exec := &echoExecutor{log: log}
	if err := editor.SetContextValue(ctx, exec, "rust-analyzer.enabled", true); err != nil {
		log.Error("setting context flag:", err)
		os.Exit(1)
	}

	// Ride out two transient conflicts on the retry schedule.
	client := &flakyClient{}
	var text string
	err := lsp.SendRequestWithRetry(ctx, client, "textDocument/documentSymbol",
		map[string]any{"uri": source.URI.String()}, &text, log)
	if err != nil {
		log.Error("request failed:", err)
		os.Exit(1)
	}
	log.Info("request resolved after", fmt.Sprintf("%d attempts:", client.calls), text)

	// Memoize an expensive lookup.
	lookups := 0
	crateRoot := memoize.Memoize(func(manifest string) string {
		lookups++
		return "/demo/src/lib.rs"
	})
	crateRoot("/demo/Cargo.toml")
	crateRoot("/demo/Cargo.toml")
	log.Info("crate root resolved with", fmt.Sprintf("%d lookup(s)", lookups))

	fmt.Println("done.")
}

package out

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	coachrpc "questlog/internal/modules/coach/adapter/out/rpc"
	"questlog/internal/modules/coach/domain"
	coachout "questlog/internal/modules/coach/port/out"
	"questlog/internal/platform/logging"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 10 * time.Second
)

type PluginConfig struct {
	Binary string
	// SHA256 pins the binary when set.
	SHA256  string
	Timeout time.Duration
}

// GRPCNarrator starts the narrator plugin for each call and kills it after.
type GRPCNarrator struct {
	cfg    PluginConfig
	logger hclog.Logger
}

func NewGRPCNarrator(cfg PluginConfig, logger hclog.Logger) coachout.Narrator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultCallTimeout
	}
	return &GRPCNarrator{cfg: cfg, logger: logging.OrNull(logger).Named("coach-plugin")}
}

func (n *GRPCNarrator) Narrate(ctx context.Context, req domain.Request) (string, error) {
	client, closeFn, err := n.connect()
	if err != nil {
		return "", err
	}
	defer closeFn()

	callCtx, cancel := n.callContext(ctx)
	defer cancel()
	response, err := client.Narrate(callCtx, &coachrpc.NarrateRequest{
		Persona: coachrpc.Persona{
			Name:         req.Persona.Name,
			Tone:         req.Persona.Tone,
			Instructions: req.Persona.Instructions,
		},
		Context: req.Context,
		Summary: req.Summary,
	})
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s", domain.ErrNarratorTimeout, n.cfg.Timeout)
		}
		return "", fmt.Errorf("narrate: %w", err)
	}
	return response.Text, nil
}

func (n *GRPCNarrator) connect() (coachrpc.NarratorClient, func(), error) {
	if strings.TrimSpace(n.cfg.Binary) == "" {
		return nil, nil, fmt.Errorf("%w: no plugin binary configured", domain.ErrNarratorUnavailable)
	}
	if err := verifyChecksum(n.cfg.Binary, n.cfg.SHA256); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrNarratorUnavailable, err)
	}
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  coachrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          coachrpc.PluginMap(nil),
		Cmd:              exec.Command(n.cfg.Binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           n.logger,
		Stderr:           io.Discard,
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("%w: start plugin: %v", domain.ErrNarratorUnavailable, err)
	}
	raw, err := rpcClient.Dispense(coachrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("%w: dispense plugin: %v", domain.ErrNarratorUnavailable, err)
	}
	typed, ok := raw.(coachrpc.NarratorClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("%w: plugin rpc client type mismatch", domain.ErrNarratorUnavailable)
	}
	return typed, closeFn, nil
}

func (n *GRPCNarrator) callContext(parent context.Context) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, n.cfg.Timeout)
}

func verifyChecksum(path, want string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read plugin binary: %w", err)
	}
	if want == "" {
		return nil
	}
	sum := sha256.Sum256(payload)
	if got := hex.EncodeToString(sum[:]); !strings.EqualFold(got, want) {
		return fmt.Errorf("plugin checksum mismatch: got %s", got)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-plugin"

	coachrpc "questlog/internal/modules/coach/adapter/out/rpc"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *coachrpc.Empty) (*coachrpc.Metadata, error) {
	return &coachrpc.Metadata{Name: "coach-reference", Version: "1.0.0"}, nil
}

// Narrate answers deterministically: the persona's greeting, the summary and
// the goal furthest from done.
func (s *server) Narrate(_ context.Context, in *coachrpc.NarrateRequest) (*coachrpc.NarrateResponse, error) {
	if in == nil {
		return nil, fmt.Errorf("empty request")
	}
	name := in.Persona.Name
	if name == "" {
		name = "Coach"
	}
	lines := []string{fmt.Sprintf("%s (%s): %s", name, orDefault(in.Persona.Tone, "neutral"), in.Summary)}
	if goal := laggingGoal(in.Context); goal != "" {
		lines = append(lines, "Next step: "+goal+".")
	}
	return &coachrpc.NarrateResponse{Text: strings.Join(lines, "\n")}, nil
}

func laggingGoal(text string) string {
	best := ""
	bestRatio := 2.0
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, "- ") || !strings.Contains(line, "/") {
			continue
		}
		title, progress, ok := strings.Cut(strings.TrimPrefix(line, "- "), ": ")
		if !ok {
			continue
		}
		var current, target int
		if _, err := fmt.Sscanf(progress, "%d/%d", &current, &target); err != nil || target <= 0 {
			continue
		}
		ratio := float64(current) / float64(target)
		if ratio < 1 && ratio < bestRatio {
			best, bestRatio = title, ratio
		}
	}
	return best
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: coachrpc.HandshakeConfig,
		Plugins:         coachrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}

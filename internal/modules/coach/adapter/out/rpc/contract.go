package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	PluginMapKey      = "coach"
	serviceName       = "questlog.coach.v1.Narrator"
	jsonCodecName     = "json"
	methodGetMetadata = "/" + serviceName + "/GetMetadata"
	methodNarrate     = "/" + serviceName + "/Narrate"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "QUESTLOG_COACH_PLUGIN",
	MagicCookieValue: "questlog",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Persona struct {
	Name         string `json:"name"`
	Tone         string `json:"tone"`
	Instructions string `json:"instructions"`
}

type NarrateRequest struct {
	Persona Persona `json:"persona"`
	Context string  `json:"context"`
	Summary string  `json:"summary"`
}

type NarrateResponse struct {
	Text string `json:"text"`
}

type NarratorServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	Narrate(ctx context.Context, in *NarrateRequest) (*NarrateResponse, error)
}

type NarratorClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	Narrate(ctx context.Context, in *NarrateRequest) (*NarrateResponse, error)
}

type narratorClient struct {
	conn *grpc.ClientConn
}

func NewNarratorClient(conn *grpc.ClientConn) NarratorClient {
	return &narratorClient{conn: conn}
}

func (c *narratorClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *narratorClient) Narrate(ctx context.Context, in *NarrateRequest) (*NarrateResponse, error) {
	out := &NarrateResponse{}
	if err := c.conn.Invoke(ctx, methodNarrate, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func unary[Req any](fullMethod string, call func(context.Context, *Req) (any, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			typed, ok := req.(*Req)
			if !ok {
				return nil, fmt.Errorf("invalid request type %T", req)
			}
			return call(ctx, typed)
		}
		return interceptor(ctx, in, info, handler)
	}
}

func RegisterNarratorServer(server grpc.ServiceRegistrar, impl NarratorServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*NarratorServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: unary(methodGetMetadata, func(ctx context.Context, in *Empty) (any, error) {
					return impl.GetMetadata(ctx, in)
				}),
			},
			{
				MethodName: "Narrate",
				Handler: unary(methodNarrate, func(ctx context.Context, in *NarrateRequest) (any, error) {
					return impl.Narrate(ctx, in)
				}),
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "questlog/coach/v1/narrator.proto",
	}, impl)
}

type GRPCPlugin struct {
	plugin.NetRPCUnsupportedPlugin
	Impl NarratorServer
}

func (p *GRPCPlugin) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterNarratorServer(server, p.Impl)
	return nil
}

func (p *GRPCPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewNarratorClient(conn), nil
}

func PluginMap(impl NarratorServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginMapKey: &GRPCPlugin{Impl: impl},
	}
}

// Package server exposes playground operations over JSON-RPC 2.0 on stdio,
// for notebook-style front-ends that keep a vtree process alive and feed it
// trees and scenarios.
package server

import (
	"context"
	"encoding/json"

	"github.com/sourcegraph/jsonrpc2"
	"vtree.dev/pkg/diff"
	"vtree.dev/pkg/logutil"
	"vtree.dev/pkg/play"
	"vtree.dev/pkg/scenario"
	"vtree.dev/pkg/style"
	"vtree.dev/pkg/view"
)

var logger = logutil.GetLogger("[server] ")

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

type server struct{}

func newServer() *server { return &server{} }

func handler(s *server) jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"playground/resolve": s.resolve,
		"playground/diff":    s.diff,
		"playground/run":     s.run,
	})
}

type method func(context.Context, json.RawMessage) (any, error)

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		logger.Println("handling", req.Method)
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return fn(ctx, params)
	})
}

// Method implementations. These are all called synchronously.

type resolveParams struct {
	Tree json.RawMessage `json:"tree"`
}

type resolveResult struct {
	Styles style.Resolution `json:"styles"`
}

func (s *server) resolve(_ context.Context, rawParams json.RawMessage) (any, error) {
	var params resolveParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	tree, err := view.Unmarshal(params.Tree)
	if err != nil {
		return nil, err
	}
	return resolveResult{Styles: style.Resolve(tree)}, nil
}

type diffParams struct {
	Previous json.RawMessage `json:"previous"`
	Current  json.RawMessage `json:"current"`
}

type diffResult struct {
	Changes []changeDTO `json:"changes"`
}

func (s *server) diff(_ context.Context, rawParams json.RawMessage) (any, error) {
	var params diffParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	prev, err := view.Unmarshal(params.Previous)
	if err != nil {
		return nil, err
	}
	cur, err := view.Unmarshal(params.Current)
	if err != nil {
		return nil, err
	}
	changes, err := changeDTOs(diff.Diff(prev, cur))
	if err != nil {
		return nil, err
	}
	return diffResult{Changes: changes}, nil
}

type runParams struct {
	Scenario string `json:"scenario"`
}

type stepDTO struct {
	Desc    string          `json:"desc,omitempty"`
	Tree    json.RawMessage `json:"tree"`
	Changes []changeDTO     `json:"changes"`
}

type runResult struct {
	Steps []stepDTO `json:"steps"`
	// Error is set when a step failed; the steps before it are still
	// reported.
	Error string `json:"error,omitempty"`
}

func (s *server) run(_ context.Context, rawParams json.RawMessage) (any, error) {
	var params runParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	sc, err := scenario.Load([]byte(params.Scenario))
	if err != nil {
		return nil, err
	}
	results, runErr := play.Run(sc.Initial, sc.PlaySteps())
	steps := make([]stepDTO, len(results))
	for i, result := range results {
		tree, err := view.Marshal(result.Node)
		if err != nil {
			return nil, err
		}
		changes, err := changeDTOs(result.Changes)
		if err != nil {
			return nil, err
		}
		steps[i] = stepDTO{Desc: sc.Steps[i].Desc, Tree: tree, Changes: changes}
	}
	out := runResult{Steps: steps}
	if runErr != nil {
		out.Error = runErr.Error()
	}
	return out, nil
}

type changeDTO struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Style *style.Style    `json:"style,omitempty"`
	Node  json.RawMessage `json:"node,omitempty"`
}

func changeDTOs(changes []diff.Change) ([]changeDTO, error) {
	dtos := make([]changeDTO, len(changes))
	for i, c := range changes {
		dto := changeDTO{Op: c.Op.String(), Path: c.Path.String()}
		switch c.Op {
		case diff.Update:
			s := c.Style
			dto.Style = &s
		case diff.Replace:
			node, err := view.Marshal(c.Node)
			if err != nil {
				return nil, err
			}
			dto.Node = node
		}
		dtos[i] = dto
	}
	return dtos, nil
}

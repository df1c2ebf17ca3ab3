package server

import (
	"context"
	"os"

	"github.com/sourcegraph/jsonrpc2"
	"vtree.dev/pkg/prog"
)

// Program is the server subprogram, selected by the -server flag. It serves
// JSON-RPC over stdin and stdout until the client disconnects.
type Program struct{}

func (p *Program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.Server {
		return prog.ErrNotSuitable
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	conn := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(transport{fds[0], fds[1]}, jsonrpc2.VSCodeObjectCodec{}),
		handler(newServer()))
	<-conn.DisconnectNotify()
	return nil
}

type transport struct{ in, out *os.File }

func (t transport) Read(p []byte) (int, error)  { return t.in.Read(p) }
func (t transport) Write(p []byte) (int, error) { return t.out.Write(p) }

func (t transport) Close() error {
	if err := t.in.Close(); err != nil {
		t.out.Close()
		return err
	}
	return t.out.Close()
}

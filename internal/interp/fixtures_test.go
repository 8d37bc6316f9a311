package interp

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/golf-lang/golf/internal/value"
)

// TestFixtures runs every testdata/fixtures/*.golf program and snapshots its
// final-stack rendering plus anything it wrote to standard output, via
// go-snaps. Each fixture is expected to run to completion without error; a
// fixture exercising a runtime error belongs in interp_test.go instead,
// where the exact error kind can be asserted directly.
func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "testdata", "fixtures", "*.golf"))
	if err != nil {
		t.Fatalf("glob fixtures: %v", err)
	}
	if len(paths) == 0 {
		t.Skip("no fixtures found")
	}

	for _, path := range paths {
		path := path
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}

			var out bytes.Buffer
			in := New(&out)

			resultCh := make(chan struct {
				stack []value.Value
				err   error
			}, 1)
			go func() {
				stack, err := in.Run(src, nil)
				resultCh <- struct {
					stack []value.Value
					err   error
				}{stack, err}
			}()

			select {
			case res := <-resultCh:
				if res.err != nil {
					t.Fatalf("%s: unexpected error: %v", name, res.err)
				}
				snapshot := fmt.Sprintf("stack: %s\nstdout: %q\n", value.ToGS(value.NewArr(res.stack)), out.String())
				snaps.MatchSnapshot(t, snapshot)
			case <-time.After(5 * time.Second):
				t.Fatalf("%s: timed out after 5s", name)
			}
		})
	}
}

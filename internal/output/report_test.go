package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/testutil"
)

func sampleReport() *PerftReport {
	return &PerftReport{
		FEN:   engine.InitialFEN,
		Depth: 1,
		Nodes: 3,
		Divide: []engine.DivideEntry{
			{Move: "a2a3", Nodes: 1},
			{Move: "b2b3", Nodes: 1},
			{Move: "c2c3", Nodes: 1},
		},
		Elapsed: 2 * time.Second,
	}
}

func TestNodesPerSecond(t *testing.T) {
	r := sampleReport()
	r.Nodes = 1000
	testutil.AssertEqual(t, r.NodesPerSecond(), uint64(500))

	r.Elapsed = 0
	testutil.AssertEqual(t, r.NodesPerSecond(), uint64(0))
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)
	testutil.AssertNoError(t, w.WriteReport(sampleReport()))
	testutil.AssertNoError(t, w.Close())

	out := buf.String()
	testutil.AssertTrue(t, strings.HasPrefix(out, "a2a3: 1\nb2b3: 1\nc2c3: 1\n"), "divide lines first")
	testutil.AssertContains(t, out, "Depth 1: 3 nodes")
}

func TestJSONWriterSingle(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)
	testutil.AssertNoError(t, w.WriteReport(sampleReport()))

	var got JSONReport
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &got))
	testutil.AssertEqual(t, got.Nodes, uint64(3))
	testutil.AssertEqual(t, got.FEN, engine.InitialFEN)
	testutil.AssertEqual(t, len(got.Divide), 3)
	testutil.AssertEqual(t, got.ElapsedMS, int64(2000))
}

func TestJSONWriterBatch(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	testutil.AssertNoError(t, w.WriteReport(sampleReport()))
	testutil.AssertNoError(t, w.WriteReport(sampleReport()))
	testutil.AssertEqual(t, buf.Len(), 0, "batch writer must not write before Close")

	testutil.AssertNoError(t, w.Close())
	var got JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &got))
	testutil.AssertEqual(t, len(got.Reports), 2)

	buf.Reset()
	testutil.AssertNoError(t, w.Flush())
	testutil.AssertEqual(t, buf.Len(), 0, "second flush writes nothing")
}

package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli"

	"github.com/dbor-go/dbor"
	"github.com/dbor-go/dbor/sink"
)

func writeSampleFile(t *testing.T) string {
	t.Helper()
	snk := sink.NewVector(0)
	e := dbor.NewEncoder(snk)
	s, err := e.EmitTuple(2)
	if err != nil {
		t.Fatalf("EmitTuple: %v", err)
	}
	if err := s.Element().EmitBool(true); err != nil {
		t.Fatalf("EmitBool: %v", err)
	}
	if err := s.Element().EmitU64(7); err != nil {
		t.Fatalf("EmitU64: %v", err)
	}

	path := filepath.Join(t.TempDir(), "sample.dbor")
	if err := os.WriteFile(path, snk.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read pipe: %v", err)
	}
	return string(out)
}

func TestDumpCommandFromFile(t *testing.T) {
	path := writeSampleFile(t)

	app := cli.NewApp()
	app.Action = dumpCommand
	set := flag.NewFlagSet("dborcat", 0)
	if err := set.Parse([]string{path}); err != nil {
		t.Fatalf("parse args: %v", err)
	}
	ctx := cli.NewContext(app, set, nil)

	out := captureStdout(t, func() {
		if err := dumpCommand(ctx); err != nil {
			t.Fatalf("dumpCommand: %v", err)
		}
	})

	if !bytes.Contains([]byte(out), []byte("seq[2]")) {
		t.Fatalf("output missing seq header: %q", out)
	}
	if !bytes.Contains([]byte(out), []byte("bool: true")) {
		t.Fatalf("output missing bool element: %q", out)
	}
	if !bytes.Contains([]byte(out), []byte("uint: 7")) {
		t.Fatalf("output missing uint element: %q", out)
	}
}

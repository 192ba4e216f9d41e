// Command dborcat reads a single DBOR value from stdin (or a file
// argument) and prints a human-readable dump of it to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/dbor-go/dbor"
	"github.com/dbor-go/dbor/codec"
	"github.com/dbor-go/dbor/source"
)

func dumpCommand(c *cli.Context) error {
	r := os.Stdin
	if path := c.Args().First(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	d := dbor.NewDecoder(source.NewReader(r))
	v, err := codec.Decode(d)
	if err != nil {
		return fmt.Errorf("dborcat: decode: %w", err)
	}
	if err := d.RequireFinished(); err != nil {
		return fmt.Errorf("dborcat: %w", err)
	}

	dump(os.Stdout, v, 0)
	return nil
}

func dump(w *os.File, v codec.Value, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}
	switch v.Kind {
	case codec.KindSeq:
		fmt.Fprintf(w, "%sseq[%d]\n", pad, len(v.Seq))
		for _, e := range v.Seq {
			dump(w, e, indent+1)
		}
	case codec.KindMap:
		fmt.Fprintf(w, "%smap[%d]\n", pad, len(v.Map))
		for _, e := range v.Map {
			fmt.Fprintf(w, "%s  key:\n", pad)
			dump(w, e.Key, indent+2)
			fmt.Fprintf(w, "%s  val:\n", pad)
			dump(w, e.Val, indent+2)
		}
	case codec.KindEnum:
		if v.Enum.ID.IsName {
			fmt.Fprintf(w, "%senum %q (wrapped=%v)\n", pad, v.Enum.ID.Name, v.Enum.Wrapped)
		} else {
			fmt.Fprintf(w, "%senum #%d (wrapped=%v)\n", pad, v.Enum.ID.Num, v.Enum.Wrapped)
		}
		if v.Enum.Payload != nil {
			dump(w, *v.Enum.Payload, indent+1)
		}
	case codec.KindSome:
		fmt.Fprintf(w, "%ssome\n", pad)
		dump(w, *v.Some, indent+1)
	default:
		fmt.Fprintf(w, "%s%s: %s\n", pad, v.Kind, formatScalar(v))
	}
}

func formatScalar(v codec.Value) string {
	switch v.Kind {
	case codec.KindBool:
		return fmt.Sprintf("%v", v.Bool)
	case codec.KindUint:
		return fmt.Sprintf("%d", v.Uint)
	case codec.KindInt:
		return fmt.Sprintf("%d", v.Int)
	case codec.KindF32:
		return fmt.Sprintf("%g", v.F32)
	case codec.KindF64:
		return fmt.Sprintf("%g", v.F64)
	case codec.KindChar:
		return fmt.Sprintf("%q", v.Char)
	case codec.KindBytes:
		return fmt.Sprintf("%x", v.Bytes)
	case codec.KindNone:
		return "none"
	case codec.KindUnit:
		return "()"
	default:
		return ""
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "dborcat"
	app.Usage = "dump a DBOR-encoded value as text"
	app.ArgsUsage = "[file]"
	app.Action = dumpCommand

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

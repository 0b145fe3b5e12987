package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/typedbuf/typedbuf/handle"
	"github.com/typedbuf/typedbuf/view"
)

func main() {
	var (
		count       = flag.Int("count", 25, "Number of elements to allocate")
		typeName    = flag.String("type", "int", "Element type for allocation and fill")
		asName      = flag.String("as", "", "Read elements back through this type (defaults to -type)")
		fillStep    = flag.Int("fill", 0x10000000, "Element i is filled with i*step")
		hexDump     = flag.Bool("hex", false, "Print a hex dump of the buffer")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*count, *typeName, *asName, *fillStep, *hexDump); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(count int, typeName, asName string, fillStep int, hexDump bool) error {
	fillTag, err := view.Parse(typeName)
	if err != nil {
		return fmt.Errorf("parse type: %w", err)
	}
	readTag := fillTag
	if asName != "" {
		readTag, err = view.Parse(asName)
		if err != nil {
			return fmt.Errorf("parse read type: %w", err)
		}
	}

	table := handle.NewTable()
	defer table.Close()

	h, err := table.NewTyped(count, fillTag)
	if err != nil {
		return fmt.Errorf("allocate: %w", err)
	}

	size, _ := table.Size(h)
	fmt.Printf("Buffer: %d bytes, %d x %s\n", size, count, fillTag)

	for i := 0; i < count; i++ {
		if err := table.SetValue(h, i, fillTag, i*fillStep); err != nil {
			return fmt.Errorf("fill element %d: %w", i, err)
		}
	}

	n, err := table.Length(h, readTag)
	if err != nil {
		return fmt.Errorf("length as %s: %w", readTag, err)
	}
	fmt.Printf("\nRead as %s (%d elements):\n", readTag, n)
	err = table.Each(h, readTag, func(i int, v any) bool {
		fmt.Printf("  [%d] %v\n", i, v)
		return true
	})
	if err != nil {
		return fmt.Errorf("iterate: %w", err)
	}

	if hexDump {
		buf, _ := table.Get(h)
		fmt.Printf("\n%s", dumpHex(buf.Bytes()))
	}
	return nil
}

func dumpHex(data []byte) string {
	var b strings.Builder
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		fmt.Fprintf(&b, "%08x ", off)
		for i := off; i < end; i++ {
			if (i-off)%8 == 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, " %02x", data[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
